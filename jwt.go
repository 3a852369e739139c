package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Secret key diambil dari .env lewat LoadJWTSecret sebelum server jalan
var jwtSecret []byte

func LoadJWTSecret() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ File .env tidak ditemukan, lanjut pakai environment bawaan")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("❌ JWT_SECRET tidak ditemukan di environment")
	}
	jwtSecret = []byte(secret)
}

// Claims sesuai payload token.
// Role admin tidak membawa operator_id; role employee wajib membawa operator_id.
type Claims struct {
	Role         string `json:"role"` // admin, employee
	OperatorID   int    `json:"operator_id,omitempty"`
	OperatorName string `json:"operator_name,omitempty"`
	jwt.RegisteredClaims
}

// Generate JWT token untuk sesi kasir/admin
func GenerateToken(role string, operatorID int, operatorName string) (string, error) {
	claims := Claims{
		Role:         role,
		OperatorID:   operatorID,
		OperatorName: operatorName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)), // Expired dalam 24 jam
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// Validasi token dan ambil claims-nya
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token tidak valid atau expired")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("gagal parsing token")
	}
	return claims, nil
}

// Middleware untuk validasi token dan set data sesi ke context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "❌ Token tidak ditemukan"})
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := ParseToken(tokenStr)
		if err != nil {
			log.Printf("Token error: %v\n", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "❌ Token tidak valid atau expired"})
			c.Abort()
			return
		}

		// Token employee tanpa operator_id dianggap tidak sah
		if claims.Role == RoleEmployee && claims.OperatorID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "❌ Token tidak valid atau expired"})
			c.Abort()
			return
		}

		// Simpan ke context
		c.Set("role", claims.Role)
		c.Set("operator_id", claims.OperatorID)
		c.Set("operator_name", claims.OperatorName)

		c.Next()
	}
}

// Middleware untuk cek role (admin, employee)
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "❌ Role tidak ditemukan"})
			c.Abort()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "❌ Akses ditolak (role tidak sesuai)"})
		c.Abort()
	}
}

// Helper untuk mengambil data dari context
func GetRole(c *gin.Context) string {
	return c.GetString("role")
}

func GetOperatorID(c *gin.Context) int {
	return c.GetInt("operator_id")
}

func GetOperatorName(c *gin.Context) string {
	return c.GetString("operator_name")
}
