package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Route setup
func AuthRoutes(r *gin.Engine, store *MySQLStore, sess *SessionStore) {
	r.POST("/api/v1/login", func(c *gin.Context) {
		handleLoginWithRole(c, store, sess)
	})
	r.GET("/api/v1/session", func(c *gin.Context) {
		handleCurrentSession(c, sess)
	})

	authed := r.Group("/api/v1")
	authed.Use(AuthMiddleware())
	{
		authed.POST("/logout", func(c *gin.Context) {
			handleLogout(c, sess)
		})
	}
}

// =================== LOGIN ===================

type RoleLoginInput struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func handleLoginWithRole(c *gin.Context, store *MySQLStore, sess *SessionStore) {
	var input RoleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.Password == "" || input.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Name, password, dan role wajib diisi"})
		return
	}

	role := strings.ToLower(input.Role)

	switch role {
	case RoleAdmin:
		ok, err := store.AuthenticateAdmin(input.Name, input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal memeriksa kredensial"})
			return
		}
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "❌ Nama atau password admin salah"})
			return
		}
		token, err := sess.LoginAdmin()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal membuat sesi"})
			return
		}
		respondWithSession(c, token, RoleAdmin, 0, input.Name)
	case RoleEmployee:
		emp, found, err := store.AuthenticateEmployee(input.Name, input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal memeriksa kredensial"})
			return
		}
		if !found {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "❌ Nama atau password kasir salah"})
			return
		}
		token, err := sess.LoginEmployee(emp.ID, emp.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal membuat sesi"})
			return
		}
		respondWithSession(c, token, RoleEmployee, emp.ID, emp.Name)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Role tidak valid"})
	}
}

// =================== LOGOUT ===================

func handleLogout(c *gin.Context, sess *SessionStore) {
	sess.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "✅ Logout berhasil"})
}

// =================== SESI SAAT INI ===================

func handleCurrentSession(c *gin.Context, sess *SessionStore) {
	current := sess.Current()
	c.JSON(http.StatusOK, gin.H{
		"authenticated": current.Authenticated(),
		"session":       current,
	})
}

// =================== UTILITY ===================

func respondWithSession(c *gin.Context, token, role string, operatorID int, name string) {
	user := gin.H{"name": name}
	if role == RoleEmployee {
		user["id"] = operatorID
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "✅ Login berhasil",
		"token":   token,
		"role":    role,
		"user":    user,
	})
}
