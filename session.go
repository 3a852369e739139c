package main

import (
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Sesi stasiun kasir saat ini. Role kosong = belum login.
type Session struct {
	Role         string `json:"role"`
	OperatorID   int    `json:"operator_id,omitempty"`
	OperatorName string `json:"operator_name,omitempty"`
}

func (s Session) Authenticated() bool {
	return s.Role == RoleAdmin || s.Role == RoleEmployee
}

// Sesi employee wajib membawa identitas kasir
func (s Session) HasOperator() bool {
	return s.Role == RoleEmployee && s.OperatorID != 0
}

// SessionStore memegang sesi stasiun dan menyimpannya ke file token lokal,
// supaya restart aplikasi tidak memaksa login ulang.
// Dibuat di main dan dioper ke route yang membutuhkannya.
type SessionStore struct {
	mu       sync.Mutex
	current  Session
	filePath string
}

func NewSessionStore(filePath string) *SessionStore {
	return &SessionStore{filePath: filePath}
}

// Lokasi file token sesi, bisa dioverride lewat env SESSION_FILE
func SessionFilePath() string {
	if p := os.Getenv("SESSION_FILE"); p != "" {
		return p
	}
	return filepath.Join("data", "session.jwt")
}

// Baca ulang sesi dari file token saat proses start.
// File tidak ada, token rusak/expired, atau token employee tanpa operator_id
// semuanya berakhir di kondisi belum login.
func (ss *SessionStore) Rehydrate() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.current = Session{}

	raw, err := os.ReadFile(ss.filePath)
	if err != nil {
		return
	}

	claims, err := ParseToken(string(raw))
	if err != nil {
		log.Printf("⚠️ Token sesi tersimpan tidak valid: %v\n", err)
		return
	}

	sess := Session{Role: claims.Role, OperatorID: claims.OperatorID, OperatorName: claims.OperatorName}
	switch sess.Role {
	case RoleAdmin:
		// Admin tidak membawa identitas kasir
		sess.OperatorID = 0
		sess.OperatorName = ""
	case RoleEmployee:
		if sess.OperatorID == 0 {
			log.Println("⚠️ Token sesi employee tanpa identitas kasir, dianggap belum login")
			return
		}
	default:
		return
	}

	ss.current = sess
	log.Printf("✅ Sesi dipulihkan: role %s\n", sess.Role)
}

// Login sebagai admin: timpa sesi lama dan tulis file token secara utuh
func (ss *SessionStore) LoginAdmin() (string, error) {
	return ss.login(Session{Role: RoleAdmin})
}

// Login sebagai employee dengan identitas kasir dari backend
func (ss *SessionStore) LoginEmployee(operatorID int, operatorName string) (string, error) {
	return ss.login(Session{Role: RoleEmployee, OperatorID: operatorID, OperatorName: operatorName})
}

func (ss *SessionStore) login(sess Session) (string, error) {
	token, err := GenerateToken(sess.Role, sess.OperatorID, sess.OperatorName)
	if err != nil {
		return "", err
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()

	if dir := filepath.Dir(ss.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(ss.filePath, []byte(token), 0o600); err != nil {
		return "", err
	}

	ss.current = sess
	return token, nil
}

// Logout dari kondisi apapun: sesi dikosongkan dan file token dihapus
func (ss *SessionStore) Logout() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.current = Session{}
	if err := os.Remove(ss.filePath); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ Gagal menghapus file sesi: %v\n", err)
	}
}

// Snapshot sesi saat ini (copy, bukan referensi)
func (ss *SessionStore) Current() Session {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.current
}

// Cek apakah sesi saat ini boleh masuk ke halaman dengan role tertentu.
// Predicate murni, dievaluasi ulang di setiap navigasi.
func (ss *SessionStore) CanEnter(requiredRole string) bool {
	sess := ss.Current()
	if sess.Role != requiredRole {
		return false
	}
	if sess.Role == RoleEmployee && !sess.HasOperator() {
		return false
	}
	return true
}
