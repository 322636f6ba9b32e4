package repository

import (
	"errors"
	"os"
	"strings"
)

type Admin struct {
	Email        string
	PasswordHash string
}

type AdminAuthRepository interface {
	// GetByEmail returns nil, nil when no admin matches the email.
	GetByEmail(email string) (*Admin, error)
}

// envAdminRepository reads the single back-office admin from the environment
// (ADMIN_EMAIL plus a bcrypt ADMIN_PASSWORD_HASH). There is no admins table;
// the service carries exactly one operator account.
type envAdminRepository struct{}

func NewEnvAdminRepository() AdminAuthRepository {
	return &envAdminRepository{}
}

func (r *envAdminRepository) GetByEmail(email string) (*Admin, error) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	passwordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || passwordHash == "" {
		return nil, errors.New("admin credentials not configured")
	}
	if !strings.EqualFold(email, adminEmail) {
		return nil, nil
	}
	return &Admin{Email: adminEmail, PasswordHash: passwordHash}, nil
}
