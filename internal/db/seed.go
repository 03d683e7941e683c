package db

import (
	"fmt"

	"github.com/mbaocraft/go-admin/internal/config"
	"github.com/mbaocraft/go-admin/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin ensures the configured administrator account exists. An existing
// account with the same email is left untouched so a rotated env password
// does not silently overwrite a manually changed one.
func SeedAdmin(conn *gorm.DB, admin config.AdminConfig) error {
	var count int64
	if err := conn.Model(&models.User{}).Where("email = ?", admin.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("seed admin lookup: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin hash: %w", err)
	}
	user := models.User{
		Email:    admin.Email,
		Name:     admin.Name,
		Role:     "admin",
		Password: string(hash),
	}
	if err := conn.Create(&user).Error; err != nil {
		return fmt.Errorf("seed admin create: %w", err)
	}
	return nil
}
