package database

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/soukly/api/internal/constants"
	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/pkg/slug"
)

// DefaultAdmin defines the default admin user credentials
type DefaultAdmin struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// GetDefaultAdmin returns the default admin user
func GetDefaultAdmin() DefaultAdmin {
	return DefaultAdmin{
		Name:     "Soukly Admin",
		Email:    "admin@soukly.app",
		Password: "Admin@123", // Change this in production!
		Phone:    "+201234567890",
	}
}

// Seed creates initial data for the database
func Seed(db *gorm.DB) error {
	if err := SeedUsers(db); err != nil {
		return err
	}
	return SeedCatalog(db)
}

// SeedUsers creates the default admin user if not exists
func SeedUsers(db *gorm.DB) error {
	admin := GetDefaultAdmin()

	var existing model.User
	result := db.Where("email = ?", admin.Email).First(&existing)
	if result.Error == nil {
		return nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return result.Error
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := model.User{
		Name:              admin.Name,
		Slug:              slug.Make(admin.Name),
		Email:             admin.Email,
		Password:          string(hashedPassword),
		Phone:             admin.Phone,
		Role:              constants.RoleAdmin,
		Active:            true,
		PasswordChangedAt: &now,
	}

	return db.Create(&user).Error
}

// SeedCatalog creates a starter category tree so a fresh install is browsable
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	names := []string{"Electronics", "Fashion", "Home & Garden", "Beauty", "Sports"}
	for _, name := range names {
		category := model.Category{Name: name, Slug: slug.Make(name)}
		if err := db.Create(&category).Error; err != nil {
			return err
		}
	}
	return nil
}
