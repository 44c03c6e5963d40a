package seed

import (
	"log"
	"os"

	"wrapsite_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser maakt het admin-account aan als het nog niet bestaat. Er is
// geen publieke registratie; accounts komen alleen hiervandaan.
func SeedAdminUser(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("could not hash admin password: %v", err)
		return
	}

	user := model.User{
		Email:    email,
		Password: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("could not seed admin user: %v", err)
		return
	}

	log.Printf("Seeded admin user %s", email)
}
