package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AK301382/maser/internal/config"
	"github.com/AK301382/maser/internal/models"
)

// Bootstraps (or promotes) an admin account. Registration through the API
// never grants the admin flag, so the first admin has to come from here.
func main() {
	name := flag.String("name", "Administrator", "display name")
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required for new accounts)")
	flag.Parse()

	if *email == "" {
		log.Fatal("usage: create-admin -email admin@example.com -password secret")
	}

	config.InitDB()
	db := config.GetDB()

	addr := strings.ToLower(strings.TrimSpace(*email))

	var user models.User
	err := db.Where("email = ?", addr).First(&user).Error
	switch {
	case err == nil:
		if user.IsAdmin {
			fmt.Printf("%s is already an admin\n", addr)
			return
		}
		if err := db.Model(&user).Update("is_admin", true).Error; err != nil {
			log.Fatalf("could not promote user: %v", err)
		}
		fmt.Printf("promoted %s to admin\n", addr)
	case errors.Is(err, gorm.ErrRecordNotFound):
		if len(*password) < 6 {
			log.Fatal("password must be at least 6 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("could not hash password: %v", err)
		}
		admin := models.User{
			Name:     *name,
			Email:    addr,
			Password: string(hash),
			IsAdmin:  true,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("could not create admin: %v", err)
		}
		fmt.Printf("created admin %s (id %d)\n", addr, admin.ID)
	default:
		log.Fatalf("database error: %v", err)
	}
}
