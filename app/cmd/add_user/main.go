package main

import (
	"flag"
	"fmt"
	"os"

	"super20-academy/app/config"
	"super20-academy/app/database"
	"super20-academy/app/models"

	"github.com/joho/godotenv"
)

// Seeds a staff login so the dashboard is reachable on a fresh database.
func main() {
	email := flag.String("email", "", "login email for the staff account")
	name := flag.String("name", "", "full name of the staff member")
	password := flag.String("password", "", "initial password")
	flag.Parse()

	if *email == "" || *name == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: add_user -email <email> -name <full name> -password <password>")
		os.Exit(2)
	}

	_ = godotenv.Load()

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	db := config.GetDB()
	defer db.Close()

	exists, err := database.EmailExists(db, *email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to check email: %v\n", err)
		os.Exit(1)
	}
	if exists {
		fmt.Fprintf(os.Stderr, "account %s already exists\n", *email)
		os.Exit(1)
	}

	user := &models.User{
		Email:    *email,
		Password: *password,
		FullName: *name,
		IsStaff:  true,
		IsActive: true,
	}
	if err := database.CreateUser(db, user); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Staff account created: %s (%s)\n", user.FullName, user.Email)
}
