package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/tolaram/sapkb/config"
	"github.com/tolaram/sapkb/internal/model"
	"github.com/tolaram/sapkb/internal/repository"
	"github.com/tolaram/sapkb/pkg/mysqldb"
)

const bcryptCost = 10

type seedUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Seeds the user accounts and creates the schema. Accounts are never
// created through the service itself; rerunning the tool updates role
// and name for existing emails.
func main() {
	configureManager := config.NewConfigureManager()

	filePath := flag.String("file", configureManager.GetSeedConfig().UsersFile, "Path to users JSON file")
	password := flag.String("password", configureManager.GetSeedConfig().DefaultPassword, "Default password for seeded users")
	flag.Parse()

	if *filePath == "" || *password == "" {
		log.Fatal("seed: users file and default password are required")
	}

	mysqlInstance, err := mysqldb.InitMysqlDB(configureManager.GetMysqlDBConfig().URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer mysqlInstance.Close()

	if err := mysqlInstance.Database().AutoMigrate(
		&model.User{},
		&model.ErrorRecord{},
		&model.ErrorComment{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	users, err := loadUsers(*filePath)
	if err != nil {
		log.Fatalf("Failed to load users file: %v", err)
	}

	log.Printf("Loaded %d users from %s", len(users), *filePath)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash default password: %v", err)
	}

	userRepository := repository.NewUserRepository(mysqlInstance)
	ctx := context.Background()

	for _, u := range users {
		role := u.Role
		if role == "" {
			role = model.RoleUser
		}

		err := userRepository.Upsert(ctx, &model.User{
			Email:        u.Email,
			Name:         u.Name,
			Role:         role,
			PasswordHash: string(hash),
		})
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Email, err)
		}

		log.Printf("Seeded user: %s (%s)", u.Email, role)
	}
}

func loadUsers(path string) ([]seedUser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var users []seedUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}

	return users, nil
}
