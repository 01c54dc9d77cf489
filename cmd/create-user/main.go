package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/ryoumen0412/sistema-dpm/config"
	"github.com/ryoumen0412/sistema-dpm/db"
	"github.com/ryoumen0412/sistema-dpm/models"
	"github.com/ryoumen0412/sistema-dpm/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Crear usuario ===")
	fmt.Println()

	fmt.Print("Usuario: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)

	// Read the password without echoing it
	fmt.Print("Contraseña: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	password := string(passwordBytes)
	fmt.Println()

	if username == "" || password == "" {
		log.Fatal("Usuario y contraseña son obligatorios")
	}

	if len(password) < 8 {
		log.Fatal("La contraseña debe tener al menos 8 caracteres")
	}

	if existente, _ := services.GetUserByUsername(db.DB, username); existente != nil {
		log.Fatalf("El usuario %s ya existe", username)
	}

	user, err := services.CreateUser(db.DB, username, password)
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Println()
	fmt.Println("Usuario creado")
	fmt.Printf("  ID: %d\n", user.ID)
	fmt.Printf("  Usuario: %s\n", user.Usr)
}
