// Command migrate creates the database schema and seeds the accounts and
// catalog entries a fresh installation needs: one admin, one courier, a
// test customer and a starter set of medicines.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"drugweb/config"
	"drugweb/internal/infra/auth"
	"drugweb/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Migration completed")
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CustomerProfileModel{},
		&model.AdminProfileModel{},
		&model.DeliveryProfileModel{},
		&model.MedicineModel{},
		&model.CartItemModel{},
		&model.PaymentModel{},
		&model.PointsEntryModel{},
		&model.NotificationModel{},
		&model.CustomerRequestModel{},
		&model.ReviewModel{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	return seed(db)
}

type seedAccount struct {
	id        string
	firstName string
	lastName  string
	email     string
	password  string
	address   string
	phone     string
	area      string // delivery accounts only
	role      string
}

func seed(db *gorm.DB) error {
	hasher := auth.NewBcryptHasher()

	accounts := []seedAccount{
		{id: "CM001", firstName: "John", lastName: "Doe", email: "customer@test.com", password: "password123", address: "123 Main St", phone: "555-1234", role: "customer"},
		{id: "AD001", firstName: "Admin", lastName: "User", email: "admin@test.com", password: "admin123", address: "456 Admin St", phone: "555-5678", role: "admin"},
		{id: "DM001", firstName: "Mike", lastName: "Delivery", email: "delivery@test.com", password: "delivery123", address: "789 Delivery St", phone: "555-9999", area: "City Center", role: "delivery"},
	}

	for _, account := range accounts {
		passwordHash, err := hasher.Hash(account.password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", account.id, err)
		}

		user := &model.UserModel{
			ID:           account.id,
			FirstName:    account.firstName,
			LastName:     account.lastName,
			Email:        account.email,
			PasswordHash: passwordHash,
			Address:      account.address,
			Phone:        account.phone,
		}
		switch account.role {
		case "customer":
			user.CustomerProfile = &model.CustomerProfileModel{CustomerID: account.id}
		case "admin":
			user.AdminProfile = &model.AdminProfileModel{AdminID: account.id}
		case "delivery":
			user.DeliveryProfile = &model.DeliveryProfileModel{StaffID: account.id, Area: account.area}
		}

		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error; err != nil {
			return fmt.Errorf("seed account %s: %w", account.id, err)
		}
	}

	medicines := []*model.MedicineModel{
		{Code: "MED001", Name: "Paracetamol", GenericName: "Acetaminophen", Category: "Pain Relief", Price: decimal.RequireFromString("5.00"), Stock: 100},
		{Code: "MED002", Name: "Aspirin", GenericName: "Acetylsalicylic Acid", Category: "Pain Relief", Price: decimal.RequireFromString("3.50"), Stock: 75},
		{Code: "MED003", Name: "Amoxicillin", GenericName: "Amoxicillin", Category: "Antibiotic", Price: decimal.RequireFromString("12.00"), Stock: 50},
		{Code: "MED004", Name: "Napa Extra", GenericName: "Paracetamol Caffeine", Category: "Pain Relief", Price: decimal.RequireFromString("2.50"), Stock: 200},
		{Code: "MED005", Name: "Seclo 20", GenericName: "Omeprazole", Category: "Gastric", Price: decimal.RequireFromString("7.00"), Stock: 150},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(medicines).Error; err != nil {
		return fmt.Errorf("seed medicines: %w", err)
	}

	return nil
}
