package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/trendora/trendora-api/internal/config"
	"github.com/trendora/trendora-api/internal/domain/entity"
	"github.com/trendora/trendora-api/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.CartItem{},
		&entity.WishlistItem{},
		&entity.Order{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with a default admin account and a
// starter catalog when the relevant tables are empty.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Store Admin"
				}
				adminUser := entity.User{
					ID:       uuid.New(),
					FullName: adminName,
					Email:    adminEmail,
					Password: string(hashedPassword),
					IsAdmin:  true,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminEmail)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	// Seed a starter catalog only when no products exist
	var productCount int64
	if err := db.Model(&entity.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if productCount == 0 {
		products := []entity.Product{
			{Name: "Slim Fit Oxford Shirt", Description: "Button-down cotton oxford in washed blue.", Price: 1499, Gender: enum.GenderMen, Image: "/images/oxford-shirt.jpg", Stock: 40},
			{Name: "Denim Jacket", Description: "Mid-wash trucker jacket with a relaxed fit.", Price: 2999, Gender: enum.GenderMen, Image: "/images/denim-jacket.jpg", Stock: 25},
			{Name: "Floral Wrap Dress", Description: "Lightweight viscose wrap dress with floral print.", Price: 2199, Gender: enum.GenderWomen, Image: "/images/wrap-dress.jpg", Stock: 30},
			{Name: "High-Waist Jeans", Description: "Stretch denim with a cropped straight leg.", Price: 1899, Gender: enum.GenderWomen, Image: "/images/high-waist-jeans.jpg", Stock: 35},
			{Name: "Everyday Hoodie", Description: "Fleece-back hoodie in heather grey.", Price: 1299, Gender: enum.GenderUnisex, Image: "/images/hoodie.jpg", Stock: 60},
			{Name: "Canvas Sneakers", Description: "Low-top canvas sneakers with rubber sole.", Price: 1799, Gender: enum.GenderUnisex, Image: "/images/canvas-sneakers.jpg", Stock: 50},
		}
		for i := range products {
			if err := db.Create(&products[i]).Error; err != nil {
				log.Printf("Warning: failed to seed product %s: %v", products[i].Name, err)
			}
		}
		log.Printf("Seeded %d starter products", len(products))
	}

	log.Println("Default data seeding completed")
	return nil
}
