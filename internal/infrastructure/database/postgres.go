package database

import (
	"fmt"
	"log"
	"time"

	"github.com/aquadrill/borewell-api/internal/config"
	"github.com/aquadrill/borewell-api/internal/domain/entity"
	"github.com/aquadrill/borewell-api/internal/domain/enum"
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
		&entity.Customer{},
		&entity.InventoryItem{},
		&entity.BillTemplate{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// SeedDefaultData creates the admin account, the bill template, and the
// starter inventory catalog on an empty database.
func SeedDefaultData(db *gorm.DB) error {
	if err := seedAdminUser(db); err != nil {
		return err
	}
	if err := seedBillTemplate(db); err != nil {
		return err
	}
	return seedInventory(db)
}

func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := &entity.User{
		Name:         "Administrator",
		Email:        "admin@borewellservices.com",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	log.Println("Seeded default admin user (change the password after first login)")
	return nil
}

func seedBillTemplate(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.BillTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := db.Create(entity.DefaultBillTemplate()).Error; err != nil {
		return fmt.Errorf("failed to seed bill template: %w", err)
	}
	log.Println("Seeded default bill template")
	return nil
}

func seedInventory(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.InventoryItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restocked := time.Now().AddDate(0, -2, 0)
	items := []entity.InventoryItem{
		{Name: "Submersible Pump HP-2000", Category: enum.ItemCategoryPump, Quantity: 5, Price: 1500000, ReorderLevel: 2, Unit: "piece", LastRestockedAt: restocked},
		{Name: "Control Panel 3-Phase", Category: enum.ItemCategoryElectrical, Quantity: 8, Price: 350000, ReorderLevel: 3, Unit: "piece", LastRestockedAt: restocked},
		{Name: "PVC Pipe 2-inch", Category: enum.ItemCategoryPipe, Quantity: 30, Price: 35000, ReorderLevel: 10, Unit: "meter", LastRestockedAt: restocked},
		{Name: "Check Valve 2-inch", Category: enum.ItemCategoryValve, Quantity: 12, Price: 85000, ReorderLevel: 5, Unit: "piece", LastRestockedAt: restocked},
		{Name: "3HP Motor", Category: enum.ItemCategoryMotor, Quantity: 4, Price: 750000, ReorderLevel: 2, Unit: "piece", LastRestockedAt: restocked},
		{Name: "Electrical Cable 2.5mm", Category: enum.ItemCategoryElectrical, Quantity: 200, Price: 4500, ReorderLevel: 50, Unit: "meter", LastRestockedAt: restocked},
		{Name: "Starter", Category: enum.ItemCategoryAccessory, Quantity: 10, Price: 120000, ReorderLevel: 3, Unit: "piece", LastRestockedAt: restocked},
		{Name: "Filter", Category: enum.ItemCategoryAccessory, Quantity: 15, Price: 45000, ReorderLevel: 5, Unit: "piece", LastRestockedAt: restocked},
		{Name: "Motor Guard", Category: enum.ItemCategoryAccessory, Quantity: 9, Price: 180000, ReorderLevel: 3, Unit: "piece", LastRestockedAt: restocked},
		{Name: "Clamps", Category: enum.ItemCategoryAccessory, Quantity: 40, Price: 15000, ReorderLevel: 10, Unit: "piece", LastRestockedAt: restocked},
	}
	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("failed to seed inventory: %w", err)
	}
	log.Printf("Seeded %d inventory items", len(items))
	return nil
}
