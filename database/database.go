package database

import (
	"log"
	"time"

	"artstudio-api/config"
	"artstudio-api/internal/domain/admins"
	"artstudio-api/internal/domain/partners"
	"artstudio-api/internal/domain/posts"
	"artstudio-api/internal/domain/shop"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	db, err := gorm.Open(postgres.Open(config.DB_URL), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("❌ Failed to access connection pool:", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := DB.AutoMigrate(
		&admins.Administrator{},
		&posts.NewsPost{},
		&posts.PaintingPost{},
		&shop.ShopItem{},
		&partners.PartnerBrand{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	log.Println("✅ Connected and migrated successfully")
}

// Close drains the underlying connection pool. Called once on shutdown.
func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.Close()
	}
}
