package database

import (
	"fmt"
	"log"
	"time"

	"github.com/projectlaunchpad/intake/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Connect opens the MySQL handle and migrates the tables the calling
// application owns. The two binaries own disjoint table sets, so each passes
// its own model list.
func Connect(dbConfig *config.DBConfig, appConfig *config.AppConfig, models ...any) *gorm.DB {
	// Format DSN untuk MySQL
	// format: "user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Host,
		dbConfig.Port,
		dbConfig.Name,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		sqlDB.SetMaxIdleConns(20)
		sqlDB.SetMaxOpenConns(200)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	// migrasi tabel
	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			log.Fatal("migration failed: ", err)
		}
	}
	return db
}
