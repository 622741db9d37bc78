package main

import (
	"log"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lane_wars/domain"
	"lane_wars/internal/service/config"
)

func migrate() (err error) {
	_ = godotenv.Load()
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return err
	}
	err = db.AutoMigrate(&domain.User{}, &domain.Minion{}, &domain.Wave{})
	if err != nil {
		return err
	}
	color.Green("Database migrated")
	return nil
}

func main() {
	err := migrate()
	if err != nil {
		log.Fatal(err)
	}
}
