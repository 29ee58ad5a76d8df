package main

import (
	"fmt"
	"log"

	"shop/internal/app/ds"
	"shop/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var products []ds.Product
	err = db.Find(&products).Error
	if err != nil {
		log.Fatal("Failed to get products:", err)
	}

	fmt.Println("Products in database:")
	for _, product := range products {
		imageURL := "NULL"
		if product.ImageURL != nil {
			imageURL = *product.ImageURL
		}
		fmt.Printf("ID: %d, Name: %s, Rating: %.2f, ImageURL: %s\n", product.ID, product.Name, product.Rating, imageURL)
	}
}
