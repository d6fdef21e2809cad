package main

import (
	"log"
	"os"

	"github.com/maximebaudoin/expired-products/cmd/config"
	migration "github.com/maximebaudoin/expired-products/cmd/database/migrate"
	"github.com/maximebaudoin/expired-products/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("connecting database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("building application: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("starting server: %v", err)
	}
}
