package main

import (
	"log"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/cmd/config"
	migration "github.com/AdityaSinghh7/Endeavor-Take-Home/cmd/database/migrate"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("Error creating app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
