package main

import (
	"elswallet/config"
	walletController "elswallet/controllers/wallet"
	"elswallet/database"
	walletRoutes "elswallet/routers/walletRoutes"
	"elswallet/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	if config.AppConfig.SeedDemoData {
		if err := database.SeedWallets(database.Database.Db); err != nil {
			logrus.Warnf("Failed to seed demo wallets: %v", err)
		}
	}

	walletController.Notifier = utils.NewTransferNotifier()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	walletRoutes.SetupWalletRoutes(app)

	utils.InitializeAuditScheduler()

	logrus.Infof("Server is running on port %s", config.AppConfig.Port)
	logrus.Fatal(app.Listen(":" + config.AppConfig.Port))
}
