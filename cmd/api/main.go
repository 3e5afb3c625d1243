package main

import (
	"log"

	_ "valuation_report/docs"
	"valuation_report/internal/adapter/http/routes"
	"valuation_report/internal/infrastructure/config"
	"valuation_report/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Valuation Report API
// @version         1.0
// @description     Property valuation reports: form state, derived values, approval workflow and PDF reports, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()

	l, err := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	logger.Set(l)
	defer func() { _ = l.Sync() }()

	routes.Run(cfg)
}
