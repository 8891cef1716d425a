package main

import (
	_ "rubrox/docs"
	"rubrox/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           RubroX Budget Ledger API
// @version         1.0
// @description     Budget lines, CDP/CRP movements and multi-step approval flows.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Caller id set by the identity gateway.

// @securityDefinitions.apikey UserRole
// @in header
// @name X-User-Role
// @description Caller role set by the identity gateway.

func main() {
	routes.Run()
}
