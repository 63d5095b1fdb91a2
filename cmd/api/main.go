package main

import (
	_ "maisquecafe-painel/docs"
	"maisquecafe-painel/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           MaisQueCafe Painel API
// @version         1.0
// @description     Back office panel service for the MaisQueCafe purchasing API (pedidos + cadastros).
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API key forwarded to the purchasing API.

func main() {
	routes.Run()
}
