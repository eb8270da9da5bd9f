package main

import (
	_ "github.com/ltbreno/pagarme/docs"
	"github.com/ltbreno/pagarme/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pagar.me Payment API
// @version         1.0
// @description     Payment integration service (credit card + PIX) backed by Pagar.me, with dual persistence on DynamoDB and Postgres.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
