package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/ltbreno/pagarme/docs" // This will be auto-generated
	"github.com/ltbreno/pagarme/internal/adapter/http/handlers"
	repository2 "github.com/ltbreno/pagarme/internal/adapter/persistence/repository"
	"github.com/ltbreno/pagarme/internal/infrastructure/database"
	"github.com/ltbreno/pagarme/internal/infrastructure/payments"
	"github.com/ltbreno/pagarme/internal/usecase"
	"github.com/ltbreno/pagarme/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(serverPort()))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func serverPort() int {
	if raw := os.Getenv("PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			return port
		}
	}
	return PORT
}

func getRoutes() {
	db, err := database.ConnectPostgres()
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}

	backupRepo := repository2.NewPaymentPostgresRepository(db)
	if err := backupRepo.Migrate(); err != nil {
		log.Fatalf("Failed to migrate payments table: %v", err)
	}

	var mirrorRepo *repository2.PaymentMirrorDynamoRepository
	if database.MirrorConfigured() {
		mirrorRepo = repository2.NewPaymentMirrorDynamoRepository(database.ConnectDynamoDB())
	} else {
		log.Printf("[payment][routes] mirror store not configured, running on backup store only")
		mirrorRepo = repository2.NewPaymentMirrorDynamoRepository(nil)
	}

	paymentRepo := repository2.NewDualWritePaymentRepository(backupRepo, mirrorRepo)

	var paymentGateway interfaces.IPaymentGateway
	gateway, err := payments.NewPagarmeGateway(os.Getenv("PAGARME_API_KEY"))
	if err != nil {
		log.Printf("Pagar.me gateway not configured: %v", err)
	} else {
		paymentGateway = gateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, paymentGateway)
	webhookUseCase := usecase.NewWebhookUseCase(paymentRepo)
	customerUseCase := usecase.NewCustomerUseCase(paymentGateway)
	payoutUseCase := usecase.NewPayoutUseCase(paymentGateway)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	payoutHandler := handlers.NewPayoutHandler(payoutUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, webhookHandler)
	addCustomerRoutes(v1, customerHandler)
	addPayoutRoutes(v1, payoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
