package routes

import (
	"log"
	"os"
	"strconv"

	_ "vestapay/docs" // This will be auto-generated
	"vestapay/internal/adapter/http/handlers"
	repository2 "vestapay/internal/adapter/persistence/repository"
	"vestapay/internal/domain/entities"
	"vestapay/internal/infrastructure/database"
	"vestapay/internal/infrastructure/payments"
	"vestapay/internal/usecase"
	"vestapay/internal/usecase/interfaces"

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

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	transcriptRepo := repository2.NewTranscriptDynamoRepository(ddb)

	var gateway interfaces.IVestaGateway
	vestaGateway, err := payments.NewVestaGateway(entities.Credentials{
		AccountName: os.Getenv("VESTA_ACCOUNT_NAME"),
		Password:    os.Getenv("VESTA_PASSWORD"),
		MerchantID:  os.Getenv("VESTA_MERCHANT_ID"),
		LiveURL:     os.Getenv("VESTA_LIVE_URL"),
		Version:     os.Getenv("VESTA_VERSION"),
	})
	if err != nil {
		log.Printf("Vesta gateway not configured: %v", err)
	} else {
		gateway = vestaGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(gateway, transcriptRepo, payments.ScrubTranscript)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
