package routes

import (
	"log"
	"os"
	"strconv"

	_ "wheelworks/docs" // swag-generated
	"wheelworks/internal/adapter/http/handlers"
	repository2 "wheelworks/internal/adapter/persistence/repository"
	"wheelworks/internal/infrastructure/database"
	"wheelworks/internal/infrastructure/mail"
	"wheelworks/internal/usecase"
	"wheelworks/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
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
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)

	var mailer interfaces.IQuoteMailer
	smtpMailer, err := mail.NewSMTPMailerFromEnv()
	if err != nil {
		log.Printf("SMTP mailer not configured: %v", err)
	} else {
		mailer = smtpMailer
	}
	dispatcher := usecase.NewNotificationDispatcher(mailer)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, dispatcher)
	dashboardUseCase := usecase.NewDashboardUseCase(quoteRepo)
	sessionUseCase := usecase.NewSessionUseCase(usecase.SessionConfig{
		Username:     os.Getenv("DASHBOARD_USERNAME"),
		PasswordHash: os.Getenv("DASHBOARD_PASSWORD_HASH"),
		Secret:       os.Getenv("SESSION_SECRET"),
	})

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase, quoteUseCase)
	authHandler := handlers.NewAuthHandler(sessionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	addAuthRoutes(v1, authHandler, sessionUseCase)
	addDashboardRoutes(v1, dashboardHandler, sessionUseCase)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = []string{origins}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	router.Use(cors.New(corsConfig))
}
