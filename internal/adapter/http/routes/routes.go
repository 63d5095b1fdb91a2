package routes

import (
	"log"
	_ "maisquecafe-painel/docs" // This will be auto-generated
	"maisquecafe-painel/internal/adapter/http/handlers"
	"maisquecafe-painel/internal/infrastructure/config"
	"maisquecafe-painel/internal/infrastructure/procurement"
	"maisquecafe-painel/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	client := procurement.NewClient(cfg.Procurement.BaseURL, cfg.Procurement.APIKey, cfg.Procurement.Timeout)

	composerUseCase := usecase.NewOrderComposerUseCase(client)
	lifecycleUseCase := usecase.NewOrderLifecycleUseCase(client)
	cadastroUseCase := usecase.NewCadastroUseCase(client)

	pedidoHandler := handlers.NewPedidoHandler(composerUseCase, lifecycleUseCase, cadastroUseCase)
	cadastroHandler := handlers.NewCadastroHandler(cadastroUseCase)
	statusHandler := handlers.NewStatusHandler(client)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1, statusHandler)
	addPainelRoutes(v1, pedidoHandler, cadastroHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	// The panel is served from another origin during development.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "x-api-key")
	router.Use(cors.New(corsConfig))
}
