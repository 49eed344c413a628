package routes

import (
	"context"
	"log"
	"strconv"
	"time"

	_ "carbody_insurance/docs" // This will be auto-generated
	"carbody_insurance/internal/adapter/http/handlers"
	"carbody_insurance/internal/adapter/http/middleware"
	repository2 "carbody_insurance/internal/adapter/persistence/repository"
	"carbody_insurance/internal/config"
	"carbody_insurance/internal/infrastructure/database"
	"carbody_insurance/internal/infrastructure/messaging"
	"carbody_insurance/internal/infrastructure/payments"
	"carbody_insurance/internal/ledger"
	"carbody_insurance/internal/usecase"
	"carbody_insurance/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	env := config.Load()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	closeFn := getRoutes(env)
	defer closeFn()

	err := router.Run(":" + strconv.Itoa(env.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(env config.Env) func() {
	repo := newLedgerRepository(env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	snap, err := repo.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load ledger: %v", err)
	}
	state := ledger.Restore(snap)
	log.Printf("[ledger][routes] restored store=%s policies=%d claims=%d seq=%d custody=%d",
		env.LedgerStore, state.PolicyCount(), state.ClaimCount(), state.Sequence(), state.Custody())

	publisher, closeFn := newEventPublisher(env)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(env.MPAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	insuranceUseCase := usecase.NewInsuranceUseCase(state, repo, publisher, paymentGateway).
		WithDefaultPayerEmail(env.MPPayerEmail)

	policyHandler := handlers.NewPolicyHandler(insuranceUseCase)
	claimHandler := handlers.NewClaimHandler(insuranceUseCase)
	custodyHandler := handlers.NewCustodyHandler(insuranceUseCase)

	if env.DevBypassAuth {
		log.Printf("[auth][routes] DEV_BYPASS_AUTH enabled; %s header is trusted", middleware.DevBypassHeader)
	}
	auth := middleware.Caller(middleware.CallerConfig{JWTSecret: env.JWTSecret, DevBypassAuth: env.DevBypassAuth})

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInsuranceRoutes(v1, auth, policyHandler, claimHandler, custodyHandler)
	return closeFn
}

func newLedgerRepository(env config.Env) interfaces.ILedgerRepository {
	if env.LedgerStore == config.LedgerStoreDynamoDB {
		return repository2.NewLedgerDynamoRepository(database.ConnectDynamoDB())
	}
	log.Printf("[ledger][routes] using in-memory ledger store; state is lost on restart")
	return repository2.NewLedgerMemoryRepository()
}

func newEventPublisher(env config.Env) (interfaces.IEventPublisher, func()) {
	if env.NATSURL == "" {
		return messaging.LogPublisher{}, func() {}
	}
	pub, err := messaging.NewNATSPublisher(messaging.Config{
		URL:            env.NATSURL,
		Name:           "carbody-insurance-api",
		Subject:        env.EventsSubject,
		ReconnectWait:  2 * time.Second,
		MaxReconnects:  -1,
		ConnectTimeout: env.NATSTimeout,
	})
	if err != nil {
		log.Printf("[events][routes] NATS unavailable, falling back to log relay: %v", err)
		return messaging.LogPublisher{}, func() {}
	}
	return pub, pub.Close
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
