package routes

import (
	"context"
	"errors"
	"log"
	"net/http"

	_ "marketplace_billing/docs"
	"marketplace_billing/internal/adapter/http/handlers"
	"marketplace_billing/internal/adapter/persistence/repository"
	"marketplace_billing/internal/domain/billing"
	"marketplace_billing/internal/infrastructure/config"
	"marketplace_billing/internal/infrastructure/database"
	"marketplace_billing/internal/infrastructure/export"
	"marketplace_billing/internal/infrastructure/payments"
	"marketplace_billing/internal/usecase"
	"marketplace_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Order      *handlers.OrderHandler
	Payment    *handlers.PaymentHandler
	Earnings   *handlers.EarningsHandler
	Withdrawal *handlers.WithdrawalHandler
	Report     *handlers.ReportHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	h, err := buildHandlers(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to wire dependencies: %v", err)
	}

	router := NewRouter(h)
	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	log.Printf("[server] listening port=%s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, h)
	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return Handlers{}, err
	}

	tables := cfg.DynamoDB.Tables
	orderRepo := repository.NewOrderDynamoRepository(ddb, tables.Orders, tables.Payments, tables.Commissions)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, tables.Payments)
	commissionRepo := repository.NewCommissionDynamoRepository(ddb, tables.Commissions)
	withdrawalRepo := repository.NewWithdrawalDynamoRepository(ddb, tables.Withdrawals)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb, tables.Settings)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	currency := billing.DefaultCurrencyFormat
	currency.Symbol = cfg.Billing.CurrencySymbol
	exporter := export.NewEarningsTable(currency)

	rate := cfg.Billing.DefaultCommissionRate
	orderUseCase := usecase.NewOrderUseCase(orderRepo, paymentRepo, settingsRepo, rate)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, gateway)
	earningsUseCase := usecase.NewEarningsUseCase(commissionRepo, settingsRepo, rate)
	withdrawalUseCase := usecase.NewWithdrawalUseCase(withdrawalRepo, commissionRepo)
	reportUseCase := usecase.NewReportUseCase(orderRepo, commissionRepo, withdrawalRepo, exporter)

	return Handlers{
		Order:      handlers.NewOrderHandler(orderUseCase),
		Payment:    handlers.NewPaymentHandler(paymentUseCase),
		Earnings:   handlers.NewEarningsHandler(earningsUseCase),
		Withdrawal: handlers.NewWithdrawalHandler(withdrawalUseCase),
		Report:     handlers.NewReportHandler(reportUseCase),
	}, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
