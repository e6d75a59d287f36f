package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-atm-kiosk/docs"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/facades"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/handlers"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/jwt"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/middlewares"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/repositories"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
	"github.com/sbilibin2017/gw-atm-kiosk/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config is read from the environment after the dotenv file named by -c is loaded.
type config struct {
	App struct {
		Host        string   `env:"HOST" envDefault:"localhost"`
		Port        string   `env:"PORT" envDefault:"8080"`
		LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
		CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173"`
	} `envPrefix:"APP_"`

	Postgres struct {
		Host         string `env:"HOST" envDefault:"localhost"`
		Port         int    `env:"PORT" envDefault:"5432"`
		User         string `env:"USER" envDefault:"user"`
		Password     string `env:"PASSWORD" envDefault:"password"`
		DB           string `env:"DB" envDefault:"database"`
		MaxOpenConns int    `env:"MAX_OPEN_CONNS" envDefault:"16"`
		MaxIdleConns int    `env:"MAX_IDLE_CONNS" envDefault:"8"`
	} `envPrefix:"POSTGRES_"`

	Redis struct {
		Host         string `env:"HOST" envDefault:"localhost"`
		Port         int    `env:"PORT" envDefault:"6379"`
		DB           int    `env:"DB" envDefault:"0"`
		Password     string `env:"PASSWORD"`
		PoolSize     int    `env:"POOL_SIZE" envDefault:"10"`
		MinIdleConns int    `env:"MIN_IDLE_CONNS" envDefault:"2"`
	} `envPrefix:"REDIS_"`

	Kafka struct {
		Brokers     []string `env:"BROKERS" envDefault:"localhost:9092"`
		Topic       string   `env:"TOPIC" envDefault:"kiosk-transactions"`
		MaxAttempts int      `env:"MAX_ATTEMPTS" envDefault:"3"`
	} `envPrefix:"KAFKA_"`

	Exchanger struct {
		Host string `env:"HOST" envDefault:"localhost"`
		Port string `env:"PORT" envDefault:"50051"`
	} `envPrefix:"GW_EXCHANGER_"`

	Rates struct {
		Provider string        `env:"PROVIDER" envDefault:"http"`
		BaseURL  string        `env:"BASE_URL" envDefault:"https://v6.exchangerate-api.com/v6"`
		APIKey   string        `env:"API_KEY"`
		CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"10m"`
		Timeout  time.Duration `env:"TIMEOUT" envDefault:"5s"`
	} `envPrefix:"RATES_"`

	Quotes struct {
		BaseURL  string        `env:"BASE_URL" envDefault:"https://www.alphavantage.co/query"`
		APIKey   string        `env:"API_KEY"`
		CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
		Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
	} `envPrefix:"QUOTES_"`

	JWT struct {
		SecretKey string `env:"SECRET_KEY" envDefault:"my_super_secret_key"`
		ExpSecond int    `env:"EXP_SECOND" envDefault:"300"`
	} `envPrefix:"JWT_"`

	QuickAmounts []int `env:"WITHDRAW_QUICK_AMOUNTS" envDefault:"20,50,100,200,500,1000"`
}

// @title gw-atm-kiosk API
// @version 1.0.0
// @description Backend of the self-service ATM kiosk: card login, cash withdrawal with note breakdowns, currency exchange, transfers, investments and tickets
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads the dotenv file at path, when there is one, and reads the configuration from the environment.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	cfg := &config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.Rates.Provider != "http" && cfg.Rates.Provider != "grpc" {
		return nil, fmt.Errorf("RATES_PROVIDER must be http or grpc, got %q", cfg.Rates.Provider)
	}
	return cfg, nil
}

// deps are the outside systems the router is built on.
type deps struct {
	db          *sqlx.DB
	rdb         *redis.Client
	kafkaWriter services.KafkaWriter
	rates       services.RatesProvider
	quotes      services.QuoteProvider
	registry    *prometheus.Registry
}

// run initializes the logger, database, Redis, Kafka, rate and quote providers and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.App.LogLevel, "service", "gw-atm-kiosk"); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DB)
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Up(db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for transaction events
	kafkaWriter := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Brokers...),
		Topic:        cfg.Kafka.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
		MaxAttempts:  cfg.Kafka.MaxAttempts,
	}
	defer kafkaWriter.Close()

	// Rate provider
	var rates services.RatesProvider
	if cfg.Rates.Provider == "grpc" {
		grpcAddr := fmt.Sprintf("%s:%s", cfg.Exchanger.Host, cfg.Exchanger.Port)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
		}
		defer conn.Close()
		rates = facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn))
	} else {
		rates = facades.NewExchangeRatesHTTPFacade(cfg.Rates.BaseURL, cfg.Rates.APIKey, cfg.Rates.Timeout)
	}
	logger.Log.Infow("rate provider configured", "provider", cfg.Rates.Provider)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := newRouter(cfg, deps{
		db:          db,
		rdb:         rdb,
		kafkaWriter: kafkaWriter,
		rates:       rates,
		quotes:      facades.NewQuotesHTTPFacade(cfg.Quotes.BaseURL, cfg.Quotes.APIKey, cfg.Quotes.Timeout),
		registry:    registry,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.App.Host, cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the chi router.
func newRouter(cfg *config, d deps) http.Handler {
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWT.ExpSecond)*time.Second),
	)
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)

	// Initialize repositories
	cardReadRepo := repositories.NewCardReadRepository(d.db)
	cardWriteRepo := repositories.NewCardWriteRepository(d.db, txGetter)
	accountRepo := repositories.NewAccountRepository(d.db, txGetter)
	transactionRepo := repositories.NewTransactionRepository(d.db, txGetter)
	holdingRepo := repositories.NewHoldingRepository(d.db, txGetter)
	ticketRepo := repositories.NewTicketRepository(d.db, txGetter)
	preferencesRepo := repositories.NewPreferencesRepository(d.db)
	shortcutRepo := repositories.NewShortcutRepository(d.db)
	ratesCache := repositories.NewExchangeRateCacheRepository(d.rdb, cfg.Rates.CacheTTL)
	quoteCache := repositories.NewQuoteCacheRepository(d.rdb, cfg.Quotes.CacheTTL)

	// Initialize services
	ledger := services.NewLedger(transactionRepo, d.kafkaWriter)
	authService := services.NewAuthService(cardReadRepo, cardWriteRepo, accountRepo, tokens)
	accountService := services.NewAccountService(accountRepo, transactionRepo)
	withdrawalService := services.NewWithdrawalService(accountRepo, ledger, cfg.QuickAmounts)
	exchangeService := services.NewExchangeService(d.rates, ratesCache, accountRepo, ledger)
	transferService := services.NewTransferService(accountRepo, ledger)
	investmentService := services.NewInvestmentService(holdingRepo, d.quotes, quoteCache, ledger)
	ticketService := services.NewTicketService(ticketRepo, accountRepo, ledger)
	preferencesService := services.NewPreferencesService(preferencesRepo)
	shortcutService := services.NewShortcutService(shortcutRepo)

	metrics := middlewares.NewMetrics(d.registry)
	tx := middlewares.TxMiddleware(d.db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(metrics.Middleware)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.With(tx).Post("/cards", handlers.NewIssueCardHandler(authService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))

			r.Get("/balance", handlers.NewGetBalanceHandler(accountService, tokens))
			r.Get("/transactions", handlers.NewTransactionsHandler(accountService, tokens))

			r.Get("/withdrawals/quick-amounts", handlers.NewQuickAmountsHandler(withdrawalService))
			r.Post("/withdrawals/denominations/validate", handlers.NewValidateDenominationsHandler(withdrawalService))
			r.Post("/withdrawals/denominations/suggest", handlers.NewSuggestDenominationsHandler(withdrawalService))
			r.With(tx).Post("/withdrawals", handlers.NewWithdrawHandler(withdrawalService, tokens))

			r.Get("/exchange/rates", handlers.NewGetExchangeRatesHandler(exchangeService))
			r.Get("/exchange/convert", handlers.NewConvertHandler(exchangeService))
			r.With(tx).Post("/exchange/withdrawals", handlers.NewExchangeWithdrawHandler(exchangeService, tokens))

			r.With(tx).Post("/transfers", handlers.NewTransferHandler(transferService, tokens))

			r.Get("/investments", handlers.NewPortfolioHandler(investmentService, tokens))
			r.Get("/investments/search", handlers.NewSearchSymbolsHandler(investmentService))
			r.With(tx).Post("/investments", handlers.NewBuyHandler(investmentService, tokens))
			r.With(tx).Post("/investments/{symbol}/liquidate", handlers.NewLiquidateHandler(investmentService, tokens))

			r.Get("/events", handlers.NewEventsHandler(ticketService))
			r.With(tx).Post("/tickets", handlers.NewBookTicketHandler(ticketService, tokens))

			r.Get("/preferences", handlers.NewGetPreferencesHandler(preferencesService, tokens))
			r.Put("/preferences", handlers.NewSavePreferencesHandler(preferencesService, tokens))

			r.Get("/shortcuts", handlers.NewListShortcutsHandler(shortcutService, tokens))
			r.Post("/shortcuts", handlers.NewCreateShortcutHandler(shortcutService, tokens))
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.App.Host, cfg.App.Port)),
	))

	return r
}
