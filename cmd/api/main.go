package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"ubjewellers/internal/adapter/api"
	"ubjewellers/internal/adapter/api/handler"
	apimiddleware "ubjewellers/internal/adapter/api/middleware"
	"ubjewellers/internal/adapter/api/router"
	"ubjewellers/internal/adapter/repository"
	"ubjewellers/internal/adapter/repository/mongodb"
	domainrepo "ubjewellers/internal/domain/repository"
	"ubjewellers/internal/domain/service"
	"ubjewellers/internal/infrastructure/auth"
	"ubjewellers/internal/infrastructure/database"
	"ubjewellers/internal/infrastructure/firebase"
	"ubjewellers/internal/infrastructure/payment"
	"ubjewellers/internal/infrastructure/ratelimit"
	"ubjewellers/internal/infrastructure/storage"
	"ubjewellers/internal/infrastructure/websocket"
	"ubjewellers/internal/usecase"
	"ubjewellers/pkg/config"
	"ubjewellers/pkg/logger"
	"ubjewellers/pkg/response"
)

type repositories struct {
	products   domainrepo.ProductRepository
	orders     domainrepo.OrderRepository
	users      domainrepo.UserRepository
	categories domainrepo.CategoryRepository
	carts      domainrepo.CartRepository
	wishlists  domainrepo.WishlistRepository
	reviews    domainrepo.ReviewRepository
	ping       handler.StoreCheck
	close      func()
}

func main() {
	if err := run(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// run owns every resource it opens, so deferred cleanups always execute
// before main exits.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger.Init(cfg.LogLevel, cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	creds, err := database.CredentialOptions(cfg)
	if err != nil {
		return fmt.Errorf("resolve credentials: %w", err)
	}

	repos, err := openStore(ctx, cfg, creds)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	defer repos.close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret)
	verifiers := []service.TokenVerifier{jwtManager}
	if cfg.FirebaseAuthEnabled {
		fbVerifier, err := firebase.NewAuthVerifier(ctx, cfg.FirebaseProject, creds...)
		if err != nil {
			return fmt.Errorf("initialize Firebase Auth: %w", err)
		}
		verifiers = append(verifiers, fbVerifier)
	}

	var imageHost service.ImageHost = storage.NotConfigured{}
	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.CORSOrigins, creds...)
		if err != nil {
			return fmt.Errorf("initialize Cloud Storage: %w", err)
		}
		defer storageClient.Close()
		imageHost = storageClient
	} else {
		logger.Warn("STORAGE_BUCKET not set, image uploads are disabled")
	}

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	limiter := ratelimit.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	limiter.StartCleanupRoutine(ctx, 30*time.Minute)

	authUseCase := usecase.NewAuthUseCase(jwtManager, repos.users, cfg.JWTExpiry, verifiers...)
	ledger := usecase.NewStockLedger(repos.products, repos.orders)
	categoryUseCase := usecase.NewCategoryUseCase(repos.categories, repos.products)

	handler.Setup(handler.UseCases{
		Auth:     authUseCase,
		User:     usecase.NewUserUseCase(repos.users),
		Product:  usecase.NewProductUseCase(repos.products, repos.reviews, repos.carts, repos.wishlists),
		Category: categoryUseCase,
		Review:   usecase.NewReviewUseCase(repos.reviews, repos.products, repos.users),
		Cart:     usecase.NewCartUseCase(repos.carts, repos.products),
		Wishlist: usecase.NewWishlistUseCase(repos.wishlists, repos.products),
		Order:    usecase.NewOrderUseCase(ledger, repos.orders, repos.products, repos.users, repos.carts, wsManager),
		Payment:  usecase.NewPaymentUseCase(paymentProvider(cfg), cfg.PaymentCurrency),
		Upload:   usecase.NewUploadUseCase(imageHost),
		Dashboard: usecase.NewDashboardUseCase(repos.orders, repos.users, repos.products, usecase.DashboardConfig{
			Location:         loc,
			IncomeOrder:      cfg.IncomeStatsOrder,
			SalesSlots:       cfg.SalesSeriesSlots,
			TopCategoryLimit: cfg.TopCategoryLimit,
		}),
	})

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = response.HTTPErrorHandler
	e.Validator = api.NewValidator()

	e.Use(middleware.Recover())
	e.Use(apimiddleware.RequestLogger)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))
	e.Use(middleware.BodyLimit("6M"))
	e.Use(echoprometheus.NewMiddleware("ubjewellers"))

	router.Setup(
		e,
		apimiddleware.NewAuthMiddleware(authUseCase),
		limiter,
		handler.NewWebSocketHandler(wsManager, cfg.CORSOrigins),
		handler.NewHealthHandler(repos.ping),
	)

	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server on port %s (%s store)", cfg.ServerPort, cfg.StoreDriver)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		return fmt.Errorf("server stopped: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
	logger.Info("Server stopped")
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, creds []option.ClientOption) (*repositories, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, db, err := database.ConnectToMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			logger.Warn("Failed to ensure mongo indexes: %v", err)
		}

		return &repositories{
			products:   mongodb.NewProductRepository(db),
			orders:     mongodb.NewOrderRepository(db),
			users:      mongodb.NewUserRepository(db),
			categories: mongodb.NewCategoryRepository(db),
			carts:      mongodb.NewCartRepository(db),
			wishlists:  mongodb.NewWishlistRepository(db),
			reviews:    mongodb.NewReviewRepository(db),
			ping: func(ctx context.Context) error {
				return client.Ping(ctx, nil)
			},
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					logger.Error("Failed to disconnect mongo: %v", err)
				}
			},
		}, nil

	default:
		client, err := database.NewFirestoreClient(ctx, cfg.FirebaseProject, creds...)
		if err != nil {
			return nil, err
		}

		return &repositories{
			products:   repository.NewFirestoreProductRepository(client),
			orders:     repository.NewFirestoreOrderRepository(client),
			users:      repository.NewFirestoreUserRepository(client),
			categories: repository.NewFirestoreCategoryRepository(client),
			carts:      repository.NewFirestoreCartRepository(client),
			wishlists:  repository.NewFirestoreWishlistRepository(client),
			reviews:    repository.NewFirestoreReviewRepository(client),
			ping: func(ctx context.Context) error {
				return database.PingFirestore(ctx, client)
			},
			close: func() {
				if err := client.Close(); err != nil {
					logger.Error("Failed to close firestore: %v", err)
				}
			},
		}, nil
	}
}

func paymentProvider(cfg *config.Config) service.PaymentProvider {
	if cfg.PaymentProvider == config.PaymentMidtrans {
		return payment.NewMidtransProvider(cfg.MidtransServerKey, cfg.MidtransEnvironment)
	}
	return payment.NewStripeProvider(cfg.StripeSecretKey)
}
