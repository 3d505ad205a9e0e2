package main

import (
	"context"
	"log"

	"dine-and-deliver/internal/config"
	"dine-and-deliver/internal/modules/auth"
	"dine-and-deliver/internal/modules/dish"
	"dine-and-deliver/internal/modules/order"
	"dine-and-deliver/internal/modules/vendor"
	"dine-and-deliver/pkg/notify"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	dbpool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(ctx); err != nil {
		log.Fatalf("Database ping failed: %v", err)
	}
	log.Println("Connected to the database.")

	var googleOAuth *oauth2.Config
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		googleOAuth = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		}
	}

	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.NotifySender != "" {
		emailNotifier, err := notify.NewEmailNotifier(ctx, cfg.AWSRegion, cfg.NotifySender)
		if err != nil {
			log.Printf("Email notifications disabled: %v", err)
		} else {
			notifier = emailNotifier
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowCredentials: true,
	}))

	authRepo := auth.NewRepository(dbpool)
	authService := auth.NewService(authRepo, cfg.JWTSecret, googleOAuth)

	vendorRepo := vendor.NewRepository(dbpool)
	vendorService := vendor.NewService(vendorRepo)

	dishRepo := dish.NewRepository(dbpool)
	dishService := dish.NewService(dishRepo, vendorService)

	orderRepo := order.NewRepository(dbpool)
	orderService := order.NewService(orderRepo, vendorService, dishRepo, notifier)

	api := e.Group("/api")
	auth.NewHandler(authService).RegisterRoutes(api.Group("/auth"))

	protected := auth.Middleware(cfg.JWTSecret)
	vendor.NewHandler(vendorService).RegisterRoutes(api.Group("/vendors", protected))
	dish.NewHandler(dishService).RegisterRoutes(api.Group("/dishes", protected))
	order.NewHandler(orderService).RegisterRoutes(api.Group("/orders", protected))

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
