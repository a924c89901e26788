package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapthttp "mcafe/internal/adapter/http"
	"mcafe/internal/adapter/memory"
	"mcafe/internal/adapter/postgres"
	"mcafe/internal/app"
	"mcafe/internal/config"
	"mcafe/internal/domain"
	"mcafe/internal/session"
)

func main() {
	cfg := config.Load()

	var (
		products domain.ProductRepository
		orders   domain.OrderRepository
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL, cfg.AdminDatabaseURL)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		if cfg.AdminDatabaseURL == "" {
			log.Println("WARN: ADMIN_DATABASE_URL not set, writes use the restricted connection and may be rejected by policy")
		}
		products, orders = db, db
		log.Println("using postgres backend")
	} else {
		log.Println("WARN: DATABASE_URL not set, using the in-memory fallback store")
		store := memory.New()
		products, orders = store, store
	}

	sessions := session.NewManager()
	authSvc := app.NewAuthService(cfg.AdminPassword, cfg.AdminPasswordHash, cfg.OIDCAdminEmail, sessions)
	catalogSvc := app.NewCatalogService(products)
	orderSvc := app.NewOrderService(orders)

	var sso *adapthttp.SSOConfig
	if cfg.SSOEnabled() {
		var err error
		sso, err = adapthttp.NewSSOConfig(context.Background(),
			cfg.OIDCIssuer, cfg.OIDCClientID, cfg.OIDCClientSecret, cfg.OIDCRedirectURL)
		if err != nil {
			log.Fatalf("oidc discovery: %v", err)
		}
		log.Println("admin single sign-on enabled")
	}

	h := adapthttp.New(authSvc, catalogSvc, orderSvc, cfg.WebDir, sso).Handler()
	srv := &http.Server{Addr: cfg.Addr, Handler: h}

	go func() {
		log.Printf("listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
