// Package main is the entry point for the vendia API server.
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

	"vendia/internal/config"
	"vendia/internal/core/security"
	"vendia/internal/domain/auth"
	"vendia/internal/domain/catalogs/category"
	"vendia/internal/domain/catalogs/customer"
	"vendia/internal/domain/catalogs/product"
	"vendia/internal/domain/company"
	"vendia/internal/domain/reporting"
	"vendia/internal/domain/sales"
	v1 "vendia/internal/infrastructure/http/v1"
	"vendia/internal/infrastructure/storage/postgres"
	"vendia/internal/infrastructure/storage/postgres/auth_repo"
	"vendia/internal/infrastructure/storage/postgres/catalog_repo"
	"vendia/internal/infrastructure/storage/postgres/document_repo"
	"vendia/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	log.Infow("starting server", "app", cfg.App.Name, "env", cfg.App.Env)

	poolCfg := postgres.DefaultPoolConfig(cfg.Database.DSN())
	poolCfg.MaxConns = cfg.Database.MaxConns
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// Repositories
	userRepo := auth_repo.NewUserRepo(txManager)
	tokenRepo := auth_repo.NewTokenRepo(txManager)
	companyRepo := catalog_repo.NewCompanyRepo(txManager)
	productRepo := catalog_repo.NewProductRepo(txManager)
	customerRepo := catalog_repo.NewCustomerRepo(txManager)
	categoryRepo := catalog_repo.NewCategoryRepo(txManager)
	saleRepo := document_repo.NewSaleRepo(txManager)
	reportSource := document_repo.NewReportSource(txManager)

	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}

	// Services
	jwtService := auth.NewJWTService(auth.JWTConfig{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		AccessTokenTTL: cfg.JWT.AccessTokenTTL,
	})
	authService := auth.NewService(userRepo, tokenRepo, txManager, jwtService, auth.ServiceConfig{
		MaxLoginAttempts:   cfg.Auth.MaxLoginAttempts,
		LockDuration:       cfg.Auth.LockDuration,
		PasswordMinLength:  cfg.Auth.PasswordMinLength,
		RefreshTokenExpiry: cfg.JWT.RefreshTTL,
	})

	companyService := company.NewService(companyRepo, txManager)
	productService := product.NewService(productRepo, txManager)
	customerService := customer.NewService(customerRepo, txManager)
	categoryService := category.NewService(categoryRepo, txManager)

	salesGateway := catalog_repo.NewSalesGateway(productRepo)
	salesService := sales.NewService(saleRepo, salesGateway, txManager)
	salesService.SetAuditTrail(document_repo.NewSaleAuditTrail(auditService))

	reportingService := reporting.NewService(reportSource, nil, reporting.ServiceConfig{
		WeekStart: time.Weekday(cfg.Report.WeekStart),
	})

	menuPolicy, err := security.NewMenuPolicy(security.DefaultMenu())
	if err != nil {
		log.Fatalw("failed to compile menu policy", "error", err)
	}

	router := v1.NewRouter(v1.RouterConfig{
		Config:           cfg,
		Logger:           log,
		Pool:             pool.Unwrap(),
		JWT:              jwtService,
		MenuPolicy:       menuPolicy,
		AuthService:      authService,
		CompanyService:   companyService,
		ProductService:   productService,
		CustomerService:  customerService,
		CategoryService:  categoryService,
		SalesService:     salesService,
		ReportingService: reportingService,
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("listening", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	}

	log.Info("server stopped")
}
