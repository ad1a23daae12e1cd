// Package main provides a CLI tool for seeding the database with
// initial data: the company profile, an admin user, and optional demo
// catalogs and sales.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"vendia/internal/config"
	appctx "vendia/internal/core/context"
	"vendia/internal/core/id"
	"vendia/internal/core/security"
	"vendia/internal/core/types"
	"vendia/internal/domain/catalogs/category"
	"vendia/internal/domain/catalogs/customer"
	"vendia/internal/domain/catalogs/product"
	"vendia/internal/domain/sales"
	"vendia/internal/infrastructure/storage/postgres"
	"vendia/internal/infrastructure/storage/postgres/catalog_repo"
	"vendia/internal/infrastructure/storage/postgres/document_repo"
	"vendia/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.Database.DSN()))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	companyID, err := seedCompany(ctx, pool, log)
	if err != nil {
		log.Fatalw("failed to seed company", "error", err)
	}

	adminID, err := seedAdminUser(ctx, pool, log, companyID)
	if err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log, companyID, adminID); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedCompany(ctx context.Context, pool *postgres.Pool, log *logger.Logger) (id.ID, error) {
	name := os.Getenv("COMPANY_NAME")
	if name == "" {
		name = "Demo Store"
	}

	var existingID id.ID
	err := pool.Pool.QueryRow(ctx,
		`SELECT id FROM companies WHERE NOT deletion_mark ORDER BY code LIMIT 1`,
	).Scan(&existingID)
	if err == nil {
		log.Infow("company already exists", "company_id", existingID)
		return existingID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return id.Nil(), fmt.Errorf("check company exists: %w", err)
	}

	companyID := id.New()
	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO companies (id, code, name, plan, deletion_mark, version)
		VALUES ($1, 'C-000001', $2, 'free', false, 1)
	`, companyID, name)
	if err != nil {
		return id.Nil(), fmt.Errorf("insert company: %w", err)
	}

	log.Infow("company created", "company_id", companyID, "name", name)
	return companyID, nil
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger, companyID id.ID) (id.ID, error) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID id.ID
	err := pool.Pool.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1 AND deleted_at IS NULL`,
		adminEmail,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "email", adminEmail, "user_id", existingID)
		return existingID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return id.Nil(), fmt.Errorf("check admin exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return id.Nil(), fmt.Errorf("hash password: %w", err)
	}

	userID := id.New()
	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO users (
			id, company_id, username, email, password_hash, full_name,
			role, is_active, failed_login_attempts, version
		)
		VALUES ($1, $2, 'admin', $3, $4, 'Administrator', 'admin', true, 0, 1)
	`, userID, companyID, adminEmail, string(passwordHash))
	if err != nil {
		return id.Nil(), fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "email", adminEmail, "user_id", userID)
	return userID, nil
}

// seedDemoData creates demo catalogs and a couple of sales through the
// domain services, under the identity of the admin user.
func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger, companyID, adminID id.ID) error {
	ctx = appctx.WithUser(ctx, &appctx.UserContext{
		UserID:    adminID.String(),
		CompanyID: companyID.String(),
		Username:  "admin",
		Role:      "admin",
	})
	ctx = security.WithUserID(ctx, adminID.String())

	txManager := postgres.NewTxManager(pool)
	categoryRepo := catalog_repo.NewCategoryRepo(txManager)
	productRepo := catalog_repo.NewProductRepo(txManager)
	customerRepo := catalog_repo.NewCustomerRepo(txManager)
	saleRepo := document_repo.NewSaleRepo(txManager)

	categoryService := category.NewService(categoryRepo, txManager)
	productService := product.NewService(productRepo, txManager)
	customerService := customer.NewService(customerRepo, txManager)
	salesService := sales.NewService(saleRepo, catalog_repo.NewSalesGateway(productRepo), txManager)

	drinks := category.NewCategory("", "Drinks")
	snacks := category.NewCategory("", "Snacks")
	for _, c := range []*category.Category{drinks, snacks} {
		if err := categoryService.Create(ctx, c); err != nil {
			return fmt.Errorf("create category %q: %w", c.Name, err)
		}
	}

	products := []*product.Product{
		demoProduct("Espresso", drinks.ID, "2.50", 100),
		demoProduct("Orange Juice", drinks.ID, "3.90", 50),
		demoProduct("Granola Bar", snacks.ID, "1.75", 200),
	}
	for _, p := range products {
		if err := productService.Create(ctx, p); err != nil {
			return fmt.Errorf("create product %q: %w", p.Name, err)
		}
	}

	walkIn := customer.NewCustomer("", "Walk-in Customer")
	if err := customerService.Create(ctx, walkIn); err != nil {
		return fmt.Errorf("create customer: %w", err)
	}

	snapshot, err := salesService.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("load catalog snapshot: %w", err)
	}

	draft := sales.NewDraft()
	draft.AddLine()
	draft.SetLineItem(0, products[0].ID, snapshot)
	draft.SetLineQuantity(0, decimal.NewFromInt(2))
	draft.AddLine()
	draft.SetLineItem(1, products[2].ID, snapshot)
	draft.SetCustomer(&walkIn.ID)

	sale, err := salesService.Submit(ctx, draft)
	if err != nil {
		return fmt.Errorf("submit demo sale: %w", err)
	}

	log.Infow("demo data created",
		"categories", 2,
		"products", len(products),
		"sale_number", sale.Number)
	return nil
}

func demoProduct(name string, categoryID id.ID, price string, stock int) *product.Product {
	p := product.NewProduct("", name)
	p.CategoryID = &categoryID
	p.SalePrice, _ = types.MoneyFromString(price)
	p.Stock = decimal.NewFromInt(int64(stock))
	p.MinStock = decimal.NewFromInt(5)
	return p
}
