package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	_ "github.com/go-sql-driver/mysql"

	"example.com/admin-console/internal/config"
	domadmin "example.com/admin-console/internal/domain/admin"
	"example.com/admin-console/internal/infra/persistence/memory"
	"example.com/admin-console/internal/infra/persistence/mysql"
	"example.com/admin-console/internal/infra/persistence/postgres"
	"example.com/admin-console/internal/infra/remote"
	orderuc "example.com/admin-console/internal/usecase/order"
	productuc "example.com/admin-console/internal/usecase/product"
)

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

type services struct {
	products *productuc.Service
	orders   *orderuc.Service
}

// clear drops the cached collections once no request can read them.
func (s *services) clear() {
	s.products.Clear()
	s.orders.Clear()
}

func newServices(cfg config.Config, logger *slog.Logger) (*services, error) {
	client, err := remote.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.HTTPTimeout})
	if err != nil {
		return nil, err
	}
	return &services{
		products: productuc.NewService(remote.NewProductRepository(client), logger),
		orders:   orderuc.NewService(remote.NewOrderRepository(client), logger),
	}, nil
}

// openAdminStore returns the configured account store and a function that
// releases its connections.
func openAdminStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (domadmin.Repository, func(), error) {
	switch cfg.AdminStore {
	case config.StoreMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("mysql open: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("mysql ping: %w", err)
		}
		return mysql.NewAdminRepository(db), func() { db.Close() }, nil

	case config.StorePostgres:
		pool, err := postgres.Connect(ctx, cfg.PGDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("pg connect: %w", err)
		}
		return postgres.NewAdminRepository(pool), pool.Close, nil

	case config.StoreMemory:
		repo := memory.NewAdminRepository()
		if cfg.AdminUsername == "" || cfg.AdminPasswordHash == "" {
			logger.Warn("no admin account configured, login is disabled",
				"hint", "set ADMIN_USERNAME and ADMIN_PASSWORD_HASH")
			return repo, func() {}, nil
		}
		repo.Add(domadmin.Admin{
			Username:     cfg.AdminUsername,
			Name:         cfg.AdminUsername,
			PasswordHash: cfg.AdminPasswordHash,
			RoleCode:     domadmin.RoleCodeSuperAdmin,
		})
		return repo, func() {}, nil
	}
	return nil, nil, errors.New("unknown admin store " + cfg.AdminStore)
}
