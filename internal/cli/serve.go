package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"example.com/admin-console/internal/infra/security"
	apihttp "example.com/admin-console/internal/interface/http"
	authuc "example.com/admin-console/internal/usecase/auth"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the console HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			if err := cfg.ValidateServer(); err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := newLogger(os.Stderr, cfg.LogLevel)
			svcs, err := newServices(cfg, logger)
			if err != nil {
				return err
			}

			store, closeStore, err := openAdminStore(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer closeStore()

			tokenSvc := security.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
			passwordSvc := security.NewBcryptService(0)

			api := apihttp.NewAPI(apihttp.Dependencies{
				AuthService:    authuc.NewService(store, passwordSvc, tokenSvc),
				ProductService: svcs.products,
				OrderService:   svcs.orders,
				TokenService:   tokenSvc,
				AdminStore:     store,
				AssetBaseURL:   cfg.AssetBaseURL,
			})

			srv := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           api.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("listening on :%s ...", cfg.Port)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			log.Printf("shutting down ...")
			err = srv.Shutdown(shutdownCtx)
			svcs.clear()
			return err
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides APP_PORT)")
	return cmd
}
