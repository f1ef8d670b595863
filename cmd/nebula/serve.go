package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/nebula-platform/nebula/internal/auth"
	"github.com/nebula-platform/nebula/internal/config"
	"github.com/nebula-platform/nebula/internal/db"
	"github.com/nebula-platform/nebula/internal/handler"
	"github.com/nebula-platform/nebula/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			sessionManager := auth.NewSessionManager(database, cfg.DB.Driver, cfg.SessionLifetime, !cfg.InsecureCookies)
			userStore := store.NewUserStore(database, cfg.AdminEmail)
			tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
			authMiddleware := auth.NewMiddleware(sessionManager, userStore)

			router := handler.NewRouter(handler.Deps{
				SessionManager: sessionManager,
				AuthMiddleware: authMiddleware,
				Tokens:         tokens,
				UserStore:      userStore,
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
