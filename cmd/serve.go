package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rotoclone/rotoclone-zone/internal/comments"
	"github.com/rotoclone/rotoclone-zone/internal/config"
	"github.com/rotoclone/rotoclone-zone/internal/db"
	"github.com/rotoclone/rotoclone-zone/internal/server"
	"github.com/rotoclone/rotoclone-zone/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site, rebuilding when content changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		builder := siteBuilder(cfg)
		updating, err := watch.New(cfg.ContentDir, builder.Build)
		if err != nil {
			return err
		}
		defer updating.Close()

		var store *comments.Store
		if cfg.CommentsEnabled() {
			if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
				return err
			}
			database, err := db.Open(filepath.Join(cfg.DataDir, "comments.db"))
			if err != nil {
				return err
			}
			defer database.Close()
			store = comments.NewStore(database)
		}

		srv, err := server.New(cfg, updating.Site, store)
		if err != nil {
			return err
		}
		updating.OnRebuild(srv.NotifyReload)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		if store != nil {
			go refreshCounts(ctx, cfg, store, updating)
		}

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()
		log.Printf("serving %q on http://localhost:%d", cfg.Title, cfg.Port)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-sigCh:
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	},
}

// refreshCounts periodically pulls comment counts from the configured
// Commento instance so entry pages can label their button without a
// blocking request at render time. Fetch failures are logged and the
// previously cached counts keep serving.
func refreshCounts(ctx context.Context, cfg *config.Config, store *comments.Store, updating *watch.UpdatingSite) {
	client := comments.NewCountClient(cfg.Commento.Origin, cfg.Commento.Domain)

	refresh := func() {
		refreshCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := store.Refresh(refreshCtx, client, updating.Site().EntryPaths()); err != nil {
			log.Printf("comments: refreshing counts: %v", err)
		}
	}

	refresh()
	if cfg.CountRefreshMinutes <= 0 {
		return
	}

	ticker := time.NewTicker(time.Duration(cfg.CountRefreshMinutes) * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
