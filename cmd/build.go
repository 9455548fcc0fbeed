package cmd

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rotoclone/rotoclone-zone/internal/comments"
	"github.com/rotoclone/rotoclone-zone/internal/db"
	"github.com/rotoclone/rotoclone-zone/internal/progress"
	"github.com/rotoclone/rotoclone-zone/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the site to a directory of static files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		built, err := siteBuilder(cfg).Build()
		if err != nil {
			return err
		}

		static := &site.StaticBuild{
			Site:           built,
			OutputDir:      cfg.OutputDir,
			CommentoOrigin: cfg.Commento.Origin,
		}

		// Cached counts are optional; a missing database just means
		// every entry renders with the default button label.
		if cfg.CommentsEnabled() {
			database, err := db.Open(filepath.Join(cfg.DataDir, "comments.db"))
			if err == nil {
				defer database.Close()
				store := comments.NewStore(database)
				if refresh, _ := cmd.Flags().GetBool("refresh-counts"); refresh {
					ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
					defer cancel()
					client := comments.NewCountClient(cfg.Commento.Origin, cfg.Commento.Domain)
					if err := store.Refresh(ctx, client, built.EntryPaths()); err != nil {
						log.Printf("comments: refreshing counts: %v", err)
					}
				}
				static.CommentCount = func(path string) int {
					count, err := store.Count(cmd.Context(), path)
					if err != nil {
						log.Printf("comments: reading cached count for %s: %v", path, err)
						return 0
					}
					return count
				}
			}
		}

		reporter := progress.NewReporter()
		reporter.Start(static.PageCount())
		static.Report = func(done int, page string) {
			reporter.Update(done, page)
		}

		written, err := static.Run()
		reporter.Finish()
		if err != nil {
			return err
		}

		fmt.Printf("Wrote %d pages to %s\n", written, cfg.OutputDir)
		return nil
	},
}

func init() {
	buildCmd.Flags().Bool("refresh-counts", false, "fetch fresh comment counts before rendering")
	rootCmd.AddCommand(buildCmd)
}
