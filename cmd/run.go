package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/pandamj/internal/app"
	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/screen"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st := openStores()
	defer st.Close()

	ctx := cmd.Context()
	// First read; a failing repo flips the store into memory mode here.
	st.progress.Load(ctx)
	deps := screen.Deps{
		Catalog:  catalog.Default(),
		Progress: st.progress,
		Settings: st.settings.Load(ctx),
		Log:      log,
		Now:      time.Now,
	}
	if st.progress.Degraded() {
		log.Warn("Progress storage unavailable, continuing in memory")
	}

	log.Info("Starting TUI")
	return app.Run(deps, app.Options{SkipSplash: cfg.UI.SkipSplash})
}
