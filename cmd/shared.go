package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/pandamj/internal/progress"
	"github.com/abhisek/pandamj/internal/settings"
	"github.com/abhisek/pandamj/internal/store"
)

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// stores bundles the SQLite handle with the blob-backed stores on top of it.
type stores struct {
	db       *store.Store // nil when the database could not be opened
	openErr  error
	repo     store.BlobRepo
	progress *progress.Store
	settings *settings.Store
}

func (s *stores) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// requirePersistent fails for commands whose only effect is on disk.
func (s *stores) requirePersistent() error {
	if s.db == nil {
		return fmt.Errorf("database unavailable: %w", s.openErr)
	}
	return nil
}

// openStores opens the database at the configured path. When it cannot
// be opened the stores run on an in-memory repo for this process.
func openStores() *stores {
	dbPath, err := resolveDBPath()
	if err != nil {
		return newStores(nil, fmt.Errorf("resolve DB path: %w", err))
	}
	return openStoresAt(dbPath)
}

func openStoresAt(dbPath string) *stores {
	db, err := store.Open(dbPath)
	if err != nil {
		log.WithError(err).WithField("path", dbPath).Warn("Cannot open store, progress will not be saved")
		return newStores(nil, err)
	}
	log.WithField("path", dbPath).Debug("Opened store")
	return newStores(db, nil)
}

func newStores(db *store.Store, openErr error) *stores {
	var repo store.BlobRepo = store.NewMemoryRepo()
	if db != nil {
		repo = db.BlobRepo()
	}
	return &stores{
		db:       db,
		openErr:  openErr,
		repo:     repo,
		progress: progress.NewStore(repo, progress.WithLogger(log), progress.WithDegraded(db == nil)),
		settings: settings.NewStore(repo, log),
	}
}
