package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/pandamj/internal/config"
	"github.com/abhisek/pandamj/internal/logging"
	"github.com/abhisek/pandamj/internal/store"
)

// tuiAnnotation marks commands that take over the terminal. Their logs go
// to a file so they do not draw over the screen.
const tuiAnnotation = "tui"

var (
	cfg       *config.Config
	log       *logrus.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "pandamj",
	Short: "Sichuan mahjong strategy coach",
	Long: "PandaMJ is a terminal quiz trainer for Sichuan blood-battle mahjong.\n" +
		"Work through explained drills, clear timed challenge stages and review your mistakes.",
	SilenceUsage:      true,
	Annotations:       map[string]string{tuiAnnotation: "true"},
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a pandamj.yaml config file")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PANDAMJ_DB_PATH)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("no-splash", false, "Skip the welcome animation")

	bindFlagToViper("db.path", rootCmd.PersistentFlags().Lookup("db"))
	bindFlagToViper("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlagToViper("ui.skip_splash", rootCmd.PersistentFlags().Lookup("no-splash"))

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(mistakesCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and builds the logger for every command.
func setup(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(viper.GetViper(), configFile)
	if err != nil {
		return err
	}
	cfg = loaded

	logCfg := cfg.Log
	var fallback io.Writer = cmd.ErrOrStderr()
	if cmd.Annotations[tuiAnnotation] == "true" {
		fallback = nil
		if logCfg.File == "" {
			dbPath, err := resolveDBPath()
			if err != nil {
				return fmt.Errorf("resolve DB path: %w", err)
			}
			logCfg.File = filepath.Join(filepath.Dir(dbPath), "pandamj.log")
		}
	}

	log, logCloser, err = logging.New(logCfg, fallback)
	if err != nil {
		return err
	}
	log.WithField("command", cmd.Name()).Debug("Starting")
	return nil
}

// resolveDBPath returns db.path from flag, env or config file, falling
// back to the default XDG path.
func resolveDBPath() (string, error) {
	if cfg != nil && cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}
