package cmd

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/pandamj/internal/store"
)

const (
	exportOutputKey = "backup.export.output"
	exportGzipKey   = "backup.export.gzip"
	importGzipKey   = "backup.import.gzip"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write progress and settings to an NDJSON backup",
	Long: "Write progress and settings to an NDJSON backup.\n" +
		"Use - for standard output. Files ending in .gz are compressed.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputPath := viper.GetString(exportOutputKey)
		if len(args) == 1 {
			outputPath = args[0]
		}
		gzipEnabled := viper.GetBool(exportGzipKey)
		if outputPath == "" {
			outputPath = defaultExportFilename(gzipEnabled)
		}

		st := openStores()
		defer st.Close()
		if err := st.requirePersistent(); err != nil {
			return err
		}

		n, err := exportBackup(cmd.Context(), st.repo, outputPath, gzipEnabled, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"blobs": n, "output": outputPath}).Info("Export finished")
		if outputPath != "-" {
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", n, outputPath)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore progress and settings from a backup",
	Long: "Restore progress and settings from a backup written by export.\n" +
		"Use - for standard input. Files ending in .gz are decompressed.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStores()
		defer st.Close()
		if err := st.requirePersistent(); err != nil {
			return err
		}

		n, err := importBackup(cmd.Context(), st.repo, args[0], viper.GetBool(importGzipKey), cmd.InOrStdin())
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"blobs": n, "input": args[0]}).Info("Import finished")
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records from %s\n", n, args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Backup file path, - for standard output")
	exportCmd.Flags().Bool("gzip", false, "Compress the output with gzip")
	importCmd.Flags().Bool("gzip", false, "Input is gzip compressed")

	bindFlagToViper(exportOutputKey, exportCmd.Flags().Lookup("output"))
	bindFlagToViper(exportGzipKey, exportCmd.Flags().Lookup("gzip"))
	bindFlagToViper(importGzipKey, importCmd.Flags().Lookup("gzip"))
}

func defaultExportFilename(gzipEnabled bool) string {
	ts := time.Now().UTC().Format("20060102-150405")
	filename := fmt.Sprintf("pandamj-backup-%s.jsonl", ts)
	if gzipEnabled {
		filename += ".gz"
	}
	return filename
}

func isGzipPath(path string) bool {
	return path != "-" && strings.HasSuffix(strings.ToLower(path), ".gz")
}

// exportBackup writes repo to outputPath, or to stdout when it is "-".
func exportBackup(ctx context.Context, repo store.BlobRepo, outputPath string, gzipEnabled bool, stdout io.Writer) (n int, err error) {
	gzipEnabled = gzipEnabled || isGzipPath(outputPath)

	var (
		writer   = stdout
		closeFns []func() error
	)

	if outputPath != "-" {
		if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
			return 0, fmt.Errorf("create output dir: %w", err)
		}
		file, openErr := os.Create(outputPath)
		if openErr != nil {
			return 0, fmt.Errorf("create backup file: %w", openErr)
		}
		writer = file
		closeFns = append(closeFns, file.Close)
	}

	if gzipEnabled {
		gz := gzip.NewWriter(writer)
		writer = gz
		closeFns = append([]func() error{gz.Close}, closeFns...)
	}

	defer func() {
		for _, closer := range closeFns {
			if cerr := closer(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}()

	n, err = store.Export(ctx, repo, writer)
	if err != nil {
		return n, fmt.Errorf("export backup: %w", err)
	}
	return n, nil
}

// importBackup reads a backup from inputPath, or from stdin when it is "-".
func importBackup(ctx context.Context, repo store.BlobRepo, inputPath string, gzipEnabled bool, stdin io.Reader) (n int, err error) {
	gzipEnabled = gzipEnabled || isGzipPath(inputPath)

	var (
		reader  = stdin
		closers []func() error
	)

	if inputPath != "-" {
		file, openErr := os.Open(filepath.Clean(inputPath))
		if openErr != nil {
			return 0, fmt.Errorf("open backup file: %w", openErr)
		}
		reader = file
		closers = append(closers, file.Close)
	}

	defer func() {
		for _, closer := range closers {
			if cerr := closer(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}()

	if gzipEnabled {
		gzr, gzErr := gzip.NewReader(reader)
		if gzErr != nil {
			return 0, fmt.Errorf("open gzip reader: %w", gzErr)
		}
		reader = gzr
		closers = append([]func() error{gzr.Close}, closers...)
	}

	n, err = store.Import(ctx, repo, reader)
	if err != nil {
		return n, fmt.Errorf("import backup: %w", err)
	}
	return n, nil
}
