package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"resume-importer/internal/bootstrap"
	"resume-importer/internal/importer"
	"resume-importer/internal/resume"
	"resume-importer/internal/shared/config"
	"resume-importer/internal/shared/telemetry"
	"resume-importer/internal/shared/util"
)

type options struct {
	mediaType   string
	concurrency int
	base        string
	out         string
	report      bool
	logLevel    string
}

// newCoordinator is replaced in tests to avoid the tesseract binary.
var newCoordinator = func(cfg config.Config, logger *slog.Logger) *importer.Coordinator {
	return bootstrap.NewCoordinator(cfg, logger)
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import résumé files into a résumé JSON document",
		Long: "Detects the format of each file (PDF, DOCX, image, JSON), extracts its content, " +
			"recovers name, email and phone from text and merges everything into one résumé.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := stdout
			if w == nil {
				w = cmd.OutOrStdout()
			}
			return runImport(cmd.Context(), w, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.mediaType, "type", "t", "", "Media type for every file (default: sniffed from content)")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 0, "Files imported in parallel (default IMPORT_CONCURRENCY)")
	cmd.Flags().StringVarP(&opts.base, "base", "b", "", "Existing résumé JSON to merge into")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the result to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.report, "report", false, "Print per-file outcomes to stderr")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "Log level for pipeline diagnostics")
	return cmd
}

func runImport(ctx context.Context, stdout io.Writer, opts *options, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.Load()
	if opts.concurrency > 0 {
		cfg.ImportConcurrency = opts.concurrency
	}
	logger := telemetry.NewJSONLogger("resume-import-cli", opts.logLevel)

	base := resume.Empty()
	if opts.base != "" {
		raw, err := os.ReadFile(opts.base)
		if err != nil {
			return fmt.Errorf("read base résumé: %w", err)
		}
		if err := json.Unmarshal(raw, &base); err != nil {
			return fmt.Errorf("decode base résumé: %w", err)
		}
	}

	files := make([]importer.UploadedFile, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		files = append(files, importer.UploadedFile{
			Data:      data,
			MediaType: util.ResolveMediaType(opts.mediaType, data),
			FileName:  filepath.Base(p),
		})
	}

	var mu sync.Mutex
	merged := base
	outcomes := newCoordinator(cfg, logger).ImportAll(ctx, files, func(_ context.Context, p resume.Partial) error {
		mu.Lock()
		defer mu.Unlock()
		merged = resume.Merge(merged, p)
		return nil
	})

	if opts.report {
		for _, o := range outcomes {
			line := fmt.Sprintf("%s\t%s\t%s", o.FileName, o.Format, o.Status)
			if o.Error != "" {
				line += "\t" + o.Error
			}
			fmt.Fprintln(os.Stderr, line)
		}
	}

	w := stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(merged)
}
