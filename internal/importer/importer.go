// Package importer runs uploaded files through format detection, content
// extraction and field recovery, producing one partial résumé per file.
//
// A failing file never affects the others: every failure is logged and turned
// into an empty partial.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"resume-importer/internal/extract"
	"resume-importer/internal/fields"
	"resume-importer/internal/resume"
	"resume-importer/internal/shared/metrics"
)

// DefaultConcurrency bounds ImportAll when the coordinator has no limit set.
const DefaultConcurrency = 4

// UploadedFile is one file as received from the user. MediaType is the type
// the client declared; FileName is informational only.
type UploadedFile struct {
	Data      []byte
	MediaType string
	FileName  string
}

type Status string

const (
	StatusImported    Status = "imported"
	StatusUnsupported Status = "unsupported"
	StatusFailed      Status = "failed"
)

// Outcome describes what happened to one file of a batch.
type Outcome struct {
	FileName string         `json:"fileName"`
	Format   extract.Format `json:"format"`
	Status   Status         `json:"status"`
	Error    string         `json:"error,omitempty"`
	Partial  resume.Partial `json:"-"`
}

// MergeFunc receives each partial as soon as its file completes.
type MergeFunc func(ctx context.Context, p resume.Partial) error

// Coordinator drives the import pipeline.
type Coordinator struct {
	Adapters    extract.Adapters
	Fields      fields.Extractor
	Logger      *slog.Logger
	Concurrency int
}

func New(adapters extract.Adapters, fx fields.Extractor, logger *slog.Logger, concurrency int) *Coordinator {
	if fx == nil {
		fx = fields.Default
	}
	if logger == nil {
		logger = slog.Default()
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Coordinator{
		Adapters:    adapters,
		Fields:      fx,
		Logger:      logger,
		Concurrency: concurrency,
	}
}

// Import returns the partial résumé recovered from f. It never fails: an
// unsupported or unreadable file yields an empty partial.
func (c *Coordinator) Import(ctx context.Context, f UploadedFile) resume.Partial {
	return c.run(ctx, f).Partial
}

// ImportAll imports files concurrently. merge, when non-nil, is called once
// per file in completion order, never concurrently with itself. Outcomes are
// returned in the order of files.
func (c *Coordinator) ImportAll(ctx context.Context, files []UploadedFile, merge MergeFunc) []Outcome {
	outcomes := make([]Outcome, len(files))
	if len(files) == 0 {
		return outcomes
	}

	limit := c.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	var (
		g       errgroup.Group
		mergeMu sync.Mutex
	)
	g.SetLimit(limit)
	for i, f := range files {
		g.Go(func() error {
			out := c.run(ctx, f)
			if merge != nil {
				if err := c.safeMerge(ctx, &mergeMu, merge, out.Partial); err != nil {
					c.logger().ErrorContext(ctx, "import.merge_failed",
						slog.String("file", f.FileName),
						slog.String("format", string(out.Format)),
						slog.String("error", err.Error()),
					)
					out.Status = StatusFailed
					out.Error = fmt.Sprintf("merge: %v", err)
				}
			}
			outcomes[i] = out
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// safeMerge runs merge under mu and turns a panic into an error so the lock
// is always released and the batch keeps going.
func (c *Coordinator) safeMerge(ctx context.Context, mu *sync.Mutex, merge MergeFunc, p resume.Partial) (err error) {
	mu.Lock()
	defer mu.Unlock()
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("merge panic: %v", rec)
		}
	}()
	return merge(ctx, p)
}

func (c *Coordinator) run(ctx context.Context, f UploadedFile) (out Outcome) {
	start := time.Now()
	format := extract.Detect(f.MediaType)
	out = Outcome{FileName: f.FileName, Format: format}

	defer func() {
		if rec := recover(); rec != nil {
			out = c.failed(ctx, f, format, fmt.Errorf("adapter panic: %v", rec))
		}
		metrics.ObserveImport(string(out.Format), string(out.Status), time.Since(start))
	}()

	adapter, ok := c.Adapters.For(format)
	if !ok {
		c.logger().WarnContext(ctx, "import.unsupported",
			slog.String("file", f.FileName),
			slog.String("mediaType", f.MediaType),
		)
		out.Status = StatusUnsupported
		return out
	}

	content, err := adapter.Extract(ctx, f.Data)
	if err != nil {
		return c.failed(ctx, f, format, err)
	}

	switch v := content.(type) {
	case extract.Structured:
		p, err := resume.FromTree(v.Value)
		if err != nil {
			return c.failed(ctx, f, format, &extract.Error{Kind: extract.KindDecode, Format: format, Err: err})
		}
		out.Partial = p
	case extract.Text:
		got := c.fields().Extract(extract.Normalize(v.Content))
		out.Partial = resume.FromFields(got.Name, got.Email, got.Phone)
	default:
		return c.failed(ctx, f, format, fmt.Errorf("unexpected content %T", content))
	}

	out.Status = StatusImported
	c.logger().DebugContext(ctx, "import.done",
		slog.String("file", f.FileName),
		slog.String("format", string(format)),
	)
	return out
}

func (c *Coordinator) failed(ctx context.Context, f UploadedFile, format extract.Format, err error) Outcome {
	kind := extract.KindOf(err)
	if kind == "" && errors.Is(err, context.Canceled) {
		kind = "Canceled"
	}
	c.logger().ErrorContext(ctx, "import.failed",
		slog.String("file", f.FileName),
		slog.String("format", string(format)),
		slog.String("kind", string(kind)),
		slog.String("error", err.Error()),
	)
	return Outcome{
		FileName: f.FileName,
		Format:   format,
		Status:   StatusFailed,
		Error:    err.Error(),
	}
}

func (c *Coordinator) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func (c *Coordinator) fields() fields.Extractor {
	if c.Fields == nil {
		return fields.Default
	}
	return c.Fields
}
