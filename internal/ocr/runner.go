package ocr

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// Invocation is one recognition command. Dir is the engine's scratch
// directory and becomes the working directory, so tesseract's side files
// are removed with it.
type Invocation struct {
	Bin  string
	Args []string
	Dir  string
	Lang string
}

// Runner executes an Invocation; tests substitute a stub.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (stdout, stderr []byte, err error)
}

// stderrLogLimit caps how much tesseract diagnostic output reaches the logs.
const stderrLogLimit = 4 << 10

type execRunner struct {
	logger *slog.Logger
}

// Run pins tesseract to one OpenMP thread: files of a batch already run in
// parallel, and letting each process grab every core thrashes the host.
func (r execRunner) Run(ctx context.Context, inv Invocation) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, inv.Bin, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Env = append(os.Environ(), "OMP_THREAD_LIMIT=1")
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	attrs := []slog.Attr{
		slog.String("lang", inv.Lang),
		slog.String("dir", inv.Dir),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", err.Error()),
			slog.String("stderr", truncate(errb.String(), stderrLogLimit)),
		)
		r.logger.LogAttrs(ctx, slog.LevelError, "ocr.exec_failed", attrs...)
	} else {
		attrs = append(attrs, slog.Int("text_bytes", out.Len()))
		r.logger.LogAttrs(ctx, slog.LevelDebug, "ocr.exec_done", attrs...)
	}
	return out.Bytes(), errb.Bytes(), err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
