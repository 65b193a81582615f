package ocr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
)

// Config controls the tesseract-backed provider.
type Config struct {
	Binary      string // binary name or absolute path; if empty -> "tesseract"
	Lang        string // default "eng"
	TessdataDir string
	PSM         int    // page segmentation mode; 0 keeps the tesseract default
	ScratchDir  string // parent for per-engine scratch dirs; "" uses os.TempDir
}

// Tesseract provides engines that shell out to the tesseract CLI. Each engine
// owns a private scratch directory that is removed on Close.
type Tesseract struct {
	cfg      Config
	runner   Runner
	lookPath func(string) (string, error)
	logger   *slog.Logger
}

// NewTesseract builds a provider, filling in defaults.
func NewTesseract(cfg Config, logger *slog.Logger) *Tesseract {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Binary == "" {
		cfg.Binary = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = DefaultLang
	}
	return &Tesseract{
		cfg:      cfg,
		runner:   execRunner{logger: logger},
		lookPath: exec.LookPath,
		logger:   logger,
	}
}

// Acquire resolves the binary and prepares a scratch directory.
func (t *Tesseract) Acquire(ctx context.Context, lang string) (Engine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if lang == "" {
		lang = t.cfg.Lang
	}
	bin, err := t.lookPath(t.cfg.Binary)
	if err != nil {
		return nil, fmt.Errorf("tesseract binary %q: %w", t.cfg.Binary, err)
	}
	dir, err := os.MkdirTemp(t.cfg.ScratchDir, "ocr-*")
	if err != nil {
		return nil, fmt.Errorf("ocr scratch dir: %w", err)
	}
	t.logger.Debug("ocr engine acquired", "lang", lang, "dir", dir)
	return &tesseractEngine{
		bin:    bin,
		lang:   lang,
		dir:    dir,
		cfg:    t.cfg,
		runner: t.runner,
		logger: t.logger,
	}, nil
}

type tesseractEngine struct {
	bin    string
	lang   string
	dir    string
	cfg    Config
	runner Runner
	logger *slog.Logger

	mu     sync.Mutex
	n      int
	closed bool
}

var errEngineClosed = errors.New("ocr engine closed")

// Recognize writes the image into the scratch dir and runs
// tesseract <img> stdout -l <lang>.
func (e *tesseractEngine) Recognize(ctx context.Context, image []byte) (string, error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return "", errEngineClosed
	}
	e.n++
	in := filepath.Join(e.dir, "input-"+strconv.Itoa(e.n))
	e.mu.Unlock()

	if err := os.WriteFile(in, image, 0o600); err != nil {
		return "", fmt.Errorf("write ocr input: %w", err)
	}

	args := []string{in, "stdout", "-l", e.lang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}

	out, errb, err := e.runner.Run(ctx, Invocation{Bin: e.bin, Args: args, Dir: e.dir, Lang: e.lang})
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, truncate(string(errb), 512))
	}
	return string(out), nil
}

// Close removes the scratch directory. Calling it twice is a no-op.
func (e *tesseractEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	if err := os.RemoveAll(e.dir); err != nil {
		return fmt.Errorf("remove ocr scratch dir %q: %w", e.dir, err)
	}
	e.logger.Debug("ocr engine released", "dir", e.dir)
	return nil
}
