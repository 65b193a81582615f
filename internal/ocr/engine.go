// Package ocr runs optical character recognition over raster images.
//
// Engines are scoped resources: callers go through Use, which acquires an
// engine for one recognition and releases it on every exit path.
package ocr

import (
	"context"
	"errors"
	"fmt"

	"resume-importer/internal/shared/metrics"
)

// DefaultLang is the language model loaded when none is requested.
const DefaultLang = "eng"

// Engine recognises text in images. An Engine is owned by a single caller
// and must be closed exactly once.
type Engine interface {
	Recognize(ctx context.Context, image []byte) (string, error)
	Close() error
}

// Provider hands out engines for a language model.
type Provider interface {
	Acquire(ctx context.Context, lang string) (Engine, error)
}

// Use acquires an engine, runs fn with it and releases it afterwards, also
// when fn fails, panics or ctx is cancelled. A release failure is joined to
// the returned error.
func Use(ctx context.Context, p Provider, lang string, fn func(Engine) error) (err error) {
	if p == nil {
		return errors.New("ocr provider not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if lang == "" {
		lang = DefaultLang
	}

	eng, err := p.Acquire(ctx, lang)
	if err != nil {
		return fmt.Errorf("acquire ocr engine lang=%s: %w", lang, err)
	}
	metrics.OCREngineAcquired()
	defer func() {
		metrics.OCREngineReleased()
		if cerr := eng.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("release ocr engine: %w", cerr))
		}
	}()

	return fn(eng)
}
