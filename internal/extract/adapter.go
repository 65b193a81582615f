// Package extract turns uploaded bytes into text or a structured document.
//
// Each supported Format has one Adapter; callers pick it from an Adapters
// table after Detect. Adapters return either a Content value or an *Error,
// never both.
package extract

import (
	"context"

	"resume-importer/internal/ocr"
)

// Adapter recovers content from the raw bytes of one file format.
type Adapter interface {
	Extract(ctx context.Context, data []byte) (Content, error)
}

// AdapterFunc lets ordinary functions act as adapters.
type AdapterFunc func(ctx context.Context, data []byte) (Content, error)

func (f AdapterFunc) Extract(ctx context.Context, data []byte) (Content, error) {
	return f(ctx, data)
}

// Adapters is the dispatch table from Format to Adapter.
type Adapters map[Format]Adapter

// NewAdapters wires the standard adapter for every supported format. Images
// are recognised with engines from provider using language lang.
func NewAdapters(provider ocr.Provider, lang string) Adapters {
	return Adapters{
		FormatPDF:   PDFAdapter{},
		FormatDOCX:  DOCXAdapter{},
		FormatImage: ImageAdapter{Provider: provider, Lang: lang},
		FormatJSON:  JSONAdapter{},
	}
}

// For returns the adapter registered for f.
func (a Adapters) For(f Format) (Adapter, bool) {
	if f == FormatUnsupported {
		return nil, false
	}
	ad, ok := a[f]
	return ad, ok && ad != nil
}
