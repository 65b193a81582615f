package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFAdapter extracts page text with github.com/ledongthuc/pdf. Pages are
// joined with "\n" and the text fragments of a page with a single space, in
// the order the parser reports them.
type PDFAdapter struct{}

func (PDFAdapter) Extract(ctx context.Context, data []byte) (content Content, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, newError(KindMalformedDocument, FormatPDF, errors.New("empty pdf data"))
	}

	// The parser panics on some corrupt streams instead of returning errors.
	defer func() {
		if rec := recover(); rec != nil {
			content = nil
			err = newError(KindMalformedDocument, FormatPDF, fmt.Errorf("parse pdf: %v", rec))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, newError(KindMalformedDocument, FormatPDF, err)
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, strings.Join(pageFragments(page.Content().Text), " "))
	}
	return Text{Content: strings.Join(pages, "\n")}, nil
}

// pageFragments groups the per-glyph output of the parser into runs that sit
// on one baseline without a horizontal break between them.
func pageFragments(glyphs []pdf.Text) []string {
	var (
		frags []string
		b     strings.Builder
		prev  pdf.Text
	)
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			frags = append(frags, s)
		}
		b.Reset()
	}
	for i, g := range glyphs {
		if i > 0 && !continuesRun(prev, g) {
			flush()
		}
		b.WriteString(g.S)
		prev = g
	}
	flush()
	return frags
}

func continuesRun(prev, next pdf.Text) bool {
	if math.Abs(prev.Y-next.Y) > 0.5 {
		return false
	}
	size := math.Max(prev.FontSize, 1)
	gap := next.X - (prev.X + prev.W)
	return gap > -size && gap < size*0.5
}
