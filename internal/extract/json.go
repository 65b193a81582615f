package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// JSONAdapter decodes the upload as a JSON document and returns it untouched
// as Structured content; no text extraction happens.
type JSONAdapter struct{}

func (JSONAdapter) Extract(ctx context.Context, data []byte) (Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, newError(KindDecode, FormatJSON, errors.New("invalid utf-8"))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, newError(KindDecode, FormatJSON, fmt.Errorf("decode json: %w", err))
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, newError(KindDecode, FormatJSON, errors.New("decode json: trailing data after document"))
	}
	return Structured{Value: value}, nil
}
