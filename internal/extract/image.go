package extract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"resume-importer/internal/ocr"
)

// ImageAdapter runs OCR over raster images. An engine is acquired per call
// and released before Extract returns.
type ImageAdapter struct {
	Provider ocr.Provider
	Lang     string
}

func (a ImageAdapter) Extract(ctx context.Context, data []byte) (Content, error) {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, newError(KindRecognition, FormatImage, fmt.Errorf("decode image: %w", err))
	}

	var text string
	err := ocr.Use(ctx, a.Provider, a.Lang, func(e ocr.Engine) error {
		var err error
		text, err = e.Recognize(ctx, data)
		return err
	})
	if err != nil {
		return nil, newError(KindRecognition, FormatImage, err)
	}
	return Text{Content: text}, nil
}
