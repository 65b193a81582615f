// Package object archives the original bytes of uploaded files.
package object

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"resume-importer/internal/shared/util"
)

// ErrNotFound is returned by Open when no object exists under the key.
var ErrNotFound = errors.New("object not found")

// Object describes a stored upload.
type Object struct {
	Key       string
	Size      int64
	MediaType string
}

// ObjectStore saves and retrieves archived uploads.
type ObjectStore interface {
	Save(ctx context.Context, userID, fileName string, r io.Reader) (Object, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// NewKey places fileName under the user's hashed namespace with a unique
// prefix so repeated uploads never collide.
func NewKey(userID, fileName string) (string, error) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("sanitize file name: %w", err)
	}
	return path.Join(util.HashUserKey(userID), uuid.NewString()+"_"+name), nil
}

// SniffHead reads up to 3 KiB from r for media type detection and returns
// the detected type plus a reader that replays the consumed bytes.
func SniffHead(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, 3072)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", nil, fmt.Errorf("read sniff: %w", err)
	}
	head = head[:n]
	return util.SniffMediaType(head), io.MultiReader(bytes.NewReader(head), r), nil
}
