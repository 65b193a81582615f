package util

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const octetStream = "application/octet-stream"

// SniffMediaType guesses the media type of data from its leading bytes.
// Parameters such as charset are dropped.
func SniffMediaType(data []byte) string {
	mt := mimetype.Detect(data).String()
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return strings.TrimSpace(mt)
}

// ResolveMediaType keeps a meaningful declared type and sniffs otherwise.
func ResolveMediaType(declared string, data []byte) string {
	d := strings.TrimSpace(declared)
	if d == "" || strings.HasPrefix(strings.ToLower(d), octetStream) {
		return SniffMediaType(data)
	}
	return d
}
