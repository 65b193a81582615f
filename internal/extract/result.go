package extract

// Content is what an adapter recovers from a file: either Text or Structured.
// The set of variants is closed; switch on the concrete type.
type Content interface {
	content()
}

// Text is plain text recovered from a document or image.
type Text struct {
	Content string
}

// Structured is an already-structured document tree (JSON imports only).
type Structured struct {
	Value any
}

func (Text) content()       {}
func (Structured) content() {}
