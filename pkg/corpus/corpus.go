package corpus

import (
	"context"
	"errors"
)

var (
	ErrInvalidReference = errors.New("invalid reference")
)

// Document is a loosely-typed response document. Endpoints vary in which
// fields they populate, so documents stay generic maps and callers pick out
// what they need. The alias keeps documents assertable as plain maps.
type Document = map[string]any

// TextOptions narrow a passage fetch to a specific edition or rendering.
type TextOptions struct {
	// Version selects an edition, either "language" or
	// "language|versionTitle".
	Version string

	// FillMissing fills segments missing from the selected version with
	// text from other versions.
	FillMissing bool

	// Format is one of "text_only", "strip_only_footnotes" or
	// "wrap_all_entities". Empty means the service default.
	Format string
}

// Provider fetches the document of a single passage reference.
type Provider interface {
	Get(ctx context.Context, ref string, options *TextOptions) (Document, error)
}
