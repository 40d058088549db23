package text

// Source identifies which of the accepted response shapes supplied the
// verse payload of a document.
type Source int

const (
	// SourceNone means no shape matched.
	SourceNone Source = iota
	// SourceDirect is a top-level "text" value.
	SourceDirect
	// SourceAliased is a top-level "he" value.
	SourceAliased
	// SourceVersioned is the "text" value of the first entry of a
	// top-level "versions" list.
	SourceVersioned
)

func (s Source) String() string {
	switch s {
	case SourceDirect:
		return "text"

	case SourceAliased:
		return "he"

	case SourceVersioned:
		return "versions"
	}

	return "none"
}

// Resolve locates the verse payload of a loosely-typed response document.
//
// Documents arrive in one of three shapes: a top-level "text" value, a
// top-level "he" value, or a "versions" list whose first entry carries a
// "text" field. Shapes match in that order, by key presence: a present
// "text" key wins even when its value is null or unusable. Non-map input,
// including nil, resolves to no source. Resolve never fails; unusable
// documents simply yield no payload.
func Resolve(doc any) (any, Source) {
	m, ok := doc.(map[string]any)

	if !ok {
		return nil, SourceNone
	}

	if value, ok := m["text"]; ok {
		return value, SourceDirect
	}

	if value, ok := m["he"]; ok {
		return value, SourceAliased
	}

	if versions, ok := m["versions"].([]any); ok && len(versions) > 0 {
		if version, ok := versions[0].(map[string]any); ok {
			return version["text"], SourceVersioned
		}

		return nil, SourceVersioned
	}

	return nil, SourceNone
}
