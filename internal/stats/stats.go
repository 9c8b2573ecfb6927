// Package stats defines the immutable line-count record shared by the
// scanner, aggregator and renderers.
package stats

// Stats holds the line counts extracted from one counter report: code lines
// for the configured code language and total lines for the docs language.
type Stats struct {
	Code uint64
	Docs uint64
}

// Add returns the pointwise sum of s and other. Addition is commutative and
// associative, and the zero Stats is the identity.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Code: s.Code + other.Code,
		Docs: s.Docs + other.Docs,
	}
}

// Total returns code plus docs lines.
func (s Stats) Total() uint64 {
	return s.Code + s.Docs
}

// IsZero reports whether both counts are zero.
func (s Stats) IsZero() bool {
	return s == Stats{}
}
