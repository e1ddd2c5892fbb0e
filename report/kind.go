package report

import "github.com/pkg/errors"

// Kind selects the representation used for the bivariate
// length-vs-quality plot.
type Kind int

const (
	// KindScatter draws one translucent point per read.
	KindScatter Kind = iota
	// KindKDE draws density contours of a Gaussian kernel estimate.
	KindKDE
	// KindHex draws a binned density map.
	KindHex
)

// ParseKind parses the user-facing kind name ("scatter", "kde" or
// "hex").
func ParseKind(name string) (Kind, error) {
	switch name {
	case "scatter":
		return KindScatter, nil
	case "kde":
		return KindKDE, nil
	case "hex":
		return KindHex, nil
	default:
		return KindScatter, errors.Errorf("unknown plot kind %q (want kde, scatter or hex)", name)
	}
}
