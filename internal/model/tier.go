package model

import "strings"

// AccessTier is the ordered capability level supplied by the hosting
// application's auth system. The pipeline never queries an identity system;
// the tier arrives as an opaque parameter on every call.
type AccessTier int

const (
	TierPublic AccessTier = iota
	TierRegistered
	TierPro
	TierElite
)

// String returns the canonical lowercase tier name.
func (t AccessTier) String() string {
	switch t {
	case TierRegistered:
		return "registered"
	case TierPro:
		return "pro"
	case TierElite:
		return "elite"
	default:
		return "public"
	}
}

// AtLeast reports whether t grants at least the capabilities of min.
func (t AccessTier) AtLeast(min AccessTier) bool {
	return t >= min
}

// ParseTier maps a tier name to an AccessTier. Unknown or empty names fall
// back to TierPublic so an absent header never grants capabilities.
func ParseTier(s string) AccessTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "registered":
		return TierRegistered
	case "pro":
		return TierPro
	case "elite":
		return TierElite
	default:
		return TierPublic
	}
}
