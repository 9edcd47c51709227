// Package gate shapes a lead set according to the caller's access tier. All
// functions are pure: tier and leads in, truncated leads or a permission
// verdict out, no I/O.
package gate

import "github.com/bizleads/local-leads/internal/model"

// Caps holds the per-tier result limits. Zero means unlimited. Pro and Elite
// are never capped.
type Caps struct {
	Public     int
	Registered int
}

// DefaultCaps mirrors the product's standard limits.
func DefaultCaps() Caps {
	return Caps{Public: 5, Registered: 7}
}

// limit returns the cap for a tier, 0 meaning unlimited.
func (c Caps) limit(tier model.AccessTier) int {
	switch tier {
	case model.TierPublic:
		return c.Public
	case model.TierRegistered:
		return c.Registered
	default:
		return 0
	}
}

// Apply truncates leads to the tier's cap. The result is always a strict
// prefix of the input, so search-relevance order survives gating.
func (c Caps) Apply(leads []model.Lead, tier model.AccessTier) []model.Lead {
	n := c.limit(tier)
	if n <= 0 || len(leads) <= n {
		return leads
	}
	return leads[:n]
}

// CanEmailExport reports whether the tier may request the full result set by
// email.
func CanEmailExport(tier model.AccessTier) bool {
	return tier.AtLeast(model.TierRegistered)
}

// CanCSVExport reports whether the tier may request a CSV export.
func CanCSVExport(tier model.AccessTier) bool {
	return tier.AtLeast(model.TierPro)
}
