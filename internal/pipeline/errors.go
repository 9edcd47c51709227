package pipeline

import "errors"

// Pipeline-level failures. Each aborts before the enrichment fan-out and
// surfaces a single human-readable message to the caller. Per-candidate
// enrichment failures are never represented here: that stage degrades fields
// silently instead of propagating.
var (
	// ErrValidation marks a missing or empty required input. No upstream
	// call is made.
	ErrValidation = errors.New("missing required input")

	// ErrResolution marks a geocoding failure: zero results, an error
	// status, or an unparsable payload.
	ErrResolution = errors.New("could not resolve location")

	// ErrSearch marks a nearby-search transport or parse failure. An empty
	// match list is success with zero leads, not this error.
	ErrSearch = errors.New("place search failed")

	// ErrAuthorization marks an export request from an insufficient tier.
	// Checked before any enrichment work begins.
	ErrAuthorization = errors.New("insufficient permissions")
)
