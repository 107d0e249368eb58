package domain

import "context"

// PopularityProvider returns per-state search interest for a term over the last
// five years, US only.
type PopularityProvider interface {
	InterestByRegion(ctx context.Context, term string) ([]PopularityRecord, error)
}

// ReferenceLookup resolves a state name to its static attributes.
type ReferenceLookup interface {
	Reference(state string) (StateReference, bool)
}
