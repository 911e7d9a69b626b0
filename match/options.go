package match

// Options are the per-call knobs for FindAnswer. They are not persisted;
// every call states its own requirements.
type Options struct {
	// MinConfidence is the lowest confidence a local tier match may have
	// and still stop the cascade.
	MinConfidence float64

	// FuzzyEnabled gates tier 3. Exact and keyword tiers always run.
	FuzzyEnabled bool

	// PartialEnabled gates tier 4.
	PartialEnabled bool

	// UseCache enables the query result cache for this call.
	UseCache bool

	// RemoteEnabled allows falling back to the remote generator when local
	// tiers are exhausted.
	RemoteEnabled bool

	// MaxFuzzyCandidates bounds how many candidates the fuzzy tier scores,
	// first-N by arrival order. Zero means DefaultMaxFuzzyCandidates.
	MaxFuzzyCandidates int
}

// DefaultOptions returns the standard matching options: all tiers enabled,
// caching on, minimum confidence 0.4.
func DefaultOptions() Options {
	return Options{
		MinConfidence:      0.4,
		FuzzyEnabled:       true,
		PartialEnabled:     true,
		UseCache:           true,
		RemoteEnabled:      true,
		MaxFuzzyCandidates: DefaultMaxFuzzyCandidates,
	}
}
