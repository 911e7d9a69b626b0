package match

// Monitor receives callbacks as the cascade evaluates. Implementations are
// used for instrumentation and tests; all methods may be called from the
// query's goroutine only.
type Monitor interface {
	// CacheHit fires when a query is answered from the cache.
	CacheHit()

	// TierEvaluated fires after a tier runs, whether or not it matched.
	// Matched reports a candidate passing the tier's own score gate, before
	// the caller's minimum confidence is applied.
	TierEvaluated(t MatchType, matched bool)

	// RemoteInvoked fires before the remote generator is called.
	RemoteInvoked()
}

// noopMonitor discards all callbacks.
type noopMonitor struct{}

func (noopMonitor) CacheHit()                     {}
func (noopMonitor) TierEvaluated(MatchType, bool) {}
func (noopMonitor) RemoteInvoked()                {}
