package retry

import "time"

// Decision is the outcome of evaluating a retry policy for a failure
type Decision struct {
	// Abandon stops retrying; the last operation error is returned
	Abandon bool

	// Delay is how long to wait before the next attempt. It is ignored
	// when Abandon is set. A zero delay retries immediately without
	// suspending.
	Delay time.Duration
}

// Abandon returns the decision to stop retrying
func Abandon() Decision {
	return Decision{Abandon: true}
}

// RetryAfter returns the decision to retry after the given delay
func RetryAfter(delay time.Duration) Decision {
	return Decision{Delay: delay}
}

// RetryNow returns the decision to retry immediately
func RetryNow() Decision {
	return Decision{}
}

// FailureInfo is an immutable snapshot of one call's failure history.
// A new snapshot is derived on every failure; snapshots handed to a
// policy or hook are never modified afterwards, so they may be retained
// and read concurrently.
type FailureInfo struct {
	fails int
	err   error
	since time.Time
}

// NewFailureInfo creates a snapshot directly. It is mainly useful for
// unit-testing policies and hooks outside an executor.
func NewFailureInfo(fails int, err error, since time.Time) *FailureInfo {
	return &FailureInfo{fails: fails, err: err, since: since}
}

// firstFailure starts an episode at the first caught error.
func firstFailure(err error, now time.Time) *FailureInfo {
	return &FailureInfo{fails: 1, err: err, since: now}
}

// next derives the snapshot for a subsequent failure. The episode start
// time is preserved.
func (i *FailureInfo) next(err error) *FailureInfo {
	return &FailureInfo{fails: i.fails + 1, err: err, since: i.since}
}

// Fails returns the number of failures observed so far, starting at 1
func (i *FailureInfo) Fails() int {
	return i.fails
}

// Err returns the most recently caught operation error
func (i *FailureInfo) Err() error {
	return i.err
}

// Since returns the time of the first failure of the episode
func (i *FailureInfo) Since() time.Time {
	return i.since
}
