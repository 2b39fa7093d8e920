package lock

import "sync"

// Keyed provides per-key mutual exclusion. Multi-step inventory
// mutations (acquisition, banishment, reclamation, theft) hold the lock
// for every player they touch, so concurrent requests against the same
// player serialize instead of losing updates.
type Keyed struct {
	mu    sync.Mutex
	locks map[int64]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyed creates an empty keyed lock set.
func NewKeyed() *Keyed {
	return &Keyed{
		locks: make(map[int64]*entry),
	}
}

// Acquire locks the given key and returns a release function.
func (k *Keyed) Acquire(key int64) func() {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// AcquireAll locks every key in ascending order, which keeps two-player
// operations deadlock-free. Duplicate keys are locked once. The
// returned function releases all of them.
func (k *Keyed) AcquireAll(keys ...int64) func() {
	ordered := make([]int64, 0, len(keys))
	for _, key := range keys {
		dup := false
		for _, seen := range ordered {
			if seen == key {
				dup = true
				break
			}
		}
		if !dup {
			ordered = append(ordered, key)
		}
	}
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j] < ordered[j-1]; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	releases := make([]func(), 0, len(ordered))
	for _, key := range ordered {
		releases = append(releases, k.Acquire(key))
	}

	return func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}
}
