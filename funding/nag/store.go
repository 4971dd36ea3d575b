package nag

import (
	"time"
)

// Kind distinguishes the two independently configured throttle instances.
type Kind string

const (
	// KindOnLoad is the short-lived load-time check.
	KindOnLoad Kind = "on_load"
	// KindAtExit is the longer-lived exit-time check.
	KindAtExit Kind = "at_exit"
)

// Max-age bounds for lockfile rotation. Any configured lifetime is clamped
// into this range.
const (
	MinMaxAge = 600 * time.Second
	MaxMaxAge = 604800 * time.Second
)

// Default lifetimes per kind, applied when no override is configured.
const (
	DefaultOnLoadMaxAge = MinMaxAge
	DefaultAtExitMaxAge = 24 * time.Hour
)

// ClampMaxAge forces a lifetime into [MinMaxAge, MaxMaxAge].
func ClampMaxAge(d time.Duration) time.Duration {
	if d < MinMaxAge {
		return MinMaxAge
	}

	if d > MaxMaxAge {
		return MaxMaxAge
	}

	return d
}

// Entry is one "already notified" record, keyed by library in a store.
type Entry struct {
	Namespace  string    `yaml:"namespace"`
	EnvVarName string    `yaml:"env_variable_name"`
	State      string    `yaml:"state"`
	PID        int       `yaml:"pid"`
	At         time.Time `yaml:"at"`
}

// Store is the throttle contract consumed by the registry. Implementations
// must swallow their own failures: a broken store behaves as "never nagged".
type Store interface {
	// Nagged reports whether a reminder was already recorded for key.
	Nagged(key string) bool
	// Record persists a reminder for key. It is idempotent: a second call
	// for the same key within the store's lifetime is a no-op.
	Record(key string, entry Entry)
	// Rotate clears the store if its lifetime has expired, so reminders can
	// recur after a cooldown.
	Rotate()
	// Touch forces the backing state into existence without adding an entry.
	Touch()
}

// NopStore is the no-persistence fallback: it always allows a reminder.
// Used when no project root is discoverable.
type NopStore struct{}

// Nagged always reports false.
func (NopStore) Nagged(_ string) bool { return false }

// Record drops the entry.
func (NopStore) Record(_ string, _ Entry) {}

// Rotate does nothing.
func (NopStore) Rotate() {}

// Touch does nothing.
func (NopStore) Touch() {}
