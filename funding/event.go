package funding

import (
	"strings"
	"time"

	"github.com/galtzo-floss/floss-funding-go/funding/constants"
	"github.com/google/uuid"
)

// State is the classification outcome for one (namespace, token) pair.
type State string

const (
	// StateUnactivated is the initial/default state: no token, or a
	// well-formed token that does not (yet) decrypt to an unlocked word.
	StateUnactivated State = "unactivated"
	// StateActivated means the token was accepted, paid or sanctioned-unpaid.
	StateActivated State = "activated"
	// StateInvalid means the token is structurally malformed.
	StateInvalid State = "invalid"
)

// LibraryRef identifies one host library registering under a namespace.
type LibraryRef struct {
	// Name is the library's declared name, used as the throttle key.
	Name string
	// Namespace is the activation scope the library registers under.
	Namespace string
}

// Key returns the throttle key: the declared name, or a delimiter-sanitized
// form of the namespace when no name was declared.
func (l LibraryRef) Key() string {
	if l.Name != "" {
		return l.Name
	}

	return strings.ReplaceAll(l.Namespace, constants.NamespaceDelimiter, "-")
}

// ActivationEvent is the immutable record of one classification outcome for
// one library.
type ActivationEvent struct {
	ID         uuid.UUID
	Library    LibraryRef
	EnvVarName string
	RawToken   string
	State      State
	OccurredAt time.Time
	// Silenced is set when the process-wide silence switch suppressed the
	// reminder this event would otherwise have triggered.
	Silenced bool
}

// newEvent captures a classification outcome at a point in time. Event IDs
// are UUIDv7 so they sort by creation time; the random fallback only fires
// when the entropy source fails.
func newEvent(lib LibraryRef, envVarName, token string, state State, at time.Time, silenced bool) ActivationEvent {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return ActivationEvent{
		ID:         id,
		Library:    lib,
		EnvVarName: envVarName,
		RawToken:   token,
		State:      state,
		OccurredAt: at.UTC(),
		Silenced:   silenced,
	}
}
