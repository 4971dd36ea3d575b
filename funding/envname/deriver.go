package envname

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/galtzo-floss/floss-funding-go/funding/constants"
)

// maxSegmentLen bounds a single namespace segment.
const maxSegmentLen = 256

// segmentJoiner separates transformed segments in the derived name.
const segmentJoiner = "__"

// ValidationError reports a malformed namespace segment. It signals an
// integration bug in the caller and is the only error this library raises
// synchronously to the integrator.
type ValidationError struct {
	Segment string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid namespace segment %q: %s", e.Segment, e.Reason)
}

// Deriver turns namespaces into environment-variable names, memoizing each
// result. The zero value is not usable; construct with New or NewWithPrefix.
type Deriver struct {
	mu     sync.RWMutex
	prefix string
	cache  map[string]string
}

// New creates a Deriver with the process-wide prefix: the value of
// FLOSS_FUNDING_ENV_PREFIX when set, otherwise the default prefix.
func New() *Deriver {
	prefix := os.Getenv(constants.EnvNamePrefix)
	if prefix == "" {
		prefix = constants.DefaultEnvNamePrefix
	}

	return NewWithPrefix(prefix)
}

// NewWithPrefix creates a Deriver with an explicit prefix.
func NewWithPrefix(prefix string) *Deriver {
	return &Deriver{
		prefix: prefix,
		cache:  make(map[string]string),
	}
}

// Derive returns the canonical environment-variable name for a namespace.
// The result is deterministic for a fixed prefix and cached per input.
func (d *Deriver) Derive(namespace string) (string, error) {
	d.mu.RLock()
	cached, ok := d.cache[namespace]
	d.mu.RUnlock()

	if ok {
		return cached, nil
	}

	segments := strings.Split(namespace, constants.NamespaceDelimiter)

	transformed := make([]string, 0, len(segments))

	for _, seg := range segments {
		if err := validateSegment(seg); err != nil {
			return "", err
		}

		transformed = append(transformed, transformSegment(seg))
	}

	name := strings.ToUpper(d.prefix + strings.Join(transformed, segmentJoiner))

	d.mu.Lock()
	d.cache[namespace] = name
	d.mu.Unlock()

	return name, nil
}

// SetPrefix replaces the prefix for subsequent derivations. Entries cached
// under the old prefix remain until Reset is called.
func (d *Deriver) SetPrefix(prefix string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.prefix = prefix
}

// Reset clears the memo cache. Call after SetPrefix so old names stop being
// served.
func (d *Deriver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cache = make(map[string]string)
}

// validateSegment enforces the segment contract: 1-256 characters, letters
// and digits only.
func validateSegment(seg string) error {
	if seg == "" {
		return &ValidationError{Segment: seg, Reason: "empty segment"}
	}

	if len(seg) > maxSegmentLen {
		return &ValidationError{Segment: seg, Reason: fmt.Sprintf("longer than %d characters", maxSegmentLen)}
	}

	for _, r := range seg {
		if !isAlnum(r) {
			return &ValidationError{Segment: seg, Reason: fmt.Sprintf("disallowed character %q", r)}
		}
	}

	return nil
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// transformSegment inserts an underscore before each transition into an
// uppercase run, strips a resulting leading underscore, and uppercases:
// "FlossFunding" becomes "FLOSS_FUNDING", "V2" stays "V2".
func transformSegment(seg string) string {
	var b strings.Builder

	b.Grow(len(seg) + 4)

	prevUpper := false

	for _, r := range seg {
		upper := r >= 'A' && r <= 'Z'
		if upper && !prevUpper {
			b.WriteByte('_')
		}

		prevUpper = upper

		b.WriteRune(r)
	}

	return strings.ToUpper(strings.TrimPrefix(b.String(), "_"))
}
