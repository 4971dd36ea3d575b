package funding

import (
	"time"

	"github.com/galtzo-floss/floss-funding-go/funding/constants"
	"github.com/galtzo-floss/floss-funding-go/funding/crypto"
	"github.com/galtzo-floss/floss-funding-go/funding/wordlist"
)

// Classifier computes the activation state for (namespace, token) pairs.
// Classification is a pure function of its inputs and the current word
// window; it mutates nothing.
type Classifier struct {
	words     *wordlist.Window
	decryptor *crypto.Decryptor
	now       func() time.Time
}

// NewClassifier builds a Classifier over a word window. A nil window gets a
// fresh one; a nil clock defaults to time.Now.
func NewClassifier(words *wordlist.Window, now func() time.Time) *Classifier {
	if words == nil {
		words = wordlist.New(nil)
	}

	if now == nil {
		now = time.Now
	}

	return &Classifier{
		words:     words,
		decryptor: &crypto.Decryptor{},
		now:       now,
	}
}

// Classify runs the state machine, in priority order:
//
//  1. empty token: unactivated
//  2. recognized unpaid marker: activated (no payment implied)
//  3. not token-shaped hex: invalid
//  4. token-shaped: decrypt; plaintext inside the current word window means
//     activated, anything else means unactivated
//
// A well-formed-but-unrecognized token lands on unactivated rather than
// invalid: the remediation for "check your time or edition" differs from the
// remediation for "fix the format".
func (c *Classifier) Classify(namespace, token string) State {
	if token == "" {
		return StateUnactivated
	}

	if isUnpaidMarker(namespace, token) {
		return StateActivated
	}

	if !crypto.IsTokenShaped(token) {
		return StateInvalid
	}

	word, err := c.decryptor.Decrypt(token, namespace)
	if err != nil {
		return StateUnactivated
	}

	if c.words.Contains(c.now(), word) {
		return StateActivated
	}

	return StateUnactivated
}

// isUnpaidMarker recognizes the sanctioned "not paying, and that's fine"
// declarations: two fixed literals and the per-namespace opt-out string.
func isUnpaidMarker(namespace, token string) bool {
	switch token {
	case constants.UnpaidMarkerFree, constants.UnpaidMarkerNotYet:
		return true
	}

	return token == constants.OptOutPrefix+namespace
}
