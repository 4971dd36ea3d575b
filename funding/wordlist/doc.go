// Package wordlist maintains the time-indexed whitelist of acceptable token
// plaintexts.
//
// One corpus word unlocks per calendar month elapsed since the epoch month.
// The window only ever grows, so a token issued against word n stays valid
// forever, while tokens encoding words not yet unlocked classify as
// unactivated until their month arrives. This is a lightweight key-rotation
// substitute that needs no per-token expiry metadata.
package wordlist
