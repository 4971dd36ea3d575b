// Package crypto implements the symmetric token codec for activation
// credentials.
//
// A credential is one AES block (16 bytes) transported as 32 hex characters.
// The AES-256 key is the SHA-256 digest of the raw namespace string, so the
// same namespace always yields the same key. CBC mode with an all-zero IV is
// the fixed wire convention: a single-block payload under a per-namespace key
// carries no IV, and the convention must never change or previously issued
// tokens stop decrypting.
package crypto
