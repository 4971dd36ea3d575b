package constants

import "errors"

var (
	// ErrEmptyCiphertext is returned when an empty token reaches the decryptor.
	ErrEmptyCiphertext = errors.New("ciphertext is empty")
	// ErrCiphertextLength is returned when the decoded ciphertext is not a whole
	// number of cipher blocks of the expected total size.
	ErrCiphertextLength = errors.New("ciphertext length is invalid")
	// ErrPaddingInvalid is returned when PKCS#7 unpadding fails after decryption.
	ErrPaddingInvalid = errors.New("plaintext padding is invalid")
	// ErrPlaintextTooLong is returned when a word cannot fit the fixed token size.
	ErrPlaintextTooLong = errors.New("plaintext exceeds token capacity")
	// ErrNoProjectRoot is returned when no project root marker can be discovered
	// walking up from the working directory.
	ErrNoProjectRoot = errors.New("no project root found")
	// ErrNilRegistry is returned when a method is called on a nil registry.
	ErrNilRegistry = errors.New("registry is nil")
	// ErrEmptyNamespace is returned when a namespace string is empty or blank.
	ErrEmptyNamespace = errors.New("namespace is empty")
)
