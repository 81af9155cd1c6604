package crypto

import "errors"

var (
	// ErrWrapFailed is returned when a document key cannot be wrapped,
	// typically because the recipient public key is malformed.
	ErrWrapFailed = errors.New("key wrap failed")

	// ErrUnwrapFailed is returned for every unwrap failure, whether the
	// wrap was produced for a different keypair or the ciphertext is
	// corrupted. Callers must not be able to tell the cases apart.
	ErrUnwrapFailed = errors.New("key unwrap failed")

	// ErrAuthenticationFailed is returned when authenticated decryption
	// of content fails for any reason. No partial plaintext is ever
	// returned alongside it.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrNoKeyMaterial is returned when an operation is invoked without
	// the private material it needs.
	ErrNoKeyMaterial = errors.New("no key material")
)
