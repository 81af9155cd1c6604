// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"io"

	"golang.org/x/crypto/nacl/box"
)

// DocumentKeySize is the size of a document symmetric key in bytes.
const DocumentKeySize = 32

// DocumentKey is a per-document AES-256 key. It is generated once at
// document creation and replaced only by access revocation (rotation).
type DocumentKey []byte

// keyManager is the private implementation of [KeyManager].
type keyManager struct{}

// NewKeyManager constructs the production [KeyManager] backed by
// AES-256-GCM for content and NaCl anonymous sealed boxes for wraps.
func NewKeyManager() KeyManager {
	return &keyManager{}
}

// GenerateDocumentKey implements [KeyManager]. It reads 32 random bytes
// from the OS CSPRNG. Returns an error if the random read fails.
func (k *keyManager) GenerateDocumentKey() (DocumentKey, error) {
	key := make(DocumentKey, DocumentKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Wrap implements [KeyManager]. The sealed box construction generates an
// ephemeral X25519 keypair per wrap, so wrapping the same key for the
// same recipient twice yields unrelated ciphertexts.
func (k *keyManager) Wrap(key DocumentKey, recipientEncPub []byte) ([]byte, error) {
	if len(key) != DocumentKeySize {
		return nil, ErrNoKeyMaterial
	}
	if len(recipientEncPub) != 32 {
		return nil, ErrWrapFailed
	}

	var pub [32]byte
	copy(pub[:], recipientEncPub)

	wrapped, err := box.SealAnonymous(nil, key, &pub, rand.Reader)
	if err != nil {
		return nil, ErrWrapFailed
	}
	return wrapped, nil
}

// Unwrap implements [KeyManager]. All failures collapse into the single
// ErrUnwrapFailed: a principal probing the store's raw bytes with an
// unrelated keypair observes exactly the behavior of "not authorized".
func (k *keyManager) Unwrap(wrapped, selfEncPub, selfEncPriv []byte) (DocumentKey, error) {
	if len(selfEncPub) != 32 || len(selfEncPriv) != 32 {
		return nil, ErrNoKeyMaterial
	}

	var pub, priv [32]byte
	copy(pub[:], selfEncPub)
	copy(priv[:], selfEncPriv)

	key, ok := box.OpenAnonymous(nil, wrapped, &pub, &priv)
	if !ok || len(key) != DocumentKeySize {
		return nil, ErrUnwrapFailed
	}
	return DocumentKey(key), nil
}

// EncryptContent implements [KeyManager]. A random 12-byte nonce is
// generated per call and returned alongside the ciphertext; document
// and branch records store it in their own nonce field.
func (k *keyManager) EncryptContent(plaintext []byte, key DocumentKey) ([]byte, []byte, error) {
	if len(key) != DocumentKeySize {
		return nil, nil, ErrNoKeyMaterial
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, err
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// DecryptContent implements [KeyManager]. It verifies the GCM tag before
// returning anything; a mismatch means the data was tampered with or the
// key is no longer valid (e.g. it was rotated away by a revocation).
func (k *keyManager) DecryptContent(ciphertext, nonce []byte, key DocumentKey) ([]byte, error) {
	if len(key) != DocumentKeySize {
		return nil, ErrNoKeyMaterial
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(nonce) != gcm.NonceSize() {
		return nil, ErrAuthenticationFailed
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}
