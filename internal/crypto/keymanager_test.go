package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateDocumentKey_LengthAndRandomness(t *testing.T) {
	km := NewKeyManager()

	k1, err := km.GenerateDocumentKey()
	if err != nil {
		t.Fatalf("GenerateDocumentKey error: %v", err)
	}
	k2, err := km.GenerateDocumentKey()
	if err != nil {
		t.Fatalf("GenerateDocumentKey error: %v", err)
	}

	if len(k1) != DocumentKeySize {
		t.Fatalf("key length = %d, want %d", len(k1), DocumentKeySize)
	}
	if bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to differ, but they are equal")
	}
}

func TestWrapUnwrap_RoundTrip(t *testing.T) {
	km := NewKeyManager()

	alice, err := GenerateIdentity("alice")
	if err != nil {
		t.Fatalf("GenerateIdentity error: %v", err)
	}

	key, err := km.GenerateDocumentKey()
	if err != nil {
		t.Fatalf("GenerateDocumentKey error: %v", err)
	}

	wrapped, err := km.Wrap(key, alice.EncryptionPub)
	if err != nil {
		t.Fatalf("Wrap error: %v", err)
	}
	if bytes.Contains(wrapped, key) {
		t.Fatalf("wrapped blob contains the plaintext key")
	}

	unwrapped, err := km.Unwrap(wrapped, alice.EncryptionPub, alice.EncryptionPriv)
	if err != nil {
		t.Fatalf("Unwrap error: %v", err)
	}
	if !bytes.Equal(key, unwrapped) {
		t.Fatalf("unwrapped key does not match original")
	}
}

func TestWrap_MalformedRecipientKey(t *testing.T) {
	km := NewKeyManager()

	key, err := km.GenerateDocumentKey()
	if err != nil {
		t.Fatalf("GenerateDocumentKey error: %v", err)
	}

	_, err = km.Wrap(key, []byte("short"))
	if !errors.Is(err, ErrWrapFailed) {
		t.Fatalf("Wrap error = %v, want ErrWrapFailed", err)
	}
}

func TestUnwrap_WrongKeypairFailsUniformly(t *testing.T) {
	km := NewKeyManager()

	alice, err := GenerateIdentity("alice")
	if err != nil {
		t.Fatalf("GenerateIdentity error: %v", err)
	}
	mallory, err := GenerateIdentity("mallory")
	if err != nil {
		t.Fatalf("GenerateIdentity error: %v", err)
	}

	key, err := km.GenerateDocumentKey()
	if err != nil {
		t.Fatalf("GenerateDocumentKey error: %v", err)
	}
	wrapped, err := km.Wrap(key, alice.EncryptionPub)
	if err != nil {
		t.Fatalf("Wrap error: %v", err)
	}

	// Unrelated keypair probing stored bytes: must fail with the same
	// sentinel as a corrupted blob, nothing more specific.
	_, err = km.Unwrap(wrapped, mallory.EncryptionPub, mallory.EncryptionPriv)
	if !errors.Is(err, ErrUnwrapFailed) {
		t.Fatalf("Unwrap with wrong keypair = %v, want ErrUnwrapFailed", err)
	}

	corrupted := append([]byte(nil), wrapped...)
	corrupted[len(corrupted)-1] ^= 0xFF
	_, err = km.Unwrap(corrupted, alice.EncryptionPub, alice.EncryptionPriv)
	if !errors.Is(err, ErrUnwrapFailed) {
		t.Fatalf("Unwrap of corrupted blob = %v, want ErrUnwrapFailed", err)
	}

	_, err = km.Unwrap(wrapped[:10], alice.EncryptionPub, alice.EncryptionPriv)
	if !errors.Is(err, ErrUnwrapFailed) {
		t.Fatalf("Unwrap of truncated blob = %v, want ErrUnwrapFailed", err)
	}
}

func TestEncryptDecryptContent_RoundTrip(t *testing.T) {
	km := NewKeyManager()

	key, err := km.GenerateDocumentKey()
	if err != nil {
		t.Fatalf("GenerateDocumentKey error: %v", err)
	}

	plaintext := []byte("# Notes\n\nshared draft body\n")
	ciphertext, nonce, err := km.EncryptContent(plaintext, key)
	if err != nil {
		t.Fatalf("EncryptContent error: %v", err)
	}
	if len(nonce) != 12 {
		t.Fatalf("nonce length = %d, want 12", len(nonce))
	}
	if bytes.Contains(ciphertext, plaintext) {
		t.Fatalf("ciphertext contains plaintext")
	}

	decrypted, err := km.DecryptContent(ciphertext, nonce, key)
	if err != nil {
		t.Fatalf("DecryptContent error: %v", err)
	}
	if !bytes.Equal(plaintext, decrypted) {
		t.Fatalf("decrypted content does not match original")
	}
}

func TestDecryptContent_FailsClosedOnTampering(t *testing.T) {
	km := NewKeyManager()

	key, err := km.GenerateDocumentKey()
	if err != nil {
		t.Fatalf("GenerateDocumentKey error: %v", err)
	}
	ciphertext, nonce, err := km.EncryptContent([]byte("secret"), key)
	if err != nil {
		t.Fatalf("EncryptContent error: %v", err)
	}

	tampered := append([]byte(nil), ciphertext...)
	tampered[0] ^= 0x01
	got, err := km.DecryptContent(tampered, nonce, key)
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("DecryptContent of tampered data = %v, want ErrAuthenticationFailed", err)
	}
	if got != nil {
		t.Fatalf("DecryptContent returned data alongside an error")
	}

	otherKey, err := km.GenerateDocumentKey()
	if err != nil {
		t.Fatalf("GenerateDocumentKey error: %v", err)
	}
	if _, err = km.DecryptContent(ciphertext, nonce, otherKey); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("DecryptContent with wrong key = %v, want ErrAuthenticationFailed", err)
	}
}

func TestEncryptContent_RequiresKeyMaterial(t *testing.T) {
	km := NewKeyManager()

	if _, _, err := km.EncryptContent([]byte("p"), nil); !errors.Is(err, ErrNoKeyMaterial) {
		t.Fatalf("EncryptContent with nil key = %v, want ErrNoKeyMaterial", err)
	}
	if _, err := km.DecryptContent([]byte("c"), []byte("n"), DocumentKey("short")); !errors.Is(err, ErrNoKeyMaterial) {
		t.Fatalf("DecryptContent with short key = %v, want ErrNoKeyMaterial", err)
	}
}
