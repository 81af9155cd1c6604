package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateIdentity_KeyMaterialShape(t *testing.T) {
	id, err := GenerateIdentity("alice")
	if err != nil {
		t.Fatalf("GenerateIdentity error: %v", err)
	}

	if len(id.SigningPub) != 32 {
		t.Fatalf("signing pub length = %d, want 32", len(id.SigningPub))
	}
	if len(id.SigningPriv) != 64 {
		t.Fatalf("signing priv length = %d, want 64", len(id.SigningPriv))
	}
	if len(id.EncryptionPub) != 32 {
		t.Fatalf("encryption pub length = %d, want 32", len(id.EncryptionPub))
	}
	if len(id.EncryptionPriv) != 32 {
		t.Fatalf("encryption priv length = %d, want 32", len(id.EncryptionPriv))
	}
	if len(id.DeriveSeed) != 32 {
		t.Fatalf("derive seed length = %d, want 32", len(id.DeriveSeed))
	}
	if id.UserID == "" {
		t.Fatalf("expected non-empty user id")
	}
	if id.UserID != Fingerprint(id.SigningPub) {
		t.Fatalf("user id is not the signing key fingerprint")
	}
}

func TestGenerateIdentity_Distinct(t *testing.T) {
	a, err := GenerateIdentity("a")
	if err != nil {
		t.Fatalf("GenerateIdentity error: %v", err)
	}
	b, err := GenerateIdentity("b")
	if err != nil {
		t.Fatalf("GenerateIdentity error: %v", err)
	}

	if a.UserID == b.UserID {
		t.Fatalf("expected distinct user ids")
	}
	if bytes.Equal(a.EncryptionPriv, b.EncryptionPriv) {
		t.Fatalf("expected distinct encryption keys")
	}
	if bytes.Equal(a.DeriveSeed, b.DeriveSeed) {
		t.Fatalf("expected distinct derive seeds")
	}
}

func TestIdentityFromPassphrase_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	id1, err := IdentityFromPassphrase("alice", "correct horse battery staple", salt)
	if err != nil {
		t.Fatalf("IdentityFromPassphrase error: %v", err)
	}
	id2, err := IdentityFromPassphrase("alice", "correct horse battery staple", salt)
	if err != nil {
		t.Fatalf("IdentityFromPassphrase error: %v", err)
	}

	if id1.UserID != id2.UserID {
		t.Fatalf("expected identical user ids for same passphrase+salt")
	}
	if !bytes.Equal(id1.SigningPriv, id2.SigningPriv) {
		t.Fatalf("expected identical signing keys")
	}
	if !bytes.Equal(id1.EncryptionPriv, id2.EncryptionPriv) {
		t.Fatalf("expected identical encryption keys")
	}
	if !bytes.Equal(id1.DeriveSeed, id2.DeriveSeed) {
		t.Fatalf("expected identical derive seeds")
	}
}

func TestIdentityFromPassphrase_SaltSeparates(t *testing.T) {
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	id1, err := IdentityFromPassphrase("alice", "same passphrase", salt1)
	if err != nil {
		t.Fatalf("IdentityFromPassphrase error: %v", err)
	}
	id2, err := IdentityFromPassphrase("alice", "same passphrase", salt2)
	if err != nil {
		t.Fatalf("IdentityFromPassphrase error: %v", err)
	}

	if id1.UserID == id2.UserID {
		t.Fatalf("expected different identities for different salts")
	}
}

func TestIdentityFromPassphrase_EmptyPassphrase(t *testing.T) {
	_, err := IdentityFromPassphrase("alice", "", []byte("salt"))
	if !errors.Is(err, ErrNoKeyMaterial) {
		t.Fatalf("error = %v, want ErrNoKeyMaterial", err)
	}
}

func TestSignVerify_RoundTrip(t *testing.T) {
	id, err := GenerateIdentity("alice")
	if err != nil {
		t.Fatalf("GenerateIdentity error: %v", err)
	}

	msg := []byte("session challenge")
	sig, err := Sign(id, msg)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	if !VerifySignature(id.SigningPub, msg, sig) {
		t.Fatalf("expected signature to verify")
	}
	if VerifySignature(id.SigningPub, []byte("other message"), sig) {
		t.Fatalf("expected verification to fail for different message")
	}
}

func TestWrapUnwrap_WorksWithPassphraseIdentity(t *testing.T) {
	km := NewKeyManager()
	salt := bytes.Repeat([]byte{0x3C}, SaltSize)

	id, err := IdentityFromPassphrase("bob", "hunter2 but longer", salt)
	if err != nil {
		t.Fatalf("IdentityFromPassphrase error: %v", err)
	}

	key, err := km.GenerateDocumentKey()
	if err != nil {
		t.Fatalf("GenerateDocumentKey error: %v", err)
	}
	wrapped, err := km.Wrap(key, id.EncryptionPub)
	if err != nil {
		t.Fatalf("Wrap error: %v", err)
	}
	unwrapped, err := km.Unwrap(wrapped, id.EncryptionPub, id.EncryptionPriv)
	if err != nil {
		t.Fatalf("Unwrap error: %v", err)
	}
	if !bytes.Equal(key, unwrapped) {
		t.Fatalf("unwrapped key mismatch")
	}
}
