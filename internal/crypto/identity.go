// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"io"
	"time"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/box"

	"github.com/MKhiriev/go-doc-vault/models"
)

// Argon2id parameters for passphrase-derived identities, matching the
// OWASP (2024) recommendation: 1 iteration, 64 MiB, 4 threads.
const (
	identityArgonTime    uint32 = 1
	identityArgonMemory  uint32 = 64 * 1024
	identityArgonThreads uint8  = 4
	identityMasterLen    uint32 = 32
)

// SaltSize is the size of the passphrase salt in bytes.
const SaltSize = 16

// GenerateSalt reads 16 random bytes from the OS CSPRNG and returns them
// as a passphrase salt. The salt is not a secret — it may be stored in
// the clear next to the identity name.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateIdentity creates a fresh identity with random key material:
// an Ed25519 signing pair, an X25519 encryption pair, and a 32-byte
// private derive seed for path obfuscation. Identities are immutable;
// there is no rotation, a new identity replaces an old one.
func GenerateIdentity(name string) (models.Identity, error) {
	return identityFromReader(name, rand.Reader)
}

// IdentityFromPassphrase derives an identity deterministically from a
// passphrase and salt. The same (passphrase, salt) pair always yields
// the same key material, which is how a user recovers their identity on
// a new device. Returns ErrNoKeyMaterial if the passphrase is empty.
func IdentityFromPassphrase(name, passphrase string, salt []byte) (models.Identity, error) {
	if passphrase == "" {
		return models.Identity{}, ErrNoKeyMaterial
	}

	master := argon2.IDKey(
		[]byte(passphrase),
		salt,
		identityArgonTime,
		identityArgonMemory,
		identityArgonThreads,
		identityMasterLen,
	)

	// Expand the Argon2 output into all key material through HKDF so the
	// signing key, encryption key, and derive seed are domain-separated.
	return identityFromReader(name, hkdf.New(sha512.New, master, salt, []byte("doc-vault identity v1")))
}

// identityFromReader builds the identity reading all key material from r.
// With rand.Reader it produces a random identity; with an HKDF stream it
// produces a deterministic one.
func identityFromReader(name string, r io.Reader) (models.Identity, error) {
	signingPub, signingPriv, err := ed25519.GenerateKey(r)
	if err != nil {
		return models.Identity{}, err
	}

	encPub, encPriv, err := box.GenerateKey(r)
	if err != nil {
		return models.Identity{}, err
	}

	deriveSeed := make([]byte, 32)
	if _, err := io.ReadFull(r, deriveSeed); err != nil {
		return models.Identity{}, err
	}

	return models.Identity{
		PublicIdentity: models.PublicIdentity{
			UserID:        Fingerprint(signingPub),
			Name:          name,
			SigningPub:    signingPub,
			EncryptionPub: encPub[:],
			CreatedAt:     time.Now(),
		},
		SigningPriv:    signingPriv,
		EncryptionPriv: encPriv[:],
		DeriveSeed:     deriveSeed,
	}, nil
}

// Sign signs msg with the identity's Ed25519 signing key. Used by
// callers that must prove control of an identity to a relay; document
// confidentiality never depends on it.
func Sign(id models.Identity, msg []byte) ([]byte, error) {
	if len(id.SigningPriv) != ed25519.PrivateKeySize {
		return nil, ErrNoKeyMaterial
	}
	return ed25519.Sign(ed25519.PrivateKey(id.SigningPriv), msg), nil
}

// VerifySignature reports whether sig is a valid signature of msg under
// the given Ed25519 public key.
func VerifySignature(signingPub, msg, sig []byte) bool {
	if len(signingPub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(signingPub), msg, sig)
}

// Fingerprint returns the stable user identifier for a signing public
// key: the first 16 bytes of its SHA-256 digest, base64url-encoded.
// Deriving the id from the key makes identities self-certifying and lets
// a passphrase-derived identity land on the same id on every device.
func Fingerprint(signingPub []byte) string {
	sum := sha256.Sum256(signingPub)
	return base64.RawURLEncoding.EncodeToString(sum[:16])
}
