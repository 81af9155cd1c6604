// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PublicIdentity is the shareable half of an identity. It is safe to
// publish: it contains only public key material and display metadata.
type PublicIdentity struct {
	// UserID is the stable unique identifier of the identity.
	UserID string `json:"userId"`

	// Name is a display label chosen at creation. It is informational
	// only and never used for addressing.
	Name string `json:"name"`

	// SigningPub is the Ed25519 public key used to verify signatures
	// made by this identity (32 bytes).
	SigningPub []byte `json:"signingPub"`

	// EncryptionPub is the X25519 public key other users encrypt
	// document keys to when granting this identity access (32 bytes).
	EncryptionPub []byte `json:"encryptionPub"`

	// CreatedAt is when the identity was generated. Identities are
	// immutable once created; rotation creates a new identity.
	CreatedAt time.Time `json:"createdAt"`
}

// Identity is a full client-side identity: the public half plus private
// key material. Private fields never leave the client process and are
// never serialized to the node store.
type Identity struct {
	PublicIdentity

	// SigningPriv is the Ed25519 private key (64 bytes).
	SigningPriv []byte `json:"-"`

	// EncryptionPriv is the X25519 private key (32 bytes).
	EncryptionPriv []byte `json:"-"`

	// DeriveSeed is 32 bytes of private material used exclusively to
	// derive path segments. Keeping it separate from the encryption key
	// means path derivation never touches decryption key material.
	DeriveSeed []byte `json:"-"`
}

// Public returns the shareable half of the identity.
func (i Identity) Public() PublicIdentity {
	return i.PublicIdentity
}
