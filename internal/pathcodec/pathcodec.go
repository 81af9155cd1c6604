// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pathcodec derives opaque storage-path segments from plaintext
// labels so the node store never sees semantically meaningful keys.
//
// Derivation is deterministic per (identity, label) — repeated lookups
// address the same node — and one-way: without the identity's private
// derive seed the label cannot be recovered from the segment, and the
// same label produces unrelated segments for different identities.
package pathcodec

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/models"
)

//go:generate mockgen -source=pathcodec.go -destination=../mock/path_codec_mock.go -package=mock

// PathSegment is an opaque, base64url-encoded storage-path element.
// Segments are only ever compared for equality, never reversed.
type PathSegment = string

// Codec derives private path segments for one identity.
type Codec interface {
	// Derive maps a plaintext label to its opaque segment.
	Derive(label string) PathSegment

	// DerivePath applies Derive element-wise, preserving order, because
	// the node store addresses by path, not by set.
	DerivePath(labels ...string) []PathSegment
}

type codec struct {
	// macKey is the HKDF-expanded per-identity MAC key. It lives only in
	// memory for the session and is never persisted.
	macKey []byte
}

// New builds a Codec for the given identity. The identity's private
// derive seed is expanded once through HKDF-SHA256 into a dedicated MAC
// key, so path derivation never touches decryption key material.
// Returns crypto.ErrNoKeyMaterial when the seed is missing.
func New(identity models.Identity) (Codec, error) {
	if len(identity.DeriveSeed) == 0 {
		return nil, crypto.ErrNoKeyMaterial
	}

	r := hkdf.New(sha256.New, identity.DeriveSeed, nil, []byte("doc-vault path codec v1"))
	macKey := make([]byte, 32)
	if _, err := io.ReadFull(r, macKey); err != nil {
		return nil, err
	}

	return &codec{macKey: macKey}, nil
}

// Derive implements [Codec] with HMAC-SHA256(macKey, label).
func (c *codec) Derive(label string) PathSegment {
	mac := hmac.New(sha256.New, c.macKey)
	mac.Write([]byte(label))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// DerivePath implements [Codec].
func (c *codec) DerivePath(labels ...string) []PathSegment {
	segments := make([]PathSegment, len(labels))
	for i, label := range labels {
		segments[i] = c.Derive(label)
	}
	return segments
}

// SharedSegment maps a label to a segment derivable by every grantee of
// a shared resource. Unlike Derive it is not identity-keyed: document
// and branch nodes must be addressable by all holders of a grant, so
// their labels are built from random identifiers (UUIDs) that carry no
// semantics to begin with. The hash keeps the storage keyspace uniform
// and unlinkable to any client-side representation of the id.
func SharedSegment(label string) PathSegment {
	sum := sha256.Sum256([]byte("doc-vault shared path v1\x00" + label))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// SharedPath applies SharedSegment element-wise, preserving order.
func SharedPath(labels ...string) []PathSegment {
	segments := make([]PathSegment, len(labels))
	for i, label := range labels {
		segments[i] = SharedSegment(label)
	}
	return segments
}
