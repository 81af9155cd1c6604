// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/pathcodec"
	"github.com/MKhiriev/go-doc-vault/models"
)

// Session carries the acting identity and the key material derived from
// it for the duration of one logical client session. It replaces any
// notion of a global "current user": every AccessControl and branch
// engine call receives the session it should act as, so two identities
// can coexist in one process (two tabs, a user and an agent, tests).
type Session struct {
	// Identity is the acting identity, private material included.
	Identity models.Identity

	// Codec derives this identity's private path segments.
	Codec pathcodec.Codec

	// indexKey encrypts the identity's private document index. Derived
	// from the identity seed, held only in memory.
	indexKey crypto.DocumentKey
}

// NewSession prepares a Session for identity. Returns
// crypto.ErrNoKeyMaterial when the identity lacks its private parts.
func NewSession(identity models.Identity) (*Session, error) {
	codec, err := pathcodec.New(identity)
	if err != nil {
		return nil, err
	}

	r := hkdf.New(sha256.New, identity.DeriveSeed, nil, []byte("doc-vault index key v1"))
	indexKey := make(crypto.DocumentKey, crypto.DocumentKeySize)
	if _, err := io.ReadFull(r, indexKey); err != nil {
		return nil, err
	}

	return &Session{
		Identity: identity,
		Codec:    codec,
		indexKey: indexKey,
	}, nil
}

// UserID returns the acting identity's user id.
func (s *Session) UserID() string {
	return s.Identity.UserID
}
