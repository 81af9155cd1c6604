// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccessGrant binds a grantee, a role, and a wrapped document key.
// One grant exists per (document, grantee) pair.
type AccessGrant struct {
	// GranteeID identifies the user the grant was issued to.
	GranteeID string `json:"granteeId"`

	// WrappedKey is the document's symmetric key encrypted under the
	// grantee's X25519 public key. Only wraps are ever persisted; the
	// plaintext key never touches the store.
	WrappedKey []byte `json:"wrappedKey"`

	// Role is the access level of the grantee.
	Role Role `json:"role"`

	// GrantedAt is when the grant was issued.
	GrantedAt time.Time `json:"grantedAt"`
}

// Document is the canonical encrypted document record as persisted on
// the node store. All confidential fields are ciphertext; the store can
// read every byte of this structure without learning content, title, or
// who the grantee identifiers refer to.
type Document struct {
	// ID is the unique document identifier (UUID).
	ID string `json:"id"`

	// OwnerID is the user holding the owner grant.
	OwnerID string `json:"ownerId"`

	// Version is the optimistic-concurrency counter. It increments by
	// exactly 1 on every successful mutation merged into main (content
	// merges and ACL changes alike) and is the single source of truth
	// for conflict detection.
	Version uint64 `json:"version"`

	// KeyGeneration counts document-key rotations. Branches snapshot it
	// so merge can tell whether their ciphertext must be re-encrypted
	// under a newer key.
	KeyGeneration uint64 `json:"keyGeneration"`

	// EncryptedTitle is the AES-256-GCM ciphertext of the title.
	EncryptedTitle []byte `json:"encryptedTitle"`

	// TitleNonce is the GCM nonce used for EncryptedTitle.
	TitleNonce []byte `json:"titleNonce"`

	// EncryptedContent is the AES-256-GCM ciphertext of the document
	// body under the current document key.
	EncryptedContent []byte `json:"encryptedContent"`

	// ContentNonce is the GCM nonce used for EncryptedContent.
	ContentNonce []byte `json:"contentNonce"`

	// EncryptedKeyHistory holds every superseded document key, keyed by
	// generation, encrypted under the current key. Grantees of the
	// current key can reach back to decrypt branches forked before a
	// rotation; a revoked identity cannot follow the chain forward.
	// Empty until the first rotation.
	EncryptedKeyHistory []byte `json:"encryptedKeyHistory,omitempty"`

	// KeyHistoryNonce is the GCM nonce used for EncryptedKeyHistory.
	KeyHistoryNonce []byte `json:"keyHistoryNonce,omitempty"`

	// Grants is the access-control list. Invariants: grantee ids are
	// unique, and exactly one RoleOwner grant exists at any time.
	Grants []AccessGrant `json:"grants"`

	// CreatedAt is when the document was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the document was last successfully mutated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Grant returns the grant held by granteeID, or false when absent.
func (d *Document) Grant(granteeID string) (AccessGrant, bool) {
	for _, g := range d.Grants {
		if g.GranteeID == granteeID {
			return g, true
		}
	}
	return AccessGrant{}, false
}

// IndexEntry is one row of a user's private document index. The index
// node is encrypted under a key derived from the user's identity, so
// the store never sees which documents a user can open.
type IndexEntry struct {
	// DocumentID references the document record.
	DocumentID string `json:"documentId"`

	// Title is the plaintext title, readable only by the index owner.
	Title string `json:"title"`

	// Role is the role held at the time the entry was written.
	Role Role `json:"role"`

	// AddedAt is when the entry appeared in the index.
	AddedAt time.Time `json:"addedAt"`
}
