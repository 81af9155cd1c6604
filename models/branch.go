// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BranchStatus is the lifecycle state of a branch.
// Transitions: created → submitted → merged|rejected. A branch in
// created state may also be rejected directly (author cancellation).
// merged and rejected are terminal.
type BranchStatus int

const (
	// BranchCreated is the initial state: a private draft of its author.
	BranchCreated BranchStatus = 1

	// BranchSubmitted means the author asked for the branch to be
	// reviewed and merged. Content is frozen from this point on.
	BranchSubmitted BranchStatus = 2

	// BranchMerged is terminal: the branch content became the document's
	// main content.
	BranchMerged BranchStatus = 3

	// BranchRejected is terminal: the branch was discarded, the document
	// untouched.
	BranchRejected BranchStatus = 4
)

// Terminal reports whether the status admits no further transitions.
func (s BranchStatus) Terminal() bool {
	return s == BranchMerged || s == BranchRejected
}

// String returns the wire/name form of the status.
func (s BranchStatus) String() string {
	switch s {
	case BranchCreated:
		return "created"
	case BranchSubmitted:
		return "submitted"
	case BranchMerged:
		return "merged"
	case BranchRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Branch is an independent encrypted draft forked from a document at a
// specific version. It is encrypted under the same document key as main
// (at the generation recorded in KeyGeneration), so a merge is a
// ciphertext swap unless the key rotated in between.
type Branch struct {
	// ID is the unique branch identifier (UUID).
	ID string `json:"id"`

	// DocumentID references the parent document.
	DocumentID string `json:"documentId"`

	// ParentVersion snapshots Document.Version at branch creation and
	// is never mutated. It is the compare-and-swap token checked at
	// merge time.
	ParentVersion uint64 `json:"parentVersion"`

	// KeyGeneration snapshots Document.KeyGeneration at branch creation
	// so merge knows whether re-encryption under a newer key is needed.
	KeyGeneration uint64 `json:"keyGeneration"`

	// AuthorID is the user who created the branch.
	AuthorID string `json:"authorId"`

	// EncryptedContent is the draft body, encrypted under the document
	// key of generation KeyGeneration.
	EncryptedContent []byte `json:"encryptedContent"`

	// ContentNonce is the GCM nonce used for EncryptedContent.
	ContentNonce []byte `json:"contentNonce"`

	// Status is the lifecycle state.
	Status BranchStatus `json:"status"`

	// Description is an optional plaintext note about the intent of the
	// draft, shown to reviewers. It must never contain document content.
	Description string `json:"description"`

	// Reason carries the optional rejection reason once Status is
	// BranchRejected.
	Reason string `json:"reason,omitempty"`

	// CreatedAt is when the branch was forked.
	CreatedAt time.Time `json:"createdAt"`

	// SubmittedAt is when the branch entered BranchSubmitted.
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`

	// MergedAt is when the branch entered BranchMerged.
	MergedAt *time.Time `json:"mergedAt,omitempty"`

	// MergedBy is the user who performed the merge.
	MergedBy string `json:"mergedBy,omitempty"`
}
