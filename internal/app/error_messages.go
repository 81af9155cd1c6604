// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-doc-vault relay handlers and client UI.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, terminal screens, or log entries to describe the
// outcome of an operation. Keeping them in one place ensures consistent
// wording throughout the application.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgSessionRejected is returned when a session challenge fails
	// verification: bad signature, foreign user ID, or a stale timestamp.
	MsgSessionRejected = "session challenge rejected"

	// MsgNodeNotFound is returned when a read targets a path that does not
	// exist in the node store.
	MsgNodeNotFound = "node not found"

	// MsgVersionConflict is shown when a compare-and-swap write loses the
	// race: the expected version no longer matches the stored version. The
	// caller should re-read and retry.
	MsgVersionConflict = "version conflict, please refresh and retry"

	// MsgStaleParent is shown when a branch merge is refused because the
	// document moved past the branch's parent version. The branch must be
	// rebased before it can be merged.
	MsgStaleParent = "document changed since branch was created, rebase first"

	// MsgNotAGrantee is shown when the current user tries to open a
	// document they hold no grant for.
	MsgNotAGrantee = "you have no access to this document"

	// MsgInsufficientRole is shown when an operation requires a higher role
	// than the current user's grant carries.
	MsgInsufficientRole = "your role does not permit this operation"

	// MsgLastOwner is shown when a revocation would remove the document's
	// sole owner grant.
	MsgLastOwner = "cannot revoke the only owner"

	// MsgBranchFinalized is shown when an update targets a branch that has
	// already been merged or rejected.
	MsgBranchFinalized = "branch is already merged or rejected"

	// MsgDecryptionFailed is shown when a document payload cannot be
	// decrypted with the unwrapped key, usually after a revocation rotated
	// the document key.
	MsgDecryptionFailed = "unable to decrypt, your access may have been revoked"
)
