package access

import "errors"

var (
	// ErrInsufficientRole is returned when the caller's role does not
	// authorize the attempted operation (e.g. a writer minting an owner
	// grant, or a reader creating a branch).
	ErrInsufficientRole = errors.New("insufficient role")

	// ErrDuplicateGrant is returned when a grant already exists for the
	// grantee on the document.
	ErrDuplicateGrant = errors.New("grant already exists for grantee")

	// ErrNotAGrantee is returned when the acting identity holds no grant
	// on the document.
	ErrNotAGrantee = errors.New("not a grantee of the document")

	// ErrLastOwner is returned when revocation targets the document's
	// only owner grant.
	ErrLastOwner = errors.New("cannot revoke the sole owner grant")
)
