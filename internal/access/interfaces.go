package access

//go:generate mockgen -source=interfaces.go -destination=../mock/access_control_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/models"
)

// AccessControl manages documents, grants, and key resolution on top of
// an untrusted node store. Every call acts as the provided *Session;
// there is no ambient current user.
//
// Concurrency: all mutations are conditional writes keyed on the
// document's version. Two racing mutations of the same document produce
// exactly one success; the loser observes store.ErrVersionConflict,
// re-reads, and decides whether to retry. The service itself never
// retries.
type AccessControl interface {
	// PublishIdentity writes the identity's public half to the store so
	// other users can look it up when granting access.
	PublishIdentity(ctx context.Context, identity models.Identity) error

	// LookupIdentity fetches a published public identity.
	LookupIdentity(ctx context.Context, userID string) (models.PublicIdentity, error)

	// CreateDocument creates an encrypted document owned by the session
	// identity: version 0, exactly one owner grant, fresh document key.
	// The owner's private index gains an entry for it.
	CreateDocument(ctx context.Context, sess *Session, title, content string) (models.Document, error)

	// GetDocument loads a document the session holds a grant on.
	// Returns ErrNotAGrantee for documents the identity cannot open.
	GetDocument(ctx context.Context, sess *Session, docID string) (models.Document, error)

	// ListDocuments returns the session's private document index.
	ListDocuments(ctx context.Context, sess *Session) ([]models.IndexEntry, error)

	// SyncInbox folds pending share notifications into the session's
	// private index and returns the newly added entries.
	SyncInbox(ctx context.Context, sess *Session) ([]models.IndexEntry, error)

	// DeleteDocument removes the document from the session's private
	// index. Historical encrypted blobs stay on the append-biased
	// store; there is nothing to erase that the key does not already
	// protect.
	DeleteDocument(ctx context.Context, sess *Session, docID string) error

	// GrantAccess wraps the document key for granteeID and appends an
	// AccessGrant. Requires the caller to hold write or better, and to
	// cover the granted role; owner grants cannot be minted. A share
	// notification is sealed to the grantee's inbox.
	GrantAccess(ctx context.Context, sess *Session, docID, granteeID string, granteeEncPub []byte, role models.Role) (models.Document, error)

	// RevokeAccess removes granteeID's grant. The document key is
	// rotated: content is re-encrypted under a fresh key and the fresh
	// key re-wrapped for every remaining grantee, so everything merged
	// after revocation stays unreadable to the revoked identity even if
	// it kept the old key. Owner only; the sole owner grant cannot be
	// revoked.
	RevokeAccess(ctx context.Context, sess *Session, docID, granteeID string) (models.Document, error)

	// ResolveKey unwraps the session's copy of the document's current
	// key. ErrNotAGrantee when no grant exists.
	ResolveKey(sess *Session, doc models.Document) (crypto.DocumentKey, error)

	// ResolveKeyAt resolves the key of an earlier generation via the
	// document's encrypted key history. Needed to merge branches forked
	// before a rotation.
	ResolveKeyAt(sess *Session, doc models.Document, generation uint64) (crypto.DocumentKey, error)

	// GetDocumentPlaintext decrypts the document body for the session.
	GetDocumentPlaintext(sess *Session, doc models.Document) (string, error)

	// GetDocumentTitle decrypts the document title for the session.
	GetDocumentTitle(sess *Session, doc models.Document) (string, error)
}
