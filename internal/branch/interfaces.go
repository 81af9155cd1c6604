package branch

//go:generate mockgen -source=interfaces.go -destination=../mock/branch_engine_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/internal/access"
	"github.com/MKhiriev/go-doc-vault/models"
)

// Engine drives the branch lifecycle: created → submitted → merged or
// rejected. Branches are encrypted drafts forked from a document at a
// fixed parent version; merging is optimistic, with the parent version
// acting as the compare-and-swap token.
//
// Состояния ветки:
//
//	CreateBranch → created
//	Submit       → submitted   (только автор)
//	Merge        → merged      (submitted, parent version актуальна)
//	Reject       → rejected    (из created или submitted)
//	Rebase       → created     (parent version обновляется до текущей)
type Engine interface {
	// CreateBranch forks a private draft of the document at its current
	// version. Requires the session to hold write or better. The draft
	// starts as an exact copy of main's content.
	CreateBranch(ctx context.Context, sess *access.Session, docID, description string) (models.Branch, error)

	// GetBranch loads one branch. Drafts in created state are visible
	// only to their author.
	GetBranch(ctx context.Context, sess *access.Session, docID, branchID string) (models.Branch, error)

	// ListBranches returns the document's branches visible to the
	// session: all submitted and finalized branches, plus the session's
	// own drafts.
	ListBranches(ctx context.Context, sess *access.Session, docID string) ([]models.Branch, error)

	// UpdateBranch replaces the draft's content. Author only, and only
	// while the branch is in created state; submission freezes content.
	UpdateBranch(ctx context.Context, sess *access.Session, docID, branchID, content string) (models.Branch, error)

	// GetBranchPlaintext decrypts the branch body for the session.
	GetBranchPlaintext(sess *access.Session, doc models.Document, b models.Branch) (string, error)

	// Diff returns the line diff from the document's current content to
	// the branch's content.
	Diff(ctx context.Context, sess *access.Session, docID, branchID string) (models.Diff, error)

	// Submit moves the author's draft into review. Content is frozen
	// from this point; only Rebase can reopen it.
	Submit(ctx context.Context, sess *access.Session, docID, branchID string) (models.Branch, error)

	// Reject finalizes the branch without touching the document. Any
	// writer may reject a submitted branch; the author may reject their
	// own draft at any pre-terminal point.
	Reject(ctx context.Context, sess *access.Session, docID, branchID, reason string) (models.Branch, error)

	// Merge makes the submitted branch's content the document's main
	// content and bumps the document version by exactly 1. Returns
	// ErrStaleParent when the document moved past the branch's parent
	// version, including when a racing merge won; the branch is left
	// untouched in that case. The document write commits first and the
	// branch record is finalized best-effort afterwards: if that second
	// write is lost the branch stays submitted while its content is
	// already main, and a retried Merge reports ErrStaleParent.
	Merge(ctx context.Context, sess *access.Session, docID, branchID string) (models.Document, models.Branch, error)

	// Rebase re-forks the branch onto the document's current version,
	// keeping its content, and reopens it as a draft. Author only. This
	// is how the loser of a merge race moves forward.
	Rebase(ctx context.Context, sess *access.Session, docID, branchID string) (models.Branch, error)
}
