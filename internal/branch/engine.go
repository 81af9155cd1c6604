// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package branch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/access"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/diff"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

type engine struct {
	nodes  store.NodeStore
	keys   crypto.KeyManager
	access access.AccessControl
	uuid   *utils.UUIDGenerator

	logger *logger.Logger
}

// NewEngine constructs the production branch [Engine].
func NewEngine(nodes store.NodeStore, keys crypto.KeyManager, acl access.AccessControl, log *logger.Logger) Engine {
	return &engine{
		nodes:  nodes,
		keys:   keys,
		access: acl,
		uuid:   utils.NewUUIDGenerator(),
		logger: log,
	}
}

func (e *engine) CreateBranch(ctx context.Context, sess *access.Session, docID, description string) (models.Branch, error) {
	doc, err := e.access.GetDocument(ctx, sess, docID)
	if err != nil {
		return models.Branch{}, err
	}
	if err := requireRole(doc, sess, models.RoleWrite); err != nil {
		return models.Branch{}, err
	}

	// the draft starts as main's exact ciphertext: same key generation,
	// same bytes, so forking leaks nothing new to the store
	b := models.Branch{
		ID:               e.uuid.Generate(),
		DocumentID:       doc.ID,
		ParentVersion:    doc.Version,
		KeyGeneration:    doc.KeyGeneration,
		AuthorID:         sess.UserID(),
		EncryptedContent: doc.EncryptedContent,
		ContentNonce:     doc.ContentNonce,
		Status:           models.BranchCreated,
		Description:      description,
		CreatedAt:        time.Now(),
	}

	if err := e.putBranch(ctx, b, 0); err != nil {
		return models.Branch{}, err
	}

	e.logger.Debug().
		Str("doc_id", doc.ID).
		Str("branch_id", b.ID).
		Uint64("parent_version", b.ParentVersion).
		Msg("branch created")
	return b, nil
}

func (e *engine) GetBranch(ctx context.Context, sess *access.Session, docID, branchID string) (models.Branch, error) {
	if _, err := e.access.GetDocument(ctx, sess, docID); err != nil {
		return models.Branch{}, err
	}

	b, _, err := e.loadBranch(ctx, docID, branchID)
	if err != nil {
		return models.Branch{}, err
	}

	if b.Status == models.BranchCreated && b.AuthorID != sess.UserID() {
		// drafts stay private until submitted
		return models.Branch{}, store.ErrNotFound
	}
	return b, nil
}

func (e *engine) ListBranches(ctx context.Context, sess *access.Session, docID string) ([]models.Branch, error) {
	if _, err := e.access.GetDocument(ctx, sess, docID); err != nil {
		return nil, err
	}

	nodes, err := e.nodes.List(ctx, access.BranchesPrefix(docID))
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}

	var out []models.Branch
	for _, node := range nodes {
		var b models.Branch
		if err := json.Unmarshal(node.Value, &b); err != nil {
			return nil, fmt.Errorf("decode branch node: %w", err)
		}
		if b.Status == models.BranchCreated && b.AuthorID != sess.UserID() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (e *engine) UpdateBranch(ctx context.Context, sess *access.Session, docID, branchID, content string) (models.Branch, error) {
	doc, err := e.access.GetDocument(ctx, sess, docID)
	if err != nil {
		return models.Branch{}, err
	}

	b, nodeVersion, err := e.loadBranch(ctx, docID, branchID)
	if err != nil {
		return models.Branch{}, err
	}
	if b.AuthorID != sess.UserID() {
		return models.Branch{}, ErrNotAuthor
	}
	if b.Status.Terminal() {
		return models.Branch{}, ErrAlreadyFinalized
	}
	if b.Status != models.BranchCreated {
		return models.Branch{}, fmt.Errorf("branch %s is %s: content is frozen", b.ID, b.Status)
	}

	key, err := e.access.ResolveKeyAt(sess, doc, b.KeyGeneration)
	if err != nil {
		return models.Branch{}, err
	}
	b.EncryptedContent, b.ContentNonce, err = e.keys.EncryptContent([]byte(content), key)
	if err != nil {
		return models.Branch{}, err
	}

	if err := e.putBranch(ctx, b, nodeVersion); err != nil {
		return models.Branch{}, err
	}
	return b, nil
}

func (e *engine) GetBranchPlaintext(sess *access.Session, doc models.Document, b models.Branch) (string, error) {
	key, err := e.access.ResolveKeyAt(sess, doc, b.KeyGeneration)
	if err != nil {
		return "", err
	}
	plain, err := e.keys.DecryptContent(b.EncryptedContent, b.ContentNonce, key)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func (e *engine) Diff(ctx context.Context, sess *access.Session, docID, branchID string) (models.Diff, error) {
	doc, err := e.access.GetDocument(ctx, sess, docID)
	if err != nil {
		return models.Diff{}, err
	}
	b, err := e.GetBranch(ctx, sess, docID, branchID)
	if err != nil {
		return models.Diff{}, err
	}

	mainText, err := e.access.GetDocumentPlaintext(sess, doc)
	if err != nil {
		return models.Diff{}, err
	}
	branchText, err := e.GetBranchPlaintext(sess, doc, b)
	if err != nil {
		return models.Diff{}, err
	}

	return diff.Lines(mainText, branchText), nil
}

func (e *engine) Submit(ctx context.Context, sess *access.Session, docID, branchID string) (models.Branch, error) {
	if _, err := e.access.GetDocument(ctx, sess, docID); err != nil {
		return models.Branch{}, err
	}

	b, nodeVersion, err := e.loadBranch(ctx, docID, branchID)
	if err != nil {
		return models.Branch{}, err
	}
	if b.AuthorID != sess.UserID() {
		return models.Branch{}, ErrNotAuthor
	}
	// submission freezes the draft; only created accepts it, a repeat
	// submit is an error like any other post-freeze transition
	if b.Status != models.BranchCreated {
		return models.Branch{}, ErrAlreadyFinalized
	}

	now := time.Now()
	b.Status = models.BranchSubmitted
	b.SubmittedAt = &now

	if err := e.putBranch(ctx, b, nodeVersion); err != nil {
		return models.Branch{}, err
	}

	e.logger.Debug().Str("doc_id", docID).Str("branch_id", b.ID).Msg("branch submitted")
	return b, nil
}

func (e *engine) Reject(ctx context.Context, sess *access.Session, docID, branchID, reason string) (models.Branch, error) {
	doc, err := e.access.GetDocument(ctx, sess, docID)
	if err != nil {
		return models.Branch{}, err
	}

	b, nodeVersion, err := e.loadBranch(ctx, docID, branchID)
	if err != nil {
		return models.Branch{}, err
	}
	if b.Status.Terminal() {
		return models.Branch{}, ErrAlreadyFinalized
	}

	// the author may withdraw their own draft; anyone else needs write
	// role and a submitted branch to act on
	if b.AuthorID != sess.UserID() {
		if b.Status != models.BranchSubmitted {
			return models.Branch{}, store.ErrNotFound
		}
		if err := requireRole(doc, sess, models.RoleWrite); err != nil {
			return models.Branch{}, err
		}
	}

	b.Status = models.BranchRejected
	b.Reason = reason

	if err := e.putBranch(ctx, b, nodeVersion); err != nil {
		return models.Branch{}, err
	}

	e.logger.Debug().Str("doc_id", docID).Str("branch_id", b.ID).Msg("branch rejected")
	return b, nil
}

func (e *engine) Merge(ctx context.Context, sess *access.Session, docID, branchID string) (models.Document, models.Branch, error) {
	doc, err := e.access.GetDocument(ctx, sess, docID)
	if err != nil {
		return models.Document{}, models.Branch{}, err
	}
	if err := requireRole(doc, sess, models.RoleWrite); err != nil {
		return models.Document{}, models.Branch{}, err
	}

	b, branchNodeVersion, err := e.loadBranch(ctx, docID, branchID)
	if err != nil {
		return models.Document{}, models.Branch{}, err
	}
	if b.Status.Terminal() {
		return models.Document{}, models.Branch{}, ErrAlreadyFinalized
	}
	if b.Status != models.BranchSubmitted {
		return models.Document{}, models.Branch{}, ErrNotSubmitted
	}
	if b.ParentVersion != doc.Version {
		return models.Document{}, models.Branch{}, fmt.Errorf("%w: branch forked at %d, document at %d", ErrStaleParent, b.ParentVersion, doc.Version)
	}

	encContent, contentNonce := b.EncryptedContent, b.ContentNonce
	if b.KeyGeneration != doc.KeyGeneration {
		// the key rotated underneath the branch: pull the old key from
		// the document's history and re-encrypt under the current one
		oldKey, err := e.access.ResolveKeyAt(sess, doc, b.KeyGeneration)
		if err != nil {
			return models.Document{}, models.Branch{}, err
		}
		plain, err := e.keys.DecryptContent(b.EncryptedContent, b.ContentNonce, oldKey)
		if err != nil {
			return models.Document{}, models.Branch{}, err
		}
		curKey, err := e.access.ResolveKey(sess, doc)
		if err != nil {
			return models.Document{}, models.Branch{}, err
		}
		encContent, contentNonce, err = e.keys.EncryptContent(plain, curKey)
		if err != nil {
			return models.Document{}, models.Branch{}, err
		}
	}

	now := time.Now()
	doc.EncryptedContent = encContent
	doc.ContentNonce = contentNonce
	doc.Version++
	doc.UpdatedAt = now

	value, err := json.Marshal(doc)
	if err != nil {
		return models.Document{}, models.Branch{}, fmt.Errorf("marshal document: %w", err)
	}
	// node versions track document versions in lockstep: a document at
	// version v lives in a node at version v+1, so the next conditional
	// write targets the pre-merge document version + 1
	if _, err := e.nodes.Put(ctx, access.DocumentPath(doc.ID), value, doc.Version); err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			// a racing merge won; this branch is now stale
			return models.Document{}, models.Branch{}, fmt.Errorf("%w: lost merge race at version %d", ErrStaleParent, b.ParentVersion)
		}
		return models.Document{}, models.Branch{}, fmt.Errorf("store document %s: %w", doc.ID, err)
	}

	b.Status = models.BranchMerged
	b.MergedAt = &now
	b.MergedBy = sess.UserID()

	if err := e.putBranch(ctx, b, branchNodeVersion); err != nil {
		// the document update is committed; the branch record is only
		// bookkeeping at this point
		e.logger.Warn().Err(err).Str("branch_id", b.ID).Msg("branch finalization write failed after merge")
	}

	e.logger.Debug().
		Str("doc_id", doc.ID).
		Str("branch_id", b.ID).
		Uint64("version", doc.Version).
		Msg("branch merged")
	return doc, b, nil
}

func (e *engine) Rebase(ctx context.Context, sess *access.Session, docID, branchID string) (models.Branch, error) {
	doc, err := e.access.GetDocument(ctx, sess, docID)
	if err != nil {
		return models.Branch{}, err
	}

	b, nodeVersion, err := e.loadBranch(ctx, docID, branchID)
	if err != nil {
		return models.Branch{}, err
	}
	if b.AuthorID != sess.UserID() {
		return models.Branch{}, ErrNotAuthor
	}
	if b.Status.Terminal() {
		return models.Branch{}, ErrAlreadyFinalized
	}
	if b.ParentVersion == doc.Version && b.KeyGeneration == doc.KeyGeneration {
		return b, nil
	}

	if b.KeyGeneration != doc.KeyGeneration {
		oldKey, err := e.access.ResolveKeyAt(sess, doc, b.KeyGeneration)
		if err != nil {
			return models.Branch{}, err
		}
		plain, err := e.keys.DecryptContent(b.EncryptedContent, b.ContentNonce, oldKey)
		if err != nil {
			return models.Branch{}, err
		}
		curKey, err := e.access.ResolveKey(sess, doc)
		if err != nil {
			return models.Branch{}, err
		}
		b.EncryptedContent, b.ContentNonce, err = e.keys.EncryptContent(plain, curKey)
		if err != nil {
			return models.Branch{}, err
		}
		b.KeyGeneration = doc.KeyGeneration
	}

	// content survives; the author reconciles it against the new parent
	// before resubmitting
	b.ParentVersion = doc.Version
	b.Status = models.BranchCreated
	b.SubmittedAt = nil

	if err := e.putBranch(ctx, b, nodeVersion); err != nil {
		return models.Branch{}, err
	}

	e.logger.Debug().
		Str("doc_id", docID).
		Str("branch_id", b.ID).
		Uint64("parent_version", b.ParentVersion).
		Msg("branch rebased")
	return b, nil
}

func (e *engine) loadBranch(ctx context.Context, docID, branchID string) (models.Branch, uint64, error) {
	node, err := e.nodes.Get(ctx, access.BranchPath(docID, branchID))
	if err != nil {
		return models.Branch{}, 0, fmt.Errorf("load branch %s: %w", branchID, err)
	}

	var b models.Branch
	if err := json.Unmarshal(node.Value, &b); err != nil {
		return models.Branch{}, 0, fmt.Errorf("decode branch node: %w", err)
	}
	return b, node.Version, nil
}

func (e *engine) putBranch(ctx context.Context, b models.Branch, expectedVersion uint64) error {
	value, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal branch: %w", err)
	}
	if _, err := e.nodes.Put(ctx, access.BranchPath(b.DocumentID, b.ID), value, expectedVersion); err != nil {
		return fmt.Errorf("store branch %s: %w", b.ID, err)
	}
	return nil
}

func requireRole(doc models.Document, sess *access.Session, role models.Role) error {
	grant, ok := doc.Grant(sess.UserID())
	if !ok {
		return access.ErrNotAGrantee
	}
	if !grant.Role.Covers(role) {
		return access.ErrInsufficientRole
	}
	return nil
}
