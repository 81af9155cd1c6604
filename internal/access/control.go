// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

type accessControl struct {
	nodes store.NodeStore
	keys  crypto.KeyManager
	uuid  *utils.UUIDGenerator

	logger *logger.Logger
}

// NewAccessControl constructs the production [AccessControl] on top of
// the given node store and key manager.
func NewAccessControl(nodes store.NodeStore, keys crypto.KeyManager, log *logger.Logger) AccessControl {
	return &accessControl{
		nodes:  nodes,
		keys:   keys,
		uuid:   utils.NewUUIDGenerator(),
		logger: log,
	}
}

func (a *accessControl) PublishIdentity(ctx context.Context, identity models.Identity) error {
	value, err := json.Marshal(identity.Public())
	if err != nil {
		return fmt.Errorf("marshal public identity: %w", err)
	}

	path := IdentityPath(identity.UserID)
	_, err = a.nodes.Put(ctx, path, value, 0)
	if errors.Is(err, store.ErrVersionConflict) {
		// identities are immutable: republishing the same identity is a
		// no-op, not an error
		existing, getErr := a.nodes.Get(ctx, path)
		if getErr == nil && string(existing.Value) == string(value) {
			return nil
		}
		return fmt.Errorf("identity already published: %w", err)
	}
	if err != nil {
		return fmt.Errorf("publish identity: %w", err)
	}

	a.logger.Debug().Str("user_id", identity.UserID).Msg("identity published")
	return nil
}

func (a *accessControl) LookupIdentity(ctx context.Context, userID string) (models.PublicIdentity, error) {
	node, err := a.nodes.Get(ctx, IdentityPath(userID))
	if err != nil {
		return models.PublicIdentity{}, fmt.Errorf("lookup identity %s: %w", userID, err)
	}

	var pub models.PublicIdentity
	if err := json.Unmarshal(node.Value, &pub); err != nil {
		return models.PublicIdentity{}, fmt.Errorf("decode identity node: %w", err)
	}
	return pub, nil
}

func (a *accessControl) CreateDocument(ctx context.Context, sess *Session, title, content string) (models.Document, error) {
	key, err := a.keys.GenerateDocumentKey()
	if err != nil {
		return models.Document{}, fmt.Errorf("generate document key: %w", err)
	}

	wrapped, err := a.keys.Wrap(key, sess.Identity.EncryptionPub)
	if err != nil {
		return models.Document{}, fmt.Errorf("wrap owner key: %w", err)
	}

	encTitle, titleNonce, err := a.keys.EncryptContent([]byte(title), key)
	if err != nil {
		return models.Document{}, fmt.Errorf("encrypt title: %w", err)
	}
	encContent, contentNonce, err := a.keys.EncryptContent([]byte(content), key)
	if err != nil {
		return models.Document{}, fmt.Errorf("encrypt content: %w", err)
	}

	now := time.Now()
	doc := models.Document{
		ID:               a.uuid.Generate(),
		OwnerID:          sess.UserID(),
		Version:          0,
		KeyGeneration:    0,
		EncryptedTitle:   encTitle,
		TitleNonce:       titleNonce,
		EncryptedContent: encContent,
		ContentNonce:     contentNonce,
		Grants: []models.AccessGrant{{
			GranteeID:  sess.UserID(),
			WrappedKey: wrapped,
			Role:       models.RoleOwner,
			GrantedAt:  now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := validateGrants(doc); err != nil {
		return models.Document{}, err
	}
	if err := a.putDocument(ctx, doc, 0); err != nil {
		return models.Document{}, err
	}

	entry := models.IndexEntry{
		DocumentID: doc.ID,
		Title:      title,
		Role:       models.RoleOwner,
		AddedAt:    now,
	}
	if err := a.addIndexEntry(ctx, sess, entry); err != nil {
		return models.Document{}, fmt.Errorf("update document index: %w", err)
	}

	a.logger.Debug().Str("doc_id", doc.ID).Str("owner_id", doc.OwnerID).Msg("document created")
	return doc, nil
}

func (a *accessControl) GetDocument(ctx context.Context, sess *Session, docID string) (models.Document, error) {
	doc, _, err := a.loadDocument(ctx, docID)
	if err != nil {
		return models.Document{}, err
	}

	// a handle is only issued to principals that can actually open it
	if _, err := a.ResolveKey(sess, doc); err != nil {
		return models.Document{}, err
	}
	return doc, nil
}

func (a *accessControl) ListDocuments(ctx context.Context, sess *Session) ([]models.IndexEntry, error) {
	entries, _, err := a.loadIndex(ctx, sess)
	return entries, err
}

func (a *accessControl) SyncInbox(ctx context.Context, sess *Session) ([]models.IndexEntry, error) {
	nodes, err := a.nodes.List(ctx, InboxPrefix(sess.UserID()))
	if err != nil {
		return nil, fmt.Errorf("list inbox: %w", err)
	}
	if len(nodes) == 0 {
		return nil, nil
	}

	entries, indexVersion, err := a.loadIndex(ctx, sess)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(entries))
	for _, e := range entries {
		known[e.DocumentID] = true
	}

	var added []models.IndexEntry
	for _, node := range nodes {
		plain, err := crypto.OpenFromPublic(node.Value, sess.Identity.EncryptionPub, sess.Identity.EncryptionPriv)
		if err != nil {
			// not sealed for this identity or corrupted: skip, the
			// inbox lives on an untrusted store
			continue
		}

		var entry models.IndexEntry
		if err := json.Unmarshal(plain, &entry); err != nil {
			continue
		}
		if known[entry.DocumentID] {
			continue
		}

		known[entry.DocumentID] = true
		entries = append(entries, entry)
		added = append(added, entry)
	}

	if len(added) > 0 {
		if err := a.saveIndex(ctx, sess, entries, indexVersion); err != nil {
			return nil, err
		}
	}
	return added, nil
}

func (a *accessControl) DeleteDocument(ctx context.Context, sess *Session, docID string) error {
	entries, indexVersion, err := a.loadIndex(ctx, sess)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.DocumentID != docID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}

	return a.saveIndex(ctx, sess, kept, indexVersion)
}

func (a *accessControl) GrantAccess(ctx context.Context, sess *Session, docID, granteeID string, granteeEncPub []byte, role models.Role) (models.Document, error) {
	if !role.Valid() || role == models.RoleOwner {
		// exactly one owner exists per document; ownership is never
		// granted, it is created with the document
		return models.Document{}, ErrInsufficientRole
	}

	doc, nodeVersion, err := a.loadDocument(ctx, docID)
	if err != nil {
		return models.Document{}, err
	}

	callerGrant, ok := doc.Grant(sess.UserID())
	if !ok {
		return models.Document{}, ErrNotAGrantee
	}
	if !callerGrant.Role.Covers(models.RoleWrite) || !callerGrant.Role.Covers(role) {
		return models.Document{}, ErrInsufficientRole
	}
	if _, exists := doc.Grant(granteeID); exists {
		return models.Document{}, ErrDuplicateGrant
	}

	key, err := a.ResolveKey(sess, doc)
	if err != nil {
		return models.Document{}, err
	}

	wrapped, err := a.keys.Wrap(key, granteeEncPub)
	if err != nil {
		return models.Document{}, fmt.Errorf("wrap key for grantee: %w", err)
	}

	now := time.Now()
	doc.Grants = append(doc.Grants, models.AccessGrant{
		GranteeID:  granteeID,
		WrappedKey: wrapped,
		Role:       role,
		GrantedAt:  now,
	})
	doc.Version++
	doc.UpdatedAt = now

	if err := validateGrants(doc); err != nil {
		return models.Document{}, err
	}
	if err := a.putDocument(ctx, doc, nodeVersion); err != nil {
		return models.Document{}, err
	}

	if err := a.notifyGrantee(ctx, sess, doc, granteeID, granteeEncPub, role, key); err != nil {
		// the grant itself is committed; the grantee can still be told
		// out of band
		a.logger.Warn().Err(err).Str("doc_id", doc.ID).Msg("share notification failed")
	}

	a.logger.Debug().
		Str("doc_id", doc.ID).
		Str("grantee_id", granteeID).
		Str("granted_role", role.String()).
		Uint64("version", doc.Version).
		Msg("access granted")
	return doc, nil
}

func (a *accessControl) RevokeAccess(ctx context.Context, sess *Session, docID, granteeID string) (models.Document, error) {
	doc, nodeVersion, err := a.loadDocument(ctx, docID)
	if err != nil {
		return models.Document{}, err
	}

	callerGrant, ok := doc.Grant(sess.UserID())
	if !ok {
		return models.Document{}, ErrNotAGrantee
	}
	if callerGrant.Role != models.RoleOwner {
		return models.Document{}, ErrInsufficientRole
	}

	target, ok := doc.Grant(granteeID)
	if !ok {
		return models.Document{}, ErrNotAGrantee
	}
	if target.Role == models.RoleOwner {
		return models.Document{}, ErrLastOwner
	}

	oldKey, err := a.ResolveKey(sess, doc)
	if err != nil {
		return models.Document{}, err
	}

	newKey, err := a.keys.GenerateDocumentKey()
	if err != nil {
		return models.Document{}, fmt.Errorf("generate rotated key: %w", err)
	}

	// re-encrypt current content and title under the fresh key
	title, err := a.keys.DecryptContent(doc.EncryptedTitle, doc.TitleNonce, oldKey)
	if err != nil {
		return models.Document{}, err
	}
	content, err := a.keys.DecryptContent(doc.EncryptedContent, doc.ContentNonce, oldKey)
	if err != nil {
		return models.Document{}, err
	}
	doc.EncryptedTitle, doc.TitleNonce, err = a.keys.EncryptContent(title, newKey)
	if err != nil {
		return models.Document{}, err
	}
	doc.EncryptedContent, doc.ContentNonce, err = a.keys.EncryptContent(content, newKey)
	if err != nil {
		return models.Document{}, err
	}

	// extend the key history so pre-rotation branches stay mergeable
	history, err := a.decodeKeyHistory(doc, oldKey)
	if err != nil {
		return models.Document{}, err
	}
	history[strconv.FormatUint(doc.KeyGeneration, 10)] = base64.RawStdEncoding.EncodeToString(oldKey)
	if err := a.encodeKeyHistory(&doc, history, newKey); err != nil {
		return models.Document{}, err
	}

	// re-wrap the fresh key for everyone who keeps access
	kept := make([]models.AccessGrant, 0, len(doc.Grants)-1)
	for _, g := range doc.Grants {
		if g.GranteeID == granteeID {
			continue
		}

		encPub := sess.Identity.EncryptionPub
		if g.GranteeID != sess.UserID() {
			pub, err := a.LookupIdentity(ctx, g.GranteeID)
			if err != nil {
				return models.Document{}, fmt.Errorf("rewrap for %s: %w", g.GranteeID, err)
			}
			encPub = pub.EncryptionPub
		}

		rewrapped, err := a.keys.Wrap(newKey, encPub)
		if err != nil {
			return models.Document{}, fmt.Errorf("rewrap for %s: %w", g.GranteeID, err)
		}
		g.WrappedKey = rewrapped
		kept = append(kept, g)
	}

	now := time.Now()
	doc.Grants = kept
	doc.KeyGeneration++
	doc.Version++
	doc.UpdatedAt = now

	if err := validateGrants(doc); err != nil {
		return models.Document{}, err
	}
	if err := a.putDocument(ctx, doc, nodeVersion); err != nil {
		return models.Document{}, err
	}

	a.logger.Debug().
		Str("doc_id", doc.ID).
		Str("revoked_id", granteeID).
		Uint64("key_generation", doc.KeyGeneration).
		Uint64("version", doc.Version).
		Msg("access revoked, key rotated")
	return doc, nil
}

func (a *accessControl) ResolveKey(sess *Session, doc models.Document) (crypto.DocumentKey, error) {
	grant, ok := doc.Grant(sess.UserID())
	if !ok {
		return nil, ErrNotAGrantee
	}
	return a.keys.Unwrap(grant.WrappedKey, sess.Identity.EncryptionPub, sess.Identity.EncryptionPriv)
}

func (a *accessControl) ResolveKeyAt(sess *Session, doc models.Document, generation uint64) (crypto.DocumentKey, error) {
	current, err := a.ResolveKey(sess, doc)
	if err != nil {
		return nil, err
	}
	if generation == doc.KeyGeneration {
		return current, nil
	}

	history, err := a.decodeKeyHistory(doc, current)
	if err != nil {
		return nil, err
	}

	encoded, ok := history[strconv.FormatUint(generation, 10)]
	if !ok {
		return nil, crypto.ErrUnwrapFailed
	}
	key, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, crypto.ErrUnwrapFailed
	}
	return crypto.DocumentKey(key), nil
}

func (a *accessControl) GetDocumentPlaintext(sess *Session, doc models.Document) (string, error) {
	key, err := a.ResolveKey(sess, doc)
	if err != nil {
		return "", err
	}
	plain, err := a.keys.DecryptContent(doc.EncryptedContent, doc.ContentNonce, key)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func (a *accessControl) GetDocumentTitle(sess *Session, doc models.Document) (string, error) {
	key, err := a.ResolveKey(sess, doc)
	if err != nil {
		return "", err
	}
	plain, err := a.keys.DecryptContent(doc.EncryptedTitle, doc.TitleNonce, key)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// ── internals ────────────────────────────────────────────────────────────────

// loadDocument returns the document and the store-side node version the
// next conditional write must target.
func (a *accessControl) loadDocument(ctx context.Context, docID string) (models.Document, uint64, error) {
	node, err := a.nodes.Get(ctx, DocumentPath(docID))
	if err != nil {
		return models.Document{}, 0, fmt.Errorf("load document %s: %w", docID, err)
	}

	var doc models.Document
	if err := json.Unmarshal(node.Value, &doc); err != nil {
		return models.Document{}, 0, fmt.Errorf("decode document node: %w", err)
	}
	return doc, node.Version, nil
}

func (a *accessControl) putDocument(ctx context.Context, doc models.Document, expectedVersion uint64) error {
	value, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if _, err := a.nodes.Put(ctx, DocumentPath(doc.ID), value, expectedVersion); err != nil {
		return fmt.Errorf("store document %s: %w", doc.ID, err)
	}
	return nil
}

// validateGrants enforces the ACL invariants on every mutation: unique
// grantee ids and exactly one owner grant.
func validateGrants(doc models.Document) error {
	owners := 0
	seen := make(map[string]bool, len(doc.Grants))
	for _, g := range doc.Grants {
		if seen[g.GranteeID] {
			return fmt.Errorf("%w: %s", ErrDuplicateGrant, g.GranteeID)
		}
		seen[g.GranteeID] = true
		if g.Role == models.RoleOwner {
			owners++
		}
	}
	if owners != 1 {
		return fmt.Errorf("document %s must have exactly one owner grant, has %d", doc.ID, owners)
	}
	return nil
}

// indexEnvelope is the persisted form of the private document index.
type indexEnvelope struct {
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

func (a *accessControl) loadIndex(ctx context.Context, sess *Session) ([]models.IndexEntry, uint64, error) {
	node, err := a.nodes.Get(ctx, indexPath(sess))
	if errors.Is(err, store.ErrNotFound) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("load document index: %w", err)
	}

	var env indexEnvelope
	if err := json.Unmarshal(node.Value, &env); err != nil {
		return nil, 0, fmt.Errorf("decode index envelope: %w", err)
	}

	plain, err := a.keys.DecryptContent(env.Ciphertext, env.Nonce, sess.indexKey)
	if err != nil {
		return nil, 0, err
	}

	var entries []models.IndexEntry
	if err := json.Unmarshal(plain, &entries); err != nil {
		return nil, 0, fmt.Errorf("decode index entries: %w", err)
	}
	return entries, node.Version, nil
}

func (a *accessControl) saveIndex(ctx context.Context, sess *Session, entries []models.IndexEntry, expectedVersion uint64) error {
	plain, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal index entries: %w", err)
	}

	ciphertext, nonce, err := a.keys.EncryptContent(plain, sess.indexKey)
	if err != nil {
		return err
	}

	value, err := json.Marshal(indexEnvelope{Nonce: nonce, Ciphertext: ciphertext})
	if err != nil {
		return fmt.Errorf("marshal index envelope: %w", err)
	}

	if _, err := a.nodes.Put(ctx, indexPath(sess), value, expectedVersion); err != nil {
		return fmt.Errorf("store document index: %w", err)
	}
	return nil
}

func (a *accessControl) addIndexEntry(ctx context.Context, sess *Session, entry models.IndexEntry) error {
	entries, version, err := a.loadIndex(ctx, sess)
	if err != nil {
		return err
	}
	return a.saveIndex(ctx, sess, append(entries, entry), version)
}

// notifyGrantee seals an index entry to the grantee's inbox so their
// next SyncInbox discovers the document.
func (a *accessControl) notifyGrantee(ctx context.Context, sess *Session, doc models.Document, granteeID string, granteeEncPub []byte, role models.Role, key crypto.DocumentKey) error {
	title, err := a.keys.DecryptContent(doc.EncryptedTitle, doc.TitleNonce, key)
	if err != nil {
		return err
	}

	entry := models.IndexEntry{
		DocumentID: doc.ID,
		Title:      string(title),
		Role:       role,
		AddedAt:    time.Now(),
	}
	plain, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal inbox entry: %w", err)
	}

	sealed, err := crypto.SealToPublic(plain, granteeEncPub)
	if err != nil {
		return err
	}

	path := InboxEntryPath(granteeID, doc.ID)
	_, err = a.nodes.Put(ctx, path, sealed, 0)
	if errors.Is(err, store.ErrVersionConflict) {
		// a prior notification exists (e.g. re-grant after revocation):
		// overwrite it
		node, getErr := a.nodes.Get(ctx, path)
		if getErr != nil {
			return fmt.Errorf("refresh inbox entry: %w", getErr)
		}
		_, err = a.nodes.Put(ctx, path, sealed, node.Version)
	}
	if err != nil {
		return fmt.Errorf("store inbox entry: %w", err)
	}
	return nil
}

// decodeKeyHistory decrypts the generation→key map, returning an empty
// map when no rotation has happened yet.
func (a *accessControl) decodeKeyHistory(doc models.Document, currentKey crypto.DocumentKey) (map[string]string, error) {
	if len(doc.EncryptedKeyHistory) == 0 {
		return map[string]string{}, nil
	}

	plain, err := a.keys.DecryptContent(doc.EncryptedKeyHistory, doc.KeyHistoryNonce, currentKey)
	if err != nil {
		return nil, err
	}

	var history map[string]string
	if err := json.Unmarshal(plain, &history); err != nil {
		return nil, fmt.Errorf("decode key history: %w", err)
	}
	return history, nil
}

func (a *accessControl) encodeKeyHistory(doc *models.Document, history map[string]string, newKey crypto.DocumentKey) error {
	plain, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshal key history: %w", err)
	}

	ciphertext, nonce, err := a.keys.EncryptContent(plain, newKey)
	if err != nil {
		return err
	}
	doc.EncryptedKeyHistory = ciphertext
	doc.KeyHistoryNonce = nonce
	return nil
}
