package access

import "github.com/MKhiriev/go-doc-vault/internal/pathcodec"

// Storage layout. Shared namespaces (documents, branches, identities)
// use SharedPath so every grantee addresses the same nodes; the labels
// fed into them are random identifiers, so the relay still never sees a
// semantically meaningful key. Per-user namespaces (the document index)
// use the session's identity-keyed codec and are non-linkable across
// users.
const (
	labelIdentities = "identities"
	labelDocuments  = "documents"
	labelBranches   = "branches"
	labelInbox      = "inbox"
	labelIndex      = "index"
)

// IdentityPath addresses a published public identity.
func IdentityPath(userID string) []string {
	return pathcodec.SharedPath(labelIdentities, userID)
}

// DocumentPath addresses a document record.
func DocumentPath(docID string) []string {
	return pathcodec.SharedPath(labelDocuments, docID)
}

// BranchesPrefix addresses the branch namespace of a document.
func BranchesPrefix(docID string) []string {
	return pathcodec.SharedPath(labelDocuments, docID, labelBranches)
}

// BranchPath addresses one branch record.
func BranchPath(docID, branchID string) []string {
	return pathcodec.SharedPath(labelDocuments, docID, labelBranches, branchID)
}

// InboxPrefix addresses a user's share-notification namespace.
func InboxPrefix(userID string) []string {
	return pathcodec.SharedPath(labelIdentities, userID, labelInbox)
}

// InboxEntryPath addresses one share notification. Only someone who
// already knows the document id can compute it.
func InboxEntryPath(userID, docID string) []string {
	return pathcodec.SharedPath(labelIdentities, userID, labelInbox, docID)
}

// indexPath addresses the session owner's private document index.
func indexPath(s *Session) []string {
	return s.Codec.DerivePath(labelIndex)
}
