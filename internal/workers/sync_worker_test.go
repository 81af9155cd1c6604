package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/access"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
	"github.com/stretchr/testify/require"
)

func TestSyncWorker_DiscoversSharedDocument(t *testing.T) {
	ctx := context.Background()
	nodes := store.NewMemoryStore()
	acl := access.NewAccessControl(nodes, crypto.NewKeyManager(), logger.Nop())

	alice, err := crypto.GenerateIdentity("alice")
	require.NoError(t, err)
	bob, err := crypto.GenerateIdentity("bob")
	require.NoError(t, err)

	aliceSess, err := access.NewSession(alice)
	require.NoError(t, err)
	bobSess, err := access.NewSession(bob)
	require.NoError(t, err)

	require.NoError(t, acl.PublishIdentity(ctx, alice))
	require.NoError(t, acl.PublishIdentity(ctx, bob))

	doc, err := acl.CreateDocument(ctx, aliceSess, "shared notes", "hello\n")
	require.NoError(t, err)
	_, err = acl.GrantAccess(ctx, aliceSess, doc.ID, bob.UserID, bob.EncryptionPub, models.RoleRead)
	require.NoError(t, err)

	worker := NewSyncWorker(acl, bobSess, 10*time.Millisecond, logger.Nop())
	worker.Run()
	defer worker.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for {
		entries, listErr := acl.ListDocuments(ctx, bobSess)
		require.NoError(t, listErr)
		if len(entries) == 1 {
			require.Equal(t, doc.ID, entries[0].DocumentID)
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("sync worker never folded the shared document into the index")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSyncWorker_StopBeforeRun(t *testing.T) {
	worker := NewSyncWorker(nil, nil, time.Second, logger.Nop())

	// Stop without Run should not panic
	worker.Stop()
}
