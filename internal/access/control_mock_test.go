// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-vault/internal/access"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/mock"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

// Store failures must surface to the caller instead of being swallowed
// or retried.
func TestCreateDocument_StoreFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	nodes := mock.NewMockNodeStore(ctrl)
	control := access.NewAccessControl(nodes, crypto.NewKeyManager(), logger.Nop())

	identity, err := crypto.GenerateIdentity("alice")
	require.NoError(t, err)
	sess, err := access.NewSession(identity)
	require.NoError(t, err)

	storeErr := errors.New("relay unreachable")
	nodes.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), uint64(0)).
		Return(models.Node{}, storeErr)

	_, err = control.CreateDocument(context.Background(), sess, "title", "content")
	assert.ErrorIs(t, err, storeErr)
}

// A racing ACL mutation loses the conditional write and reports the
// conflict untouched, letting the caller re-read and decide.
func TestGrantAccess_VersionConflictPassthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	nodes := store.NewMemoryStore()
	keys := crypto.NewKeyManager()
	control := access.NewAccessControl(nodes, keys, logger.Nop())

	owner, err := crypto.GenerateIdentity("owner")
	require.NoError(t, err)
	ownerSess, err := access.NewSession(owner)
	require.NoError(t, err)
	require.NoError(t, control.PublishIdentity(context.Background(), owner))

	doc, err := control.CreateDocument(context.Background(), ownerSess, "t", "c")
	require.NoError(t, err)

	// wrap the memory store so the document write is intercepted once
	// with a stale version, simulating a concurrent ACL change
	failing := mock.NewMockNodeStore(ctrl)
	failing.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(nodes.Get).AnyTimes()
	failing.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Node{}, store.ErrVersionConflict)

	racing := access.NewAccessControl(failing, keys, logger.Nop())

	grantee, err := crypto.GenerateIdentity("grantee")
	require.NoError(t, err)

	_, err = racing.GrantAccess(context.Background(), ownerSess, doc.ID, grantee.UserID, grantee.EncryptionPub, models.RoleRead)
	assert.ErrorIs(t, err, store.ErrVersionConflict)
}
