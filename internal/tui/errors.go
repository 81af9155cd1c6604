// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-doc-vault/internal/access"
	"github.com/MKhiriev/go-doc-vault/internal/app"
	"github.com/MKhiriev/go-doc-vault/internal/branch"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/store"
)

// humanizeError turns sentinel errors from the lower layers into the
// shared user-facing wording. Unknown errors pass through verbatim.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, store.ErrVersionConflict):
		return app.MsgVersionConflict
	case errors.Is(err, store.ErrNotFound):
		return app.MsgNodeNotFound
	case errors.Is(err, branch.ErrStaleParent):
		return app.MsgStaleParent
	case errors.Is(err, branch.ErrAlreadyFinalized):
		return app.MsgBranchFinalized
	case errors.Is(err, access.ErrNotAGrantee):
		return app.MsgNotAGrantee
	case errors.Is(err, access.ErrInsufficientRole):
		return app.MsgInsufficientRole
	case errors.Is(err, access.ErrLastOwner):
		return app.MsgLastOwner
	case errors.Is(err, crypto.ErrAuthenticationFailed), errors.Is(err, crypto.ErrUnwrapFailed):
		return app.MsgDecryptionFailed
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или реле недоступно"
	}

	return err.Error()
}
