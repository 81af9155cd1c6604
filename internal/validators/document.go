package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldTitle targets the plaintext title of a document draft.
	FieldTitle = "title"

	// FieldContent targets the plaintext body of a document draft.
	FieldContent = "content"

	// FieldRole targets the role of an access grant.
	FieldRole = "role"

	// FieldGranteeID targets the grantee identifier of an access grant.
	FieldGranteeID = "grantee_id"
)

// Input size bounds. Content shares the node value limit enforced by
// the relay, minus headroom for the encryption envelope.
const (
	maxTitleLength  = 256
	maxContentBytes = 2 << 20
)

type DocumentValidator struct {
}

func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DocumentDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.DocumentDraft:
		return v.validateDraft(ctx, *value, fields...)

	case models.AccessGrant:
		return v.validateGrant(ctx, value, fields...)
	case *models.AccessGrant:
		return v.validateGrant(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *DocumentValidator) validateDraft(_ context.Context, draft models.DocumentDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if draft.Title == "" {
				return ErrEmptyTitle
			}
			if len(draft.Title) > maxTitleLength {
				return ErrTitleTooLong
			}
		case FieldContent:
			if len(draft.Content) > maxContentBytes {
				return ErrContentTooLarge
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *DocumentValidator) validateGrant(_ context.Context, grant models.AccessGrant, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGranteeID, FieldRole}
	}

	for _, field := range fields {
		switch field {
		case FieldGranteeID:
			if grant.GranteeID == "" {
				return ErrEmptyGranteeID
			}
		case FieldRole:
			if !grant.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
