package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle      = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title is too long")
	ErrContentTooLarge = errors.New("content is too large")
	ErrInvalidRole     = errors.New("invalid role")
	ErrEmptyGranteeID  = errors.New("grantee ID is required")
	ErrEmptyDocumentID = errors.New("document ID is required")
)
