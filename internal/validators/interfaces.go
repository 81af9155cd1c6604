// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators separates input validation from transport and
// storage so the same rules apply wherever values enter the system.
package validators

import "context"

// Validator validates an arbitrary input value. Implementations may
// perform structural validation, semantic checks or cross-field rules;
// optional field names restrict validation to those fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
