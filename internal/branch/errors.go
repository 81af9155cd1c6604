// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package branch

import "errors"

var (
	// ErrAlreadyFinalized is returned when a transition targets a branch
	// already in a terminal state (merged or rejected).
	ErrAlreadyFinalized = errors.New("branch is already finalized")

	// ErrStaleParent is returned by Merge when the document moved past
	// the branch's parent version. The branch must be rebased and
	// resubmitted before it can merge.
	ErrStaleParent = errors.New("branch parent version is stale")

	// ErrNotSubmitted is returned by Merge for branches that were never
	// submitted for review.
	ErrNotSubmitted = errors.New("branch has not been submitted")

	// ErrNotAuthor is returned when a branch operation reserved for its
	// author is attempted by someone else.
	ErrNotAuthor = errors.New("caller is not the branch author")
)
