// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package serviceinfo

import "errors"

// The closed result set surfaced to the orchestrator. Module errors
// always wrap exactly one of these and are checked with errors.Is.
var (
	// ErrContent indicates malformed or missing arguments, an exceeded
	// byte budget, or an illegal state transition. It terminates the
	// module's session but the orchestrator decides whether to abort
	// the larger onboarding attempt.
	ErrContent = errors.New("service info content error")

	// ErrInternal indicates an allocation or codec context failure.
	// The module cannot make progress and the session must end.
	ErrInternal = errors.New("service info internal error")
)
