// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks registration, login and message payloads
// before they reach the account directory or the message ledger.
//
// Each validator accepts a set of request types and an optional list of
// field names; without names it checks the fields that type requires.
// Failures are reported with the sentinel errors of this package, so the
// transport layer can print the offending field back to the client.
package validators

import "context"

// Validator checks v, restricted to fields when any are given.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
