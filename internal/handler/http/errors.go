// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication and authorization middleware.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrAccountNotFound is returned when a syntactically valid token refers
	// to an account that no longer exists in storage.
	ErrAccountNotFound = errors.New("account behind the token no longer exists")

	// ErrAdminRequired is returned by the role middleware when an
	// authenticated caller without the admin role reaches an admin route.
	ErrAdminRequired = errors.New("admin role required")

	// ErrInvalidPathParameter is returned when a numeric path parameter
	// (e.g. a post or user identifier) cannot be parsed.
	ErrInvalidPathParameter = errors.New("invalid path parameter")
)
