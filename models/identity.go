package models

// Identity is the authenticated caller of a request. It is constructed once
// by the authentication middleware — after the bearer token has been verified
// and the account re-fetched from storage — and travels through the request
// context as a typed value.
//
// Role always reflects the account's current role, not the (possibly stale)
// claim embedded in the token the caller presented.
type Identity struct {
	UserID int64
	Role   Role
}
