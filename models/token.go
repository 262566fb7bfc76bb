package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the JWT claim set carried by every session token.
//
// In addition to the standard registered claims (iss, sub, iat, exp) it
// embeds the account role at issuance time. The role claim is informational:
// authorization decisions always re-fetch the account and use its current
// role (see Identity).
type TokenClaims struct {
	// Role is the account role at the moment the token was issued.
	Role Role `json:"role"`

	jwt.RegisteredClaims
}

// Token wraps an issued or parsed session JWT with convenience accessors
// used by the authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// stored on the client side.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Role is the role claim embedded at issuance time.
	Role Role `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
