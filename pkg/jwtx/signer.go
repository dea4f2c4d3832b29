package jwtx

// Signer mints a compact serialized JWT from a set of claims.
type Signer interface {
	Sign(claims Claims) (string, error)
}
