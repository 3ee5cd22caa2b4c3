package models

// TokenRecord is the session state stored under an opaque bearer token string.
// ExpiresAt is epoch milliseconds; the token is valid strictly before that
// instant. Expiry is the only invalidation mechanism.
type TokenRecord struct {
	UserID    string `json:"userId"`
	ExpiresAt int64  `json:"expiresAt"`
}
