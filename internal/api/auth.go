package api

// RegisterRequest is the payload for creating a new account. Password carries
// the wire form produced by the configured password encoder, which is not
// necessarily the plaintext the operator typed.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// LoginRequest is the payload for authenticating an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenData is the payload returned by token-minting endpoints.
type TokenData struct {
	Token string `json:"token"`
}
