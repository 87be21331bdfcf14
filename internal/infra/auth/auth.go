package auth_client

import (
	"crypto/subtle"
)

type TokenValidator interface {
	ValidateToken(token string) (bool, error)
}

// StaticTokenValidator accepts a single shared admin token. With an empty
// token every request is rejected.
type StaticTokenValidator struct {
	token []byte
}

func NewStatic(token string) *StaticTokenValidator {
	return &StaticTokenValidator{token: []byte(token)}
}

func (v *StaticTokenValidator) ValidateToken(token string) (bool, error) {
	if len(v.token) == 0 {
		return false, nil
	}
	return subtle.ConstantTimeCompare(v.token, []byte(token)) == 1, nil
}
