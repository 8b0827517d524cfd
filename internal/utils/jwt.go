package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// EmailFromIDToken extracts the email claim from an ID token issued by
// the external authentication provider.
//
// The token is parsed WITHOUT signature verification: this client holds
// no provider keys, and the federated login endpoint is the authority
// that re-checks the email anyway. The extracted value is only used to
// address that lookup.
//
// Returns an error if the token cannot be parsed or carries no non-empty
// email claim.
func EmailFromIDToken(rawToken string) (string, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(rawToken, claims); err != nil {
		return "", fmt.Errorf("parse id token: %w", err)
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("id token carries no email claim")
	}

	return email, nil
}
