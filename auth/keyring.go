// Package auth persists the catalog access token in the system keyring.
package auth

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const (
	service = "marquee-cli"
	user    = "catalog-token"
)

// SetToken persists the catalog token to the system keyring.
func SetToken(token string) error {
	return keyring.Set(service, user, token)
}

// GetToken retrieves the catalog token from the system keyring.
func GetToken() (string, error) {
	return keyring.Get(service, user)
}

// DeleteToken removes the catalog token from the system keyring.
func DeleteToken() error {
	return keyring.Delete(service, user)
}

// Token returns the stored token, or "" when none is stored or the keyring is unavailable.
func Token() string {
	token, err := GetToken()
	if err != nil {
		return ""
	}
	return token
}

// IsMissing reports whether err means no token has been stored yet.
func IsMissing(err error) bool {
	return errors.Is(err, keyring.ErrNotFound)
}
