package security

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const HeaderAuthorization = "Authorization"

var (
	ErrMissingAuthHeader = errors.New("missing Authorization header")
	ErrUnsupportedScheme = errors.New("unsupported authorization scheme")
)

// Scheme identifies how a request carries its credentials.
type Scheme int

const (
	SchemeNone Scheme = iota
	SchemeBasic
	SchemeBearer
)

func GenerateRandomBytes(length uint32) ([]byte, error) {
	key := make([]byte, length)

	_, err := rand.Read(key)
	if err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}

	return key, nil
}

func GenerateRandomBytesURLEncoded(length uint32) (string, error) {
	key, err := GenerateRandomBytes(length)

	if err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}

	return base64.URLEncoding.EncodeToString(key), nil
}

// AuthScheme reports which scheme the Authorization header uses.
func AuthScheme(r *http.Request) (Scheme, error) {
	header := r.Header.Get(HeaderAuthorization)
	if header == "" {
		return SchemeNone, ErrMissingAuthHeader
	}

	scheme, _, _ := strings.Cut(header, " ")
	switch strings.ToLower(scheme) {
	case "basic":
		return SchemeBasic, nil
	case "bearer":
		return SchemeBearer, nil
	default:
		return SchemeNone, ErrUnsupportedScheme
	}
}

func ExtractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(HeaderAuthorization)
	if header == "" {
		return "", ErrMissingAuthHeader
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", errors.New("missing Bearer prefix")
	}
	return strings.TrimSpace(header[len(prefix):]), nil
}

func ExtractBasicCredentials(r *http.Request) (username, password string, err error) {
	username, password, ok := r.BasicAuth()
	if !ok {
		return "", "", errors.New("malformed basic credentials")
	}
	return username, password, nil
}
