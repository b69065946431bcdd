package jwt_test

import (
	"errors"
	"testing"
	"time"

	"github.com/TkachenkoRP/spring-booking/internal/config"
	"github.com/TkachenkoRP/spring-booking/internal/platform/jwt"
)

var jwtCfg = &config.JWT{
	JTILength: 8,
	Issuer:    "booking-api",
}

func TestSignAndVerify_Success(t *testing.T) {
	t.Parallel()

	signer := jwt.NewGolangJWTSigner(jwtCfg, "123")

	const userID = "7"
	token, err := signer.Sign(userID, 5*time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if token == "" {
		t.Fatalf("token = %q, want: non-empty", token)
	}

	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("signer.Verify(token) returned an error: %v", err)
	}

	if claims.Subject != userID {
		t.Errorf("claims.Subject = %q, want: %q", claims.Subject, userID)
	}

	if claims.ID == "" {
		t.Error("claims.ID is empty, want: a random jti")
	}

	if !claims.ExpiresAt.After(time.Now()) {
		t.Errorf("claims.ExpiresAt = %v, want: a future time", claims.ExpiresAt)
	}
}

func TestVerify_Rejects(t *testing.T) {
	t.Parallel()

	signer := jwt.NewGolangJWTSigner(jwtCfg, "123")

	expired, err := signer.Sign("1", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	foreign, err := jwt.NewGolangJWTSigner(jwtCfg, "456").Sign("1", time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	otherIssuer, err := jwt.NewGolangJWTSigner(&config.JWT{JTILength: 8, Issuer: "other"}, "123").Sign("1", time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"signed with another key", foreign},
		{"another issuer", otherIssuer},
		{"garbage", "not.a.token"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := signer.Verify(tc.token)
			if !errors.Is(err, jwt.ErrInvalidToken) {
				t.Errorf("signer.Verify() error = %v, want: %v", err, jwt.ErrInvalidToken)
			}
		})
	}
}
