package util

import (
	"mindwell_backend/internal/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const jwtTestSecret = "0123456789abcdef0123456789abcdef"

func testUser() *model.User {
	user := &model.User{
		Name:  "Wang Fang",
		Email: "wang.fang@example.com",
		Role:  model.Clinician,
	}
	user.ID = 42
	return user
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(testUser(), jwtTestSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseJWT(token, jwtTestSecret)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
	if claims.Role != model.Clinician {
		t.Errorf("role = %q, want %q", claims.Role, model.Clinician)
	}
	if claims.Issuer != tokenIssuer {
		t.Errorf("issuer = %q, want %q", claims.Issuer, tokenIssuer)
	}
}

func TestParseJWTRejects(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateJWT(testUser(), jwtTestSecret, time.Hour)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ParseJWT(token, "another-secret-another-secret-ab"); err == nil {
			t.Error("token signed with a different secret was accepted")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := GenerateJWT(testUser(), jwtTestSecret, -time.Minute)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ParseJWT(token, jwtTestSecret); err == nil {
			t.Error("expired token was accepted")
		}
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		claims := &Claims{
			UserID: 42,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(jwtTestSecret))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ParseJWT(token, jwtTestSecret); err == nil {
			t.Error("HS512 token was accepted, only HS256 is allowed")
		}
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := &Claims{
			UserID: 42,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtTestSecret))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ParseJWT(token, jwtTestSecret); err == nil {
			t.Error("token with a foreign issuer was accepted")
		}
	})
}
