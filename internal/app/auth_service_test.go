package app_test

import (
	"errors"
	"testing"

	"mcafe/internal/app"
	"mcafe/internal/session"

	"golang.org/x/crypto/bcrypt"
)

func TestSignIn(t *testing.T) {
	sessions := session.NewManager()
	svc := app.NewAuthService("secret", "", "", sessions)

	token, err := svc.SignIn("secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}
	if !svc.ValidateSession(token) {
		t.Fatal("issued token should validate")
	}
}

func TestSignIn_WrongPassword(t *testing.T) {
	sessions := session.NewManager()
	svc := app.NewAuthService("secret", "", "", sessions)

	tests := []string{"wrong", "", "Secret", "secret "}
	for _, pw := range tests {
		if _, err := svc.SignIn(pw); !errors.Is(err, app.ErrInvalidCredentials) {
			t.Fatalf("password %q: expected ErrInvalidCredentials, got %v", pw, err)
		}
	}
	if sessions.Count() != 0 {
		t.Fatalf("failed sign-ins must not issue sessions, got %d", sessions.Count())
	}
}

func TestSignIn_BcryptHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	svc := app.NewAuthService("plaintext-ignored", string(hash), "", session.NewManager())

	if _, err := svc.SignIn("hunter2"); err != nil {
		t.Fatalf("expected hash match, got %v", err)
	}
	if _, err := svc.SignIn("plaintext-ignored"); !errors.Is(err, app.ErrInvalidCredentials) {
		t.Fatalf("plaintext must be ignored when a hash is set, got %v", err)
	}
}

func TestSignOutInvalidatesSession(t *testing.T) {
	svc := app.NewAuthService("secret", "", "", session.NewManager())

	token, err := svc.SignIn("secret")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	svc.SignOut(token)
	if svc.ValidateSession(token) {
		t.Fatal("signed-out token should be rejected")
	}

	// Signing out an unknown token is a no-op.
	svc.SignOut("never-issued")
}

func TestValidateSession_UnknownToken(t *testing.T) {
	svc := app.NewAuthService("secret", "", "", session.NewManager())
	if svc.ValidateSession("never-issued") {
		t.Fatal("unknown token should be rejected")
	}
}

func TestSignInSSO(t *testing.T) {
	sessions := session.NewManager()
	svc := app.NewAuthService("secret", "", "owner@mcafe.example", sessions)

	token, err := svc.SignInSSO("owner@mcafe.example")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.ValidateSession(token) {
		t.Fatal("SSO-issued token should validate")
	}

	if _, err := svc.SignInSSO("intruder@mcafe.example"); !errors.Is(err, app.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
}

func TestSignInSSO_DisabledWithoutAdminEmail(t *testing.T) {
	svc := app.NewAuthService("secret", "", "", session.NewManager())
	if _, err := svc.SignInSSO("anyone@mcafe.example"); !errors.Is(err, app.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
}
