package services

import (
	"errors"
	"testing"
)

func TestNormalizeAuthEmail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "normalizes case and spaces", raw: " USER@EXAMPLE.COM ", want: "user@example.com"},
		{name: "invalid email returns empty", raw: "not-email", want: ""},
		{name: "empty returns empty", raw: "   ", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := NormalizeAuthEmail(testCase.raw); got != testCase.want {
				t.Fatalf("NormalizeAuthEmail(%q) = %q, want %q", testCase.raw, got, testCase.want)
			}
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{password: "StrongPass1", valid: true},
		{password: "short1A", valid: false},
		{password: "alllowercase1", valid: false},
		{password: "NoDigitsHere", valid: false},
	}

	for _, testCase := range tests {
		err := ValidatePasswordStrength(testCase.password)
		if testCase.valid && err != nil {
			t.Fatalf("expected %q to be accepted, got %v", testCase.password, err)
		}
		if !testCase.valid && !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword for %q, got %v", testCase.password, err)
		}
	}
}

func TestAuthServiceRegisterAndAuthenticate(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{}
	service := NewAuthService(repo)

	user, err := service.Register(RegisterInput{
		Name:        " Jane ",
		Email:       "Jane@Example.com",
		Password:    "StrongPass1",
		DateOfBirth: dayPtr("1995-06-15"),
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Name != "Jane" || user.Email != "jane@example.com" {
		t.Fatalf("expected normalized name and email, got %q / %q", user.Name, user.Email)
	}
	if user.PasswordHash == "" || user.PasswordHash == "StrongPass1" {
		t.Fatalf("expected hashed password, got %q", user.PasswordHash)
	}

	_, err = service.Register(RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "StrongPass1"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if _, err := service.Register(RegisterInput{Email: "x@example.com", Password: "StrongPass1"}); !errors.Is(err, ErrAuthInputInvalid) {
		t.Fatalf("expected ErrAuthInputInvalid, got %v", err)
	}

	authenticated, err := service.Authenticate(" JANE@example.com", "StrongPass1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authenticated.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, authenticated.ID)
	}
	if _, err := service.Authenticate("jane@example.com", "WrongPass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := service.Authenticate("nobody@example.com", "StrongPass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthServiceResetPassword(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{}
	service := NewAuthService(repo)
	user, err := service.Register(RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "StrongPass1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := service.ResetPassword(&user, "NewStrongPass2"); err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if _, err := service.Authenticate("ana@example.com", "NewStrongPass2"); err != nil {
		t.Fatalf("expected new password to authenticate, got %v", err)
	}
	if _, err := service.FindByID(99); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
