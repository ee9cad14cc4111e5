package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/terraincognita07/mcycle/internal/db"
	"github.com/terraincognita07/mcycle/internal/services"
)

// RunResetPasswordCommand replaces the user's password with a generated
// temporary one and prints it.
func RunResetPasswordCommand(databaseURL string, dbPath string, email string, out io.Writer) error {
	if services.NormalizeAuthEmail(email) == "" {
		return fmt.Errorf("invalid email address %q", email)
	}

	database, err := db.Open(databaseURL, dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	authService := services.NewAuthService(db.NewUserRepository(database))

	user, err := authService.FindByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return fmt.Errorf("user %s not found", services.NormalizeAuthEmail(email))
		}
		return fmt.Errorf("load user: %w", err)
	}

	temporaryPassword, err := generateTemporaryPassword(minTemporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	if err := authService.ResetPassword(&user, temporaryPassword); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	return nil
}
