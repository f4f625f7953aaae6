package helper

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidateLoginInput: cek dasar sebelum menyentuh DB.
func ValidateLoginInput(identifier, password string) error {
	if strings.TrimSpace(identifier) == "" {
		return fmt.Errorf("identifier wajib diisi")
	}
	if password == "" {
		return fmt.Errorf("password wajib diisi")
	}
	return nil
}

// ValidateNewPassword: aturan minimum password baru.
func ValidateNewPassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password minimal 8 karakter")
	}
	return nil
}
