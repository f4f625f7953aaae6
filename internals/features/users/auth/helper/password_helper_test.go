package helper

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "rahasia123" {
		t.Fatal("password tidak boleh tersimpan plaintext")
	}
	if err := CheckPasswordHash(hash, "rahasia123"); err != nil {
		t.Errorf("password benar ditolak: %v", err)
	}
	if err := CheckPasswordHash(hash, "salah123"); err == nil {
		t.Error("password salah harus ditolak")
	}
}

func TestValidateLoginInput(t *testing.T) {
	if err := ValidateLoginInput("mo@memoku.id", "rahasia123"); err != nil {
		t.Errorf("input valid ditolak: %v", err)
	}
	if err := ValidateLoginInput("   ", "rahasia123"); err == nil {
		t.Error("identifier kosong harus ditolak")
	}
	if err := ValidateLoginInput("mo@memoku.id", ""); err == nil {
		t.Error("password kosong harus ditolak")
	}
}

func TestValidateNewPassword(t *testing.T) {
	if err := ValidateNewPassword("pendek"); err == nil {
		t.Error("password pendek harus ditolak")
	}
	if err := ValidateNewPassword("cukup-panjang-8"); err != nil {
		t.Errorf("password valid ditolak: %v", err)
	}
}
