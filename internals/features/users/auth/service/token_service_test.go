package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"

	"memoku_backend/internals/configs"
	"memoku_backend/internals/constants"
	userModel "memoku_backend/internals/features/users/user/model"
	authMw "memoku_backend/internals/middlewares/auth"
)

func withSecret(t *testing.T, secret string) {
	t.Helper()
	prev := configs.JWTSecret
	configs.JWTSecret = secret
	t.Cleanup(func() { configs.JWTSecret = prev })
}

func TestSignAndParseAccessToken(t *testing.T) {
	withSecret(t, "rahasia-test")

	u := userModel.UserModel{
		UserID:   uuid.New(),
		UserName: "region.jawa",
		UserRole: constants.RoleAmoRegion,
	}
	token, err := SignAccessToken(u, time.Now().UTC())
	if err != nil {
		t.Fatalf("SignAccessToken: %v", err)
	}

	claims, err := authMw.ParseAccessClaims(token, "rahasia-test")
	if err != nil {
		t.Fatalf("ParseAccessClaims: %v", err)
	}
	if claims["id"] != u.UserID.String() {
		t.Errorf("claim id = %v, want %s", claims["id"], u.UserID)
	}
	if claims["user_name"] != "region.jawa" {
		t.Errorf("claim user_name = %v", claims["user_name"])
	}
	if claims["role"] != constants.RoleAmoRegion {
		t.Errorf("claim role = %v", claims["role"])
	}
}

func TestParseAccessClaimsRejectsWrongSecret(t *testing.T) {
	withSecret(t, "rahasia-test")

	u := userModel.UserModel{UserID: uuid.New(), UserName: "x", UserRole: constants.RoleMO}
	token, err := SignAccessToken(u, time.Now().UTC())
	if err != nil {
		t.Fatalf("SignAccessToken: %v", err)
	}
	if _, err := authMw.ParseAccessClaims(token, "secret-lain"); err == nil {
		t.Error("token dengan secret berbeda harus ditolak")
	}
}

func TestSignAccessTokenRequiresSecret(t *testing.T) {
	withSecret(t, "")
	u := userModel.UserModel{UserID: uuid.New()}
	if _, err := SignAccessToken(u, time.Now()); err == nil {
		t.Error("tanpa JWT_SECRET harus error, bukan token kosong")
	}
}

func TestComputeRefreshHash(t *testing.T) {
	a := computeRefreshHash("token-a", "secret")
	b := computeRefreshHash("token-a", "secret")
	if !bytes.Equal(a, b) {
		t.Error("hash harus deterministik")
	}
	if bytes.Equal(a, computeRefreshHash("token-b", "secret")) {
		t.Error("token berbeda harus menghasilkan hash berbeda")
	}
	if bytes.Equal(a, computeRefreshHash("token-a", "secret-lain")) {
		t.Error("secret berbeda harus menghasilkan hash berbeda")
	}
}
