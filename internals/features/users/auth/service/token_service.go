package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"memoku_backend/internals/configs"
	authModel "memoku_backend/internals/features/users/auth/model"
	userModel "memoku_backend/internals/features/users/user/model"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

func buildAccessClaims(u userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":        u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
}

// computeRefreshHash: yang dipersist hanya HMAC dari refresh token.
func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

func getJWTSecret() (string, error) {
	if configs.JWTSecret == "" {
		return "", fmt.Errorf("JWT_SECRET belum diset")
	}
	return configs.JWTSecret, nil
}

func getRefreshSecret() (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", fmt.Errorf("JWT_REFRESH_SECRET belum diset")
	}
	return configs.JWTRefreshSecret, nil
}

// SignAccessToken menerbitkan access token HS256 untuk user.
func SignAccessToken(u userModel.UserModel, now time.Time) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).SignedString([]byte(secret))
}

// issueTokens membuat pasangan access+refresh, menyimpan hash refresh,
// dan memasang cookie refresh_token.
func issueTokens(c *fiber.Ctx, db *gorm.DB, u userModel.UserModel) error {
	now := time.Now().UTC()

	access, err := SignAccessToken(u, now)
	if err != nil {
		return fmt.Errorf("sign access: %w", err)
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return err
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.UserID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return fmt.Errorf("sign refresh: %w", err)
	}

	if err := db.Create(&authModel.RefreshTokenModel{
		UserID:    u.UserID,
		TokenHash: computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTL),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}).Error; err != nil {
		return fmt.Errorf("simpan refresh: %w", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(refreshTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "login berhasil",
		"data": fiber.Map{
			"access_token": access,
			"token_type":   "Bearer",
			"expires_in":   int(accessTTL.Seconds()),
			"user": fiber.Map{
				"user_id":   u.UserID,
				"user_name": u.UserName,
				"role":      u.UserRole,
			},
		},
	})
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
