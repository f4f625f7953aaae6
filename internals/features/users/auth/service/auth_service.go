package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "memoku_backend/internals/features/users/auth/helper"
	authModel "memoku_backend/internals/features/users/auth/model"
	userModel "memoku_backend/internals/features/users/user/model"
	helper "memoku_backend/internals/helpers"
)

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)

	if err := authHelper.ValidateLoginInput(input.Identifier, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := db.Where("user_email = ? OR user_name = ?", strings.ToLower(input.Identifier), input.Identifier).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
		}
		log.Println("[ERROR] login query:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := authHelper.CheckPasswordHash(user.UserPassword, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
	}

	if err := issueTokens(c, db, user); err != nil {
		log.Println("[ERROR] issue tokens:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}
	return nil
}

// ========================== LOGOUT ==========================
// Access token masuk blacklist sampai exp-nya; refresh token dihapus.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(raw)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}
	tokenString := fields[1]

	// ambil exp dari klaim supaya blacklist bisa di-expire
	expiredAt := time.Now().Add(accessTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		secret, err := getJWTSecret()
		if err != nil {
			return nil, err
		}
		return []byte(secret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	if err := db.Create(&authModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}).Error; err != nil {
		log.Println("[ERROR] blacklist insert:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	// hapus refresh token milik sesi ini (best effort)
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			h := computeRefreshHash(refreshCookie, refreshSecret)
			if err := db.Where("token_hash = ?", h).Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
				log.Println("[WARN] hapus refresh token:", err)
			}
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/api/auth",
	})

	return helper.JsonOK(c, "Logout berhasil", nil)
}

// ========================== REFRESH TOKEN ==========================
// ROTATE: refresh lama dihapus, pasangan baru diterbitkan.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	h := computeRefreshHash(refreshCookie, refreshSecret)
	var stored authModel.RefreshTokenModel
	if err := db.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > now()", h).
		First(&stored).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	var user userModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "User not found")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// hapus token lama sebelum menerbitkan yang baru
	if err := db.Delete(&stored).Error; err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	if err := issueTokens(c, db, user); err != nil {
		log.Println("[ERROR] rotate tokens:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token baru")
	}
	return nil
}

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	v := c.Locals("user_id")
	userIDStr, ok := v.(string)
	if !ok || userIDStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	if err := authHelper.ValidateNewPassword(input.NewPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user userModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	if err := authHelper.CheckPasswordHash(user.UserPassword, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}

	if err := db.Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_password", newHash).Error; err != nil {
		log.Println("[ERROR] update password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
