package apihandlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	emailsending "github.com/aidbridge/aidbridge-backend/pkg/messaging/email-sending"
	"github.com/aidbridge/aidbridge-backend/pkg/user-management/pwhash"
	umUtils "github.com/aidbridge/aidbridge-backend/pkg/user-management/utils"
	"github.com/gin-gonic/gin"
)

const (
	passwordResetCodeLength = 6
	passwordResetCodeTTL    = 10 * time.Minute
)

func (h *HttpEndpoints) forgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	req.Email = umUtils.SanitizeEmail(req.Email)

	// The response never reveals whether the email is registered.
	user, err := h.userDBConn.GetUserByEmail(req.Email)
	if err != nil {
		slog.Warn("password reset for non-existing user", slog.String("email", umUtils.BlurEmailAddress(req.Email)))
		randomWait(1, 3)
		c.JSON(http.StatusOK, gin.H{"message": "if the account exists, a reset code was sent"})
		return
	}

	code, err := umUtils.GenerateOTPCode(passwordResetCodeLength)
	if err != nil {
		slog.Error("failed to generate reset code", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	expiresAt := umUtils.GetExpirationTime(passwordResetCodeTTL)
	if err := h.userDBConn.SetPasswordResetCode(user.ID.Hex(), code, expiresAt); err != nil {
		slog.Error("failed to save reset code", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	go func() {
		err := emailsending.SendInstantEmailByTemplate(
			[]string{user.Email},
			emailsending.EMAIL_TYPE_PASSWORD_RESET,
			map[string]string{
				"code":         code,
				"validMinutes": strconv.Itoa(int(passwordResetCodeTTL.Minutes())),
			},
		)
		if err != nil {
			slog.Error("failed to send password reset email", slog.String("error", err.Error()))
		}
	}()

	slog.Info("password reset initiated", slog.String("userID", user.ID.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "if the account exists, a reset code was sent"})
}

func (h *HttpEndpoints) resetPassword(c *gin.Context) {
	var req struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email == "" || req.Code == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	if !umUtils.CheckPasswordFormat(req.NewPassword) {
		slog.Error("invalid password format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid password format"})
		return
	}

	if umUtils.IsPasswordOnBlocklist(req.NewPassword) {
		slog.Error("password on blocklist")
		c.JSON(http.StatusBadRequest, gin.H{"error": "password on blocklist"})
		return
	}

	req.Email = umUtils.SanitizeEmail(req.Email)

	// Wrong code and expired code produce the same error on purpose.
	user, err := h.userDBConn.GetUserByEmail(req.Email)
	if err != nil || user.ResetCode.Code == "" || user.ResetCode.Code != req.Code || user.ResetCode.ExpiresAt.Before(time.Now()) {
		slog.Warn("password reset attempt with invalid code", slog.String("email", umUtils.BlurEmailAddress(req.Email)))
		randomWait(1, 3)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired code"})
		return
	}

	password, err := pwhash.HashPassword(req.NewPassword)
	if err != nil {
		slog.Error("failed to hash password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// Hash replacement and code removal happen in the same write so the
	// code cannot be used a second time.
	if err := h.userDBConn.UpdatePasswordAndClearResetCode(user.ID.Hex(), password); err != nil {
		slog.Error("failed to update password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	go func() {
		err := emailsending.SendInstantEmailByTemplate(
			[]string{user.Email},
			emailsending.EMAIL_TYPE_PASSWORD_CHANGED,
			nil,
		)
		if err != nil {
			slog.Error("failed to send password changed email", slog.String("error", err.Error()))
		}
	}()

	slog.Info("password reset successful", slog.String("userID", user.ID.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "password reset successful"})
}
