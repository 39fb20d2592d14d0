package apihandlers

import (
	"log/slog"
	"net/http"

	mw "github.com/aidbridge/aidbridge-backend/pkg/apihelpers/middlewares"
	jwthandling "github.com/aidbridge/aidbridge-backend/pkg/jwt-handling"
	"github.com/aidbridge/aidbridge-backend/pkg/user-management/pwhash"
	userTypes "github.com/aidbridge/aidbridge-backend/pkg/user-management/types"
	umUtils "github.com/aidbridge/aidbridge-backend/pkg/user-management/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func (h *HttpEndpoints) AddAuthAPI(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", mw.RequirePayload(), h.register)
		authGroup.POST("/login", mw.RequirePayload(), h.login)
		authGroup.POST("/forgot-password", mw.RequirePayload(), h.forgotPassword)
		authGroup.POST("/reset-password", mw.RequirePayload(), h.resetPassword)
	}
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *HttpEndpoints) register(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email == "" || req.Password == "" {
		slog.Error("missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	req.Email = umUtils.SanitizeEmail(req.Email)

	if !umUtils.CheckEmailFormat(req.Email) {
		slog.Error("invalid email format", slog.String("email", req.Email))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email format"})
		return
	}

	if !umUtils.CheckPasswordFormat(req.Password) {
		slog.Error("invalid password format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid password format"})
		return
	}

	if umUtils.IsPasswordOnBlocklist(req.Password) {
		slog.Error("password on blocklist")
		c.JSON(http.StatusBadRequest, gin.H{"error": "password on blocklist"})
		return
	}

	password, err := pwhash.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	newUser := userTypes.User{
		Email:    req.Email,
		Password: password,
		Role:     userTypes.ROLE_MEMBER,
		Membership: userTypes.Membership{
			PaymentStatus: userTypes.PAYMENT_STATUS_PENDING,
		},
	}

	user, err := h.userDBConn.CreateUser(newUser)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			slog.Warn("registration attempt with existing email", slog.String("email", umUtils.BlurEmailAddress(req.Email)))
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		slog.Error("failed to create user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	token, err := jwthandling.GenerateNewUserToken(h.tokenExpiresIn, user.ID.Hex(), user.Role, user.IsAdmin(), h.tokenSignKey)
	if err != nil {
		slog.Error("failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("new user registered", slog.String("userID", user.ID.Hex()))

	c.JSON(http.StatusCreated, gin.H{
		"token":   token,
		"role":    user.Role,
		"userId":  user.ID.Hex(),
		"isAdmin": user.IsAdmin(),
	})
}

func (h *HttpEndpoints) login(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email == "" || req.Password == "" {
		slog.Error("missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	req.Email = umUtils.SanitizeEmail(req.Email)

	// The error response is identical for unknown email and wrong password
	// on purpose, so accounts cannot be enumerated.
	user, err := h.userDBConn.GetUserByEmail(req.Email)
	if err != nil {
		slog.Warn("login attempt with wrong email address", slog.String("email", umUtils.BlurEmailAddress(req.Email)))
		randomWait(1, 3)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	match, err := pwhash.ComparePasswordWithHash(user.Password, req.Password)
	if err != nil || !match {
		slog.Warn("login attempt with wrong password", slog.String("userID", user.ID.Hex()))
		randomWait(1, 3)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := jwthandling.GenerateNewUserToken(h.tokenExpiresIn, user.ID.Hex(), user.Role, user.IsAdmin(), h.tokenSignKey)
	if err != nil {
		slog.Error("failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("login successful", slog.String("userID", user.ID.Hex()))

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"role":      user.Role,
		"userId":    user.ID.Hex(),
		"isAdmin":   user.IsAdmin(),
		"expiresIn": h.tokenExpiresIn.Seconds(),
	})
}
