package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	mw "github.com/aidbridge/aidbridge-backend/pkg/apihelpers/middlewares"
	userTypes "github.com/aidbridge/aidbridge-backend/pkg/user-management/types"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func (h *HttpEndpoints) AddUserManagementAPI(rg *gin.RouterGroup) {
	usersGroup := rg.Group("/users")
	usersGroup.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	usersGroup.Use(mw.IsAdminUser())
	{
		usersGroup.GET("", h.getAllUsers)
		usersGroup.PUT("/promote/:userID", h.promoteUser)
		usersGroup.PUT("/demote/:userID", h.demoteUser)
	}
}

func (h *HttpEndpoints) getAllUsers(c *gin.Context) {
	users, err := h.userDBConn.GetAllUsers()
	if err != nil {
		slog.Error("failed to fetch users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if users == nil {
		users = []userTypes.User{}
	}
	c.JSON(http.StatusOK, users)
}

func (h *HttpEndpoints) promoteUser(c *gin.Context) {
	userID := c.Param("userID")

	user, err := h.changeUserRole(c, userID, userTypes.ROLE_ADMIN)
	if err != nil {
		return
	}

	claims := getClaimsFromContext(c)
	slog.Info("user promoted to admin",
		slog.String("userID", userID),
		slog.String("by", claims.Subject))
	c.JSON(http.StatusOK, gin.H{
		"message": "user promoted",
		"userId":  userID,
		"role":    userTypes.ROLE_ADMIN,
		"email":   user.Email,
	})
}

func (h *HttpEndpoints) demoteUser(c *gin.Context) {
	userID := c.Param("userID")

	claims := getClaimsFromContext(c)
	if claims.Subject == userID {
		slog.Warn("admin attempted self-demotion", slog.String("userID", userID))
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot demote yourself"})
		return
	}

	user, err := h.changeUserRole(c, userID, userTypes.ROLE_MEMBER)
	if err != nil {
		return
	}

	slog.Info("user demoted to member",
		slog.String("userID", userID),
		slog.String("by", claims.Subject))
	c.JSON(http.StatusOK, gin.H{
		"message": "user demoted",
		"userId":  userID,
		"role":    userTypes.ROLE_MEMBER,
		"email":   user.Email,
	})
}

// changeUserRole looks up the target user and writes the new role. It writes
// the error response itself so callers only need to bail out on error.
func (h *HttpEndpoints) changeUserRole(c *gin.Context, userID string, role string) (userTypes.User, error) {
	user, err := h.userDBConn.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return userTypes.User{}, err
		}
		slog.Error("failed to fetch user", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return userTypes.User{}, err
	}

	if err := h.userDBConn.UpdateRole(user.ID.Hex(), role); err != nil {
		slog.Error("failed to update role", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return userTypes.User{}, err
	}
	return user, nil
}
