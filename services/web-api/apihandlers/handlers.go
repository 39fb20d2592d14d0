package apihandlers

import (
	"net/http"
	"time"

	contentDB "github.com/aidbridge/aidbridge-backend/pkg/db/content"
	membershipDB "github.com/aidbridge/aidbridge-backend/pkg/db/membership"
	userDB "github.com/aidbridge/aidbridge-backend/pkg/db/user"
	"github.com/gin-gonic/gin"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	userDBConn       *userDB.UserDBService
	membershipDBConn *membershipDB.MembershipDBService
	contentDBConn    *contentDB.ContentDBService
	tokenSignKey     string
	tokenExpiresIn   time.Duration
	filestorePath    string
}

func NewHTTPHandler(
	tokenSignKey string,
	tokenExpiresIn time.Duration,
	userDBConn *userDB.UserDBService,
	membershipDBConn *membershipDB.MembershipDBService,
	contentDBConn *contentDB.ContentDBService,
	filestorePath string,
) *HttpEndpoints {
	return &HttpEndpoints{
		tokenSignKey:     tokenSignKey,
		tokenExpiresIn:   tokenExpiresIn,
		userDBConn:       userDBConn,
		membershipDBConn: membershipDBConn,
		contentDBConn:    contentDBConn,
		filestorePath:    filestorePath,
	}
}
