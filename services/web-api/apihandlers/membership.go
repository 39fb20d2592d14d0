package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	mw "github.com/aidbridge/aidbridge-backend/pkg/apihelpers/middlewares"
	membershipDB "github.com/aidbridge/aidbridge-backend/pkg/db/membership"
	usermanagement "github.com/aidbridge/aidbridge-backend/pkg/user-management"
	userTypes "github.com/aidbridge/aidbridge-backend/pkg/user-management/types"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func (h *HttpEndpoints) AddMembershipAPI(rg *gin.RouterGroup) {
	membershipGroup := rg.Group("/membership")
	{
		membershipGroup.GET("/plans", h.listActivePlans)
		membershipGroup.GET("/plans/:planType", h.getPlanByType)
		membershipGroup.POST("/plans",
			mw.GetAndValidateUserJWT(h.tokenSignKey),
			mw.IsAdminUser(),
			mw.RequirePayload(),
			h.upsertPlan)

		membershipGroup.GET("/user/:userID", h.getMembershipStatus)
		membershipGroup.PUT("/user/:userID",
			mw.GetAndValidateUserJWT(h.tokenSignKey),
			mw.IsAdminUser(),
			mw.RequirePayload(),
			h.setUserMembership)
	}
}

func (h *HttpEndpoints) listActivePlans(c *gin.Context) {
	plans, err := h.membershipDBConn.GetActivePlans()
	if err != nil {
		slog.Error("failed to fetch plans", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if plans == nil {
		plans = []membershipDB.Plan{}
	}
	c.JSON(http.StatusOK, plans)
}

func (h *HttpEndpoints) getPlanByType(c *gin.Context) {
	planType := c.Param("planType")
	if !userTypes.IsValidPlanType(planType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan type"})
		return
	}

	plan, err := h.membershipDBConn.GetPlanByType(planType)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		slog.Error("failed to fetch plan", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

type upsertPlanReq struct {
	PlanType  string   `json:"planType"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Duration  int      `json:"duration"`
	Features  []string `json:"features"`
	IsPopular bool     `json:"isPopular"`
	IsActive  *bool    `json:"isActive"`
}

func (h *HttpEndpoints) upsertPlan(c *gin.Context) {
	var req upsertPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !userTypes.IsValidPlanType(req.PlanType) {
		slog.Error("invalid plan type", slog.String("planType", req.PlanType))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan type"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	plan, err := h.membershipDBConn.SavePlan(membershipDB.Plan{
		PlanType:  req.PlanType,
		Name:      req.Name,
		Price:     req.Price,
		Duration:  req.Duration,
		Features:  req.Features,
		IsPopular: req.IsPopular,
		IsActive:  isActive,
	})
	if err != nil {
		slog.Error("failed to save plan", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	claims := getClaimsFromContext(c)
	slog.Info("plan saved", slog.String("planType", plan.PlanType), slog.String("by", claims.Subject))
	c.JSON(http.StatusOK, plan)
}

func (h *HttpEndpoints) getMembershipStatus(c *gin.Context) {
	userID := c.Param("userID")

	user, err := h.userDBConn.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("failed to fetch user", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	m := user.Membership
	resp := gin.H{
		"plan":     m.Plan,
		"status":   m.PaymentStatus,
		"isActive": usermanagement.IsMembershipActive(m, time.Now()),
		"amount":   m.PaymentAmount,
	}
	if !m.StartedAt.IsZero() {
		resp["startDate"] = m.StartedAt
	}
	if !m.ExpiresAt.IsZero() {
		resp["expiry"] = m.ExpiresAt
	}
	c.JSON(http.StatusOK, resp)
}

type setMembershipReq struct {
	MembershipPlan string  `json:"membershipPlan"`
	PaymentStatus  string  `json:"paymentStatus"`
	PaymentAmount  float64 `json:"paymentAmount"`
}

func (h *HttpEndpoints) setUserMembership(c *gin.Context) {
	userID := c.Param("userID")

	var req setMembershipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !userTypes.IsValidPlanType(req.MembershipPlan) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan type"})
		return
	}
	if !userTypes.IsValidPaymentStatus(req.PaymentStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment status"})
		return
	}

	user, err := h.userDBConn.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("failed to fetch user", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	newMembership, err := usermanagement.ApplyMembershipChange(
		user.Membership,
		req.MembershipPlan,
		req.PaymentStatus,
		req.PaymentAmount,
		time.Now(),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.userDBConn.UpdateMembership(user.ID.Hex(), newMembership)
	if err != nil {
		slog.Error("failed to update membership", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	claims := getClaimsFromContext(c)
	slog.Info("membership updated",
		slog.String("userID", updated.ID.Hex()),
		slog.String("plan", newMembership.Plan),
		slog.String("paymentStatus", newMembership.PaymentStatus),
		slog.String("by", claims.Subject))

	c.JSON(http.StatusOK, updated)
}
