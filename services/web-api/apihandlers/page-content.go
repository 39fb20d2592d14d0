package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	mw "github.com/aidbridge/aidbridge-backend/pkg/apihelpers/middlewares"
	contentDB "github.com/aidbridge/aidbridge-backend/pkg/db/content"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func (h *HttpEndpoints) AddPageContentAPI(rg *gin.RouterGroup) {
	contentGroup := rg.Group("/content")
	{
		contentGroup.GET("", h.getPageContent)

		contentGroup.POST("",
			mw.GetAndValidateUserJWT(h.tokenSignKey),
			mw.IsAdminUser(),
			mw.RequirePayload(),
			h.createPageContent)
		contentGroup.PUT("/:contentID",
			mw.GetAndValidateUserJWT(h.tokenSignKey),
			mw.IsAdminUser(),
			mw.RequirePayload(),
			h.updatePageContent)
	}
}

func (h *HttpEndpoints) getPageContent(c *gin.Context) {
	content, err := h.contentDBConn.GetLatestPageContent()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusOK, gin.H{"intro": ""})
			return
		}
		slog.Error("failed to fetch page content", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, content)
}

type pageContentReq struct {
	Intro string `json:"intro"`
}

func (h *HttpEndpoints) createPageContent(c *gin.Context) {
	var req pageContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Intro == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "intro is required"})
		return
	}

	content, err := h.contentDBConn.CreatePageContent(contentDB.PageContent{Intro: req.Intro})
	if err != nil {
		slog.Error("failed to create page content", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	claims := getClaimsFromContext(c)
	slog.Info("page content created", slog.String("contentID", content.ID.Hex()), slog.String("by", claims.Subject))
	c.JSON(http.StatusCreated, content)
}

func (h *HttpEndpoints) updatePageContent(c *gin.Context) {
	contentID := c.Param("contentID")

	var req pageContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Intro == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "intro is required"})
		return
	}

	content, err := h.contentDBConn.UpdatePageContent(contentID, req.Intro)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "page content not found"})
			return
		}
		slog.Error("failed to update page content", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}
	c.JSON(http.StatusOK, content)
}
