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

func (h *HttpEndpoints) AddVideosAPI(rg *gin.RouterGroup) {
	videosGroup := rg.Group("/videos")
	{
		videosGroup.GET("", h.getVideos)

		videosGroup.POST("",
			mw.GetAndValidateUserJWT(h.tokenSignKey),
			mw.IsAdminUser(),
			mw.RequirePayload(),
			h.createVideo)
		videosGroup.PUT("/:videoID",
			mw.GetAndValidateUserJWT(h.tokenSignKey),
			mw.IsAdminUser(),
			mw.RequirePayload(),
			h.updateVideo)
		videosGroup.DELETE("/:videoID",
			mw.GetAndValidateUserJWT(h.tokenSignKey),
			mw.IsAdminUser(),
			h.deleteVideo)
	}
}

func (h *HttpEndpoints) getVideos(c *gin.Context) {
	videos, err := h.contentDBConn.GetVideos()
	if err != nil {
		slog.Error("failed to fetch videos", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if videos == nil {
		videos = []contentDB.Video{}
	}
	c.JSON(http.StatusOK, videos)
}

type videoReq struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

func (h *HttpEndpoints) createVideo(c *gin.Context) {
	var req videoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and url are required"})
		return
	}

	video, err := h.contentDBConn.CreateVideo(contentDB.Video{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		slog.Error("failed to create video", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	claims := getClaimsFromContext(c)
	slog.Info("video created", slog.String("videoID", video.ID.Hex()), slog.String("by", claims.Subject))
	c.JSON(http.StatusCreated, video)
}

func (h *HttpEndpoints) updateVideo(c *gin.Context) {
	videoID := c.Param("videoID")

	var req videoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and url are required"})
		return
	}

	video, err := h.contentDBConn.UpdateVideo(videoID, req.Title, req.URL, req.Description)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		slog.Error("failed to update video", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *HttpEndpoints) deleteVideo(c *gin.Context) {
	videoID := c.Param("videoID")

	if err := h.contentDBConn.DeleteVideo(videoID); err != nil {
		if errors.Is(err, contentDB.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return
	}

	claims := getClaimsFromContext(c)
	slog.Info("video deleted", slog.String("videoID", videoID), slog.String("by", claims.Subject))
	c.JSON(http.StatusOK, gin.H{"message": "video deleted"})
}
