package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	mw "github.com/aidbridge/aidbridge-backend/pkg/apihelpers/middlewares"
	contentDB "github.com/aidbridge/aidbridge-backend/pkg/db/content"
	"github.com/aidbridge/aidbridge-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func (h *HttpEndpoints) AddMediaAPI(rg *gin.RouterGroup) {
	mediaGroup := rg.Group("/media")
	{
		mediaGroup.GET("", h.getMediaList)
		mediaGroup.GET("/:mediaID", h.getMediaByID)

		mediaGroup.POST("",
			mw.GetAndValidateUserJWT(h.tokenSignKey),
			mw.IsAdminUser(),
			h.uploadMedia)
	}
}

func (h *HttpEndpoints) getMediaList(c *gin.Context) {
	mediaList, err := h.contentDBConn.GetMediaList()
	if err != nil {
		slog.Error("failed to fetch media list", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if mediaList == nil {
		mediaList = []contentDB.Media{}
	}
	c.JSON(http.StatusOK, mediaList)
}

func (h *HttpEndpoints) getMediaByID(c *gin.Context) {
	media, err := h.contentDBConn.GetMediaByID(c.Param("mediaID"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "media not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media id"})
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *HttpEndpoints) uploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	contentType, err := utils.ValidateFileTypeFromContent(fileHeader, allowedImageTypes)
	if err != nil {
		slog.Warn("rejected media upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
		return
	}

	filename, servedPath, err := h.saveUploadedImage(c, fileHeader)
	if err != nil {
		slog.Error("failed to store media file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	media, err := h.contentDBConn.CreateMedia(contentDB.Media{
		Filename:     filename,
		OriginalName: fileHeader.Filename,
		MimeType:     contentType,
		Size:         fileHeader.Size,
		URL:          servedPath,
	})
	if err != nil {
		slog.Error("failed to save media metadata", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	claims := getClaimsFromContext(c)
	slog.Info("media uploaded",
		slog.String("mediaID", media.ID.Hex()),
		slog.String("filename", filename),
		slog.String("by", claims.Subject))
	c.JSON(http.StatusCreated, media)
}
