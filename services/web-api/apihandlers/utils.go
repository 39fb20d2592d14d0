package apihandlers

import (
	"math/rand"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	jwthandling "github.com/aidbridge/aidbridge-backend/pkg/jwt-handling"
	"github.com/aidbridge/aidbridge-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

func randomWait(minTimeSec int, maxTimeSec int) {
	time.Sleep(time.Duration(rand.Intn(maxTimeSec-minTimeSec)+minTimeSec) * time.Second)
}

func getClaimsFromContext(c *gin.Context) *jwthandling.UserClaims {
	tokenValue, ok := c.Get("validatedToken")
	if !ok {
		return nil
	}
	return tokenValue.(*jwthandling.UserClaims)
}

// saveUploadedImage validates the file content against the allowed image
// types and stores it in the filestore under a random name. Returns the
// generated filename and the public path the file is served from.
func (h *HttpEndpoints) saveUploadedImage(c *gin.Context, fileHeader *multipart.FileHeader) (filename string, servedPath string, err error) {
	contentType, err := utils.ValidateFileTypeFromContent(fileHeader, allowedImageTypes)
	if err != nil {
		return "", "", err
	}

	ext := utils.GetFileExtensionFromContentType(contentType)
	filename = uuid.New().String() + ext
	target := filepath.Join(h.filestorePath, filename)
	if err := c.SaveUploadedFile(fileHeader, target); err != nil {
		return "", "", err
	}
	return filename, "/uploads/" + filename, nil
}

// normalizeTags trims, deduplicates and caps the tag list at 10 entries.
// Accepts a comma separated string per entry as well.
func normalizeTags(rawTags []string) []string {
	tags := []string{}
	seen := map[string]struct{}{}
	for _, entry := range rawTags {
		for _, tag := range strings.Split(entry, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
			if len(tags) >= 10 {
				return tags
			}
		}
	}
	return tags
}
