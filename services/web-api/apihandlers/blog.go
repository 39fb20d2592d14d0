package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	mw "github.com/aidbridge/aidbridge-backend/pkg/apihelpers/middlewares"
	contentDB "github.com/aidbridge/aidbridge-backend/pkg/db/content"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (h *HttpEndpoints) AddBlogAPI(rg *gin.RouterGroup) {
	blogGroup := rg.Group("/blog")
	{
		blogGroup.GET("", h.getBlogPosts)
		blogGroup.GET("/:postID", h.getBlogPostByID)

		blogGroup.POST("",
			mw.GetAndValidateUserJWT(h.tokenSignKey),
			mw.IsAdminUser(),
			h.createBlogPost)
		blogGroup.PUT("/:postID",
			mw.GetAndValidateUserJWT(h.tokenSignKey),
			mw.IsAdminUser(),
			h.updateBlogPost)
		blogGroup.DELETE("/:postID",
			mw.GetAndValidateUserJWT(h.tokenSignKey),
			mw.IsAdminUser(),
			h.deleteBlogPost)
	}
}

func (h *HttpEndpoints) getBlogPosts(c *gin.Context) {
	posts, err := h.contentDBConn.GetBlogPosts()
	if err != nil {
		slog.Error("failed to fetch blog posts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if posts == nil {
		posts = []contentDB.BlogPost{}
	}
	c.JSON(http.StatusOK, posts)
}

func (h *HttpEndpoints) getBlogPostByID(c *gin.Context) {
	post, err := h.contentDBConn.GetBlogPostByID(c.Param("postID"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *HttpEndpoints) createBlogPost(c *gin.Context) {
	title := c.PostForm("title")
	body := c.PostForm("content")
	author := c.PostForm("author")
	if title == "" || body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
		return
	}

	post := contentDB.BlogPost{
		Title:   title,
		Content: body,
		Author:  author,
		Tags:    normalizeTags(c.PostFormArray("tags")),
	}

	if fileHeader, err := c.FormFile("coverImage"); err == nil {
		_, servedPath, err := h.saveUploadedImage(c, fileHeader)
		if err != nil {
			slog.Error("failed to store cover image", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
			return
		}
		post.CoverImage = servedPath
	}

	created, err := h.contentDBConn.CreateBlogPost(post)
	if err != nil {
		slog.Error("failed to create blog post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	claims := getClaimsFromContext(c)
	slog.Info("blog post created", slog.String("postID", created.ID.Hex()), slog.String("by", claims.Subject))
	c.JSON(http.StatusCreated, created)
}

func (h *HttpEndpoints) updateBlogPost(c *gin.Context) {
	postID := c.Param("postID")

	update := bson.M{}
	if title := c.PostForm("title"); title != "" {
		update["title"] = title
	}
	if body := c.PostForm("content"); body != "" {
		update["content"] = body
	}
	if author := c.PostForm("author"); author != "" {
		update["author"] = author
	}
	if tags := c.PostFormArray("tags"); len(tags) > 0 {
		update["tags"] = normalizeTags(tags)
	}

	if fileHeader, err := c.FormFile("coverImage"); err == nil {
		_, servedPath, err := h.saveUploadedImage(c, fileHeader)
		if err != nil {
			slog.Error("failed to store cover image", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
			return
		}
		update["coverImage"] = servedPath
	}

	if len(update) < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	post, err := h.contentDBConn.UpdateBlogPost(postID, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
			return
		}
		slog.Error("failed to update blog post", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *HttpEndpoints) deleteBlogPost(c *gin.Context) {
	postID := c.Param("postID")

	if err := h.contentDBConn.DeleteBlogPost(postID); err != nil {
		if errors.Is(err, contentDB.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	claims := getClaimsFromContext(c)
	slog.Info("blog post deleted", slog.String("postID", postID), slog.String("by", claims.Subject))
	c.JSON(http.StatusOK, gin.H{"message": "blog post deleted"})
}
