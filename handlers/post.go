package handlers

import (
	"net/http"

	"sokohub/models"
	"sokohub/services/content"
	"sokohub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadRequest is the body of featured-image upload endpoints.
type UploadRequest struct {
	FilePath string `json:"filePath"`
}

// PostHandler exposes the content endpoints.
type PostHandler struct {
	Service content.ContentService
}

// NewPostHandler creates a new PostHandler instance.
func NewPostHandler(svc content.ContentService) *PostHandler {
	return &PostHandler{Service: svc}
}

// AddPostHandler handles POST /add-new-post.
func (h *PostHandler) AddPostHandler(c *gin.Context) {
	var p models.Post
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, utils.ValidationErr("invalid request body: %v", err))
		return
	}
	id, err := h.Service.CreatePost(c.Request.Context(), &p)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// UpdatePostHandler handles PUT /update-post/:id.
func (h *PostHandler) UpdatePostHandler(c *gin.Context) {
	id := c.Param("id")
	var p models.Post
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, utils.ValidationErr("invalid request body: %v", err))
		return
	}
	if err := h.Service.UpdatePost(c.Request.Context(), id, &p); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post updated"})
}

// DeletePostHandler handles DELETE /delete-post-and-files/:id.
func (h *PostHandler) DeletePostHandler(c *gin.Context) {
	id := c.Param("id")
	result, err := h.Service.PurgePost(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAllPostsHandler handles GET /get-all-posts.
func (h *PostHandler) GetAllPostsHandler(c *gin.Context) {
	posts, err := h.Service.GetAllPosts(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetFeaturedPostsHandler handles GET /get-feat-posts.
func (h *PostHandler) GetFeaturedPostsHandler(c *gin.Context) {
	posts, err := h.Service.GetFeaturedPosts(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// SearchPostsHandler handles GET /get-posts-by-tag?tags.
func (h *PostHandler) SearchPostsHandler(c *gin.Context) {
	criteria := models.ParsePostCriteria(c.Query("tags"))
	posts, err := h.Service.SearchPosts(c.Request.Context(), criteria)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPostFeatImageHandler handles GET /get-post-feat-image/:id.
func (h *PostHandler) GetPostFeatImageHandler(c *gin.Context) {
	id := c.Param("id")
	url, err := h.Service.FeaturedImageURL(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}

// UploadPostFeatImageHandler handles POST /upload-post-feat-image/:id.
func (h *PostHandler) UploadPostFeatImageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationErr("invalid request body: %v", err))
		return
	}
	url, err := h.Service.SetFeaturedImage(c.Request.Context(), id, req.FilePath)
	if err != nil {
		logger.Error("Failed to upload post featured image", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}

// DeletePostFeatImageHandler handles DELETE /delete-post-feat-image/:id.
func (h *PostHandler) DeletePostFeatImageHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.RemoveFeaturedImage(c.Request.Context(), id); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "featured image deleted"})
}
