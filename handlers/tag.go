package handlers

import (
	"net/http"

	"sokohub/models"
	"sokohub/services/tags"
	"sokohub/utils"

	"github.com/gin-gonic/gin"
)

// TagHandler exposes tag endpoints; one instance per tag collection.
type TagHandler struct {
	Service tags.TagService
}

// NewTagHandler creates a new TagHandler instance.
func NewTagHandler(svc tags.TagService) *TagHandler {
	return &TagHandler{Service: svc}
}

// AddTagHandler handles POST /add-new-business-tag and /add-new-post-tag.
func (h *TagHandler) AddTagHandler(c *gin.Context) {
	var t models.Tag
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, utils.ValidationErr("invalid request body: %v", err))
		return
	}
	id, err := h.Service.Create(&t)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// UpdateTagHandler handles PUT /update-business-tag/:id and /update-post-tag/:id.
func (h *TagHandler) UpdateTagHandler(c *gin.Context) {
	id := c.Param("id")
	var t models.Tag
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, utils.ValidationErr("invalid request body: %v", err))
		return
	}
	if err := h.Service.Update(id, &t); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tag updated"})
}

// DeleteTagHandler handles DELETE /delete-business-tag/:id and /delete-post-tag/:id.
func (h *TagHandler) DeleteTagHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Remove(id); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tag deleted"})
}

// GetTagHandler handles GET /get-business-tag/:id and /get-post-tag/:id.
func (h *TagHandler) GetTagHandler(c *gin.Context) {
	id := c.Param("id")
	tag, err := h.Service.Get(id)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// GetAllTagsHandler handles GET /get-all-business-tags and /get-all-post-tags.
func (h *TagHandler) GetAllTagsHandler(c *gin.Context) {
	list, err := h.Service.List()
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
