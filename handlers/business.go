package handlers

import (
	"net/http"

	"sokohub/models"
	"sokohub/services/directory"
	"sokohub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessHandler exposes the directory endpoints.
type BusinessHandler struct {
	Service directory.DirectoryService
}

// NewBusinessHandler creates a new BusinessHandler instance.
func NewBusinessHandler(svc directory.DirectoryService) *BusinessHandler {
	return &BusinessHandler{Service: svc}
}

// AddBusinessHandler handles POST /add-new-business.
func (h *BusinessHandler) AddBusinessHandler(c *gin.Context) {
	var b models.Business
	if err := c.ShouldBindJSON(&b); err != nil {
		utils.JSONError(c, utils.ValidationErr("invalid request body: %v", err))
		return
	}
	id, err := h.Service.CreateBusiness(c.Request.Context(), &b)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// UpdateBusinessHandler handles PUT /update-business/:id.
func (h *BusinessHandler) UpdateBusinessHandler(c *gin.Context) {
	id := c.Param("id")
	var b models.Business
	if err := c.ShouldBindJSON(&b); err != nil {
		utils.JSONError(c, utils.ValidationErr("invalid request body: %v", err))
		return
	}
	if err := h.Service.UpdateBusiness(c.Request.Context(), id, &b); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "business updated"})
}

// DeleteBusinessHandler handles DELETE /delete-business-and-files/:id.
func (h *BusinessHandler) DeleteBusinessHandler(c *gin.Context) {
	id := c.Param("id")
	result, err := h.Service.PurgeBusiness(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAllBusinessesHandler handles GET /get-all-businesses.
func (h *BusinessHandler) GetAllBusinessesHandler(c *gin.Context) {
	businesses, err := h.Service.GetAllBusinesses(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, businesses)
}

// GetFeaturedBusinessesHandler handles GET /get-feat-businesses.
func (h *BusinessHandler) GetFeaturedBusinessesHandler(c *gin.Context) {
	businesses, err := h.Service.GetFeaturedBusinesses(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, businesses)
}

// SearchBusinessesHandler handles GET /get-matching-businesses?name&city&tags.
func (h *BusinessHandler) SearchBusinessesHandler(c *gin.Context) {
	criteria := models.ParseBusinessCriteria(
		c.Query("name"),
		c.Query("city"),
		c.Query("tags"),
	)
	businesses, err := h.Service.SearchBusinesses(c.Request.Context(), criteria)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, businesses)
}

// GetBusinessFeatImageHandler handles GET /get-business-feat-image/:id.
func (h *BusinessHandler) GetBusinessFeatImageHandler(c *gin.Context) {
	id := c.Param("id")
	url, err := h.Service.FeaturedImageURL(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}

// UploadBusinessFeatImageHandler handles POST /upload-business-feat-image/:id.
func (h *BusinessHandler) UploadBusinessFeatImageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationErr("invalid request body: %v", err))
		return
	}
	url, err := h.Service.SetFeaturedImage(c.Request.Context(), id, req.FilePath)
	if err != nil {
		logger.Error("Failed to upload business featured image", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}

// DeleteBusinessFeatImageHandler handles DELETE /delete-business-feat-image/:id.
func (h *BusinessHandler) DeleteBusinessFeatImageHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.RemoveFeaturedImage(c.Request.Context(), id); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "featured image deleted"})
}
