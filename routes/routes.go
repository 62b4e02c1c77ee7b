package routes

import (
	"net/http"
	"time"

	"sokohub/handlers"
	"sokohub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBusinessRoutes registers directory endpoints. Authenticated users
// may list and search; mutations are open at this layer.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/add-new-business", hb.Business.AddBusinessHandler)
	r.PUT("/update-business/:id", hb.Business.UpdateBusinessHandler)
	r.DELETE("/delete-business-and-files/:id", hb.Business.DeleteBusinessHandler)

	r.GET("/get-all-businesses", middleware.AuthMiddleware(), hb.Business.GetAllBusinessesHandler)
	r.GET("/get-matching-businesses", middleware.AuthMiddleware(), hb.Business.SearchBusinessesHandler)
	r.GET("/get-feat-businesses", hb.Business.GetFeaturedBusinessesHandler)

	r.GET("/get-business-feat-image/:id", hb.Business.GetBusinessFeatImageHandler)
	r.POST("/upload-business-feat-image/:id", hb.Business.UploadBusinessFeatImageHandler)
	r.DELETE("/delete-business-feat-image/:id", hb.Business.DeleteBusinessFeatImageHandler)
}

// RegisterPostRoutes registers content endpoints.
func RegisterPostRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/add-new-post", hb.Post.AddPostHandler)
	r.PUT("/update-post/:id", hb.Post.UpdatePostHandler)
	r.DELETE("/delete-post-and-files/:id", hb.Post.DeletePostHandler)

	r.GET("/get-all-posts", middleware.AuthMiddleware(), hb.Post.GetAllPostsHandler)
	r.GET("/get-posts-by-tag", middleware.AuthMiddleware(), hb.Post.SearchPostsHandler)
	r.GET("/get-feat-posts", hb.Post.GetFeaturedPostsHandler)

	r.GET("/get-post-feat-image/:id", hb.Post.GetPostFeatImageHandler)
	r.POST("/upload-post-feat-image/:id", hb.Post.UploadPostFeatImageHandler)
	r.DELETE("/delete-post-feat-image/:id", hb.Post.DeletePostFeatImageHandler)
}

// RegisterTagRoutes registers tag endpoints; mutations are admin-only.
func RegisterTagRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := middleware.AdminAuthMiddleware()

	r.POST("/add-new-business-tag", admin, hb.BusinessTags.AddTagHandler)
	r.PUT("/update-business-tag/:id", admin, hb.BusinessTags.UpdateTagHandler)
	r.DELETE("/delete-business-tag/:id", admin, hb.BusinessTags.DeleteTagHandler)
	r.GET("/get-business-tag/:id", hb.BusinessTags.GetTagHandler)
	r.GET("/get-all-business-tags", hb.BusinessTags.GetAllTagsHandler)

	r.POST("/add-new-post-tag", admin, hb.PostTags.AddTagHandler)
	r.PUT("/update-post-tag/:id", admin, hb.PostTags.UpdateTagHandler)
	r.DELETE("/delete-post-tag/:id", admin, hb.PostTags.DeleteTagHandler)
	r.GET("/get-post-tag/:id", hb.PostTags.GetTagHandler)
	r.GET("/get-all-post-tags", hb.PostTags.GetAllTagsHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Sokohub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBusinessRoutes(r, hb)
	RegisterPostRoutes(r, hb)
	RegisterTagRoutes(r, hb)
	RegisterHealthRoute(r)
}
