package routes

import (
	adminsapi "artstudio-api/internal/api/admins"
	newsapi "artstudio-api/internal/api/news"
	paintingsapi "artstudio-api/internal/api/paintings"
	partnersapi "artstudio-api/internal/api/partners"
	shopapi "artstudio-api/internal/api/shop"
	"artstudio-api/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	sanitized := r.Group("/", middleware.SanitizeInput())

	news := sanitized.Group("/news")
	news.GET("", newsapi.ListNews)
	news.POST("/create", middleware.UploadCovers(10), newsapi.CreateNews)
	news.PUT("/:id", middleware.UploadCovers(10), newsapi.UpdateNews)
	news.DELETE("/:id", newsapi.DeleteNews)

	paintings := sanitized.Group("/painting-news")
	paintings.GET("", paintingsapi.ListPaintingNews)
	paintings.POST("/create", middleware.UploadCovers(3), paintingsapi.CreatePaintingNews)
	paintings.PUT("", middleware.UploadCovers(3), paintingsapi.UpdatePaintingNews)
	paintings.DELETE("/:id", paintingsapi.DeletePaintingNews)

	shop := sanitized.Group("/shop")
	shop.GET("", shopapi.ListItems)
	shop.POST("/create", middleware.UploadCovers(10), shopapi.CreateItem)
	shop.PUT("", middleware.UploadCovers(10), shopapi.UpdateItem)
	shop.DELETE("/:id", shopapi.DeleteItem)

	partners := sanitized.Group("/api/partners")
	partners.GET("", partnersapi.ListPartners)
	partners.POST("", middleware.UploadLogo(), partnersapi.CreatePartner)
	partners.PUT("/:id", middleware.UploadLogo(), partnersapi.UpdatePartner)
	partners.DELETE("/:id", partnersapi.DeletePartner)

	admin := sanitized.Group("/admin")
	admin.GET("", adminsapi.ListAdministrators)
	admin.POST("/register", adminsapi.Register)
	admin.POST("/login", adminsapi.Login)
	admin.PUT("/update", adminsapi.ResetPassword)
	admin.PUT("/:id", adminsapi.UpdateAdministrator)
	admin.DELETE("/:id", adminsapi.DeleteAdministrator)
}
