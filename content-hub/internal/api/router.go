package api

import (
	"github.com/gin-gonic/gin"
)

// Register mounts the site and admin routes under /api/v1.
func Register(router gin.IRouter, h *Handler) {
	v1 := router.Group("/api/v1")

	sites := v1.Group("/sites/:site")
	sites.GET("/:resource", h.SiteList)
	sites.GET("/:resource/:id", h.SiteGet)
	sites.GET("/:resource/:id/media", h.PropertyMedia)

	v1.POST("/contact", h.Contact)
	v1.POST("/newsletter", h.Newsletter)

	admin := v1.Group("/admin")
	admin.GET("/dashboard", h.Dashboard)
	admin.POST("/upload/:bucket", h.Upload)
	admin.POST("/import", h.Import)
	admin.GET("/:resource", h.AdminList)
	admin.POST("/:resource", h.AdminCreate)
	admin.GET("/:resource/:id", h.AdminGet)
	admin.PUT("/:resource/:id", h.AdminUpdate)
	admin.DELETE("/:resource/:id", h.AdminDelete)
}
