package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup registers a set of routes on a router group.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// BatchRoutes are the batch and code routes under /api.
type BatchRoutes struct {
	batches *BatchHandler
	codes   *CodeHandler
}

// NewBatchRoutes groups the batch and code handlers.
func NewBatchRoutes(batches *BatchHandler, codes *CodeHandler) *BatchRoutes {
	return &BatchRoutes{batches: batches, codes: codes}
}

// RegisterRoutes mounts the batch and code endpoints.
func (r *BatchRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	batches := rg.Group("/batches")
	batches.POST("/preview", r.batches.Preview)
	batches.POST("", r.batches.Generate)
	batches.GET("/:orderNumber", r.batches.Get)
	batches.GET("/:orderNumber/export", r.batches.Export)

	rg.POST("/codes/validate", r.codes.ValidateCode)
}

// PackagingProfileRoutes are the packaging profile routes under /api.
type PackagingProfileRoutes struct {
	handler *PackagingProfileHandler
}

// NewPackagingProfileRoutes wraps handler.
func NewPackagingProfileRoutes(handler *PackagingProfileHandler) *PackagingProfileRoutes {
	return &PackagingProfileRoutes{handler: handler}
}

// RegisterRoutes mounts the packaging profile endpoints.
func (r *PackagingProfileRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/packaging-profile", r.handler.GetActive)
	rg.PUT("/packaging-profile", r.handler.Update)
	rg.GET("/packaging-profile/history", r.handler.History)
}
