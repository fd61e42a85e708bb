package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/stowr/backend/api/handler"
)

type Handlers struct {
	Asset    *apiHandler.AssetHandler
	Location *apiHandler.LocationHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers, accessLog func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Asset routes
	r.POST("/api/v1/assets", accessLog(handlers.Asset.CreateAsset))
	r.GET("/api/v1/assets/{id}", accessLog(handlers.Asset.GetAsset))
	r.POST("/api/v1/assets/{id}/rename", accessLog(handlers.Asset.RenameAsset))
	r.POST("/api/v1/assets/{id}/relocate", accessLog(handlers.Asset.RelocateAsset))

	// Location routes
	r.POST("/api/v1/locations", accessLog(handlers.Location.CreateLocation))
	r.GET("/api/v1/locations/{id}", accessLog(handlers.Location.GetLocation))
	r.POST("/api/v1/locations/{id}/rename", accessLog(handlers.Location.RenameLocation))

	return r
}
