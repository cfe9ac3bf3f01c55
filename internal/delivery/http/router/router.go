// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	BusinessHandler  *handler.BusinessHandler
	CatalogueHandler *handler.CatalogueHandler
	InventoryHandler *handler.InventoryHandler
	SaleHandler      *handler.SaleHandler
	CardHandler      *handler.CardHandler
	KeywordHandler   *handler.KeywordHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session endpoints; registration logs the new account in.
	e.POST("/users", r.params.UserHandler.RegisterUser)
	e.POST("/login", r.params.UserHandler.Login)
	e.POST("/logout", r.params.UserHandler.Logout)

	// Everything below requires a valid session.
	authed := e.Group("", r.params.AuthMiddleware.Authenticate)

	users := authed.Group("/users")
	{
		users.GET("/search", r.params.UserHandler.SearchUsers)
		users.GET("/:id", r.params.UserHandler.GetUser)
		users.DELETE("/:id", r.params.UserHandler.DeleteUser)
		users.PUT("/:id/makeAdmin", r.params.UserHandler.MakeAdmin)
		users.PUT("/:id/revokeAdmin", r.params.UserHandler.RevokeAdmin)
	}

	businesses := authed.Group("/businesses")
	{
		businesses.POST("", r.params.BusinessHandler.CreateBusiness)
		businesses.GET("/:id", r.params.BusinessHandler.GetBusiness)
		businesses.PUT("/:id/makeAdministrator", r.params.BusinessHandler.MakeAdministrator)
		businesses.PUT("/:id/removeAdministrator", r.params.BusinessHandler.RemoveAdministrator)

		businesses.POST("/:id/products", r.params.CatalogueHandler.AddProduct)
		businesses.GET("/:id/products", r.params.CatalogueHandler.GetCatalogue)
		businesses.PUT("/:id/products/:productId", r.params.CatalogueHandler.ModifyProduct)
		businesses.POST("/:id/products/:productId/images", r.params.CatalogueHandler.AddImage)
		businesses.GET("/:id/products/:productId/images/:imageId", r.params.CatalogueHandler.GetImage)
		businesses.PUT("/:id/products/:productId/images/:imageId/makeprimary", r.params.CatalogueHandler.MakePrimary)
		businesses.DELETE("/:id/products/:productId/images/:imageId", r.params.CatalogueHandler.DeleteImage)

		businesses.POST("/:id/inventory", r.params.InventoryHandler.AddItem)
		businesses.GET("/:id/inventory", r.params.InventoryHandler.GetInventory)
		businesses.PUT("/:id/inventory/:inventoryItemId", r.params.InventoryHandler.ModifyItem)

		businesses.POST("/:id/listings", r.params.SaleHandler.CreateListing)
		businesses.GET("/:id/listings", r.params.SaleHandler.GetListings)
	}

	cards := authed.Group("/cards")
	{
		cards.POST("", r.params.CardHandler.CreateCard)
		cards.GET("", r.params.CardHandler.GetCards)
		cards.GET("/:id", r.params.CardHandler.GetCard)
		cards.DELETE("/:id", r.params.CardHandler.DeleteCard)
		cards.PUT("/:id/extenddisplayperiod", r.params.CardHandler.ExtendDisplayPeriod)
	}

	keywords := authed.Group("/keywords")
	{
		keywords.POST("", r.params.KeywordHandler.CreateKeyword)
		keywords.GET("/search", r.params.KeywordHandler.SearchKeywords)
		keywords.DELETE("/:id", r.params.KeywordHandler.DeleteKeyword)
	}
}
