// Package router wires the HTTP routes of the marketplace API.
package router

import (
	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/router/handler"
	"market/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CheckoutHandler *handler.CheckoutHandler
	GrowerHandler   *handler.GrowerHandler
	AdminHandler    *handler.AdminHandler
	DeliveryHandler *handler.DeliveryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	checkoutHandler *handler.CheckoutHandler
	growerHandler   *handler.GrowerHandler
	adminHandler    *handler.AdminHandler
	deliveryHandler *handler.DeliveryHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		checkoutHandler: params.CheckoutHandler,
		growerHandler:   params.GrowerHandler,
		adminHandler:    params.AdminHandler,
		deliveryHandler: params.DeliveryHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/auth/:role/login", r.authHandler.Login)

	apiV1 := e.Group("/api/v1")

	// Storefront: open to guests, customers are recognised by their token
	apiV1.GET("/store/products", r.checkoutHandler.ListStoreProducts)
	apiV1.GET("/store/products/:id/stock", r.checkoutHandler.GetProductGlobalStock)
	checkoutGroup := apiV1.Group("/checkout")
	{
		checkoutGroup.POST("", r.checkoutHandler.Checkout, r.authMiddleware.OptionalAuthenticate)
		checkoutGroup.GET("/sessions/:id", r.checkoutHandler.GetCheckoutSession)
		// Signed by the payment provider, not by a user token
		checkoutGroup.POST("/webhook", r.checkoutHandler.PaymentWebhook)
	}

	growerGroup := apiV1.Group("/grower")
	growerGroup.Use(r.authMiddleware.Authenticate)
	growerGroup.Use(r.authMiddleware.RequireRole(entity.RoleGrower))
	{
		growerGroup.GET("/products", r.growerHandler.ListGrowerProducts)
		growerGroup.POST("/products", r.growerHandler.AddGrowerProduct)
		growerGroup.DELETE("/products/:productId", r.growerHandler.RemoveGrowerProduct)
		growerGroup.PUT("/products/:productId/stock", r.growerHandler.UpdateGrowerProductStock)
		growerGroup.GET("/products/:productId/stock", r.growerHandler.GetGrowerStockPageData)
		growerGroup.PUT("/variants/prices", r.growerHandler.UpdateMultipleVariantPrices)
		growerGroup.GET("/variants/:variantId/pending", r.growerHandler.GetPendingUpdateForVariant)
		growerGroup.GET("/stock-updates", r.growerHandler.ListStockUpdateRequests)
		growerGroup.POST("/stock-updates", r.growerHandler.CreateStockUpdateRequest)
		growerGroup.DELETE("/stock-updates/:id", r.growerHandler.CancelStockUpdateRequest)
	}

	deliveryGroup := apiV1.Group("/delivery")
	deliveryGroup.Use(r.authMiddleware.Authenticate)
	deliveryGroup.Use(r.authMiddleware.RequireRole(entity.RoleDeliverer))
	{
		deliveryGroup.GET("/baskets", r.deliveryHandler.ListDeliveries)
		deliveryGroup.POST("/baskets/:id/slip", r.deliveryHandler.GenerateSlip)
		deliveryGroup.POST("/confirm", r.deliveryHandler.ConfirmDelivery)
	}

	adminGroup := e.Group("/api/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/allocate-credit", r.adminHandler.AllocateCredit)
		adminGroup.GET("/customers/:id/wallet", r.adminHandler.GetCustomerWallet)
		adminGroup.GET("/stock-updates", r.adminHandler.ListStockUpdateRequests)
		adminGroup.POST("/stock-updates/:id/approve", r.adminHandler.ApproveStockUpdate)
		adminGroup.POST("/stock-updates/:id/reject", r.adminHandler.RejectStockUpdate)
		adminGroup.GET("/baskets", r.adminHandler.ListBaskets)
		adminGroup.PUT("/baskets/:id/delivery-date", r.adminHandler.SetDeliveryDate)
		adminGroup.PUT("/baskets/items/:itemId/refund", r.adminHandler.UpdateBasketItemRefundStatus)
	}
}
