// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agora/internal/delivery/http/middleware"
	"agora/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	PostHandler         *handler.PostHandler
	CategoryHandler     *handler.CategoryHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	postHandler         *handler.PostHandler
	categoryHandler     *handler.CategoryHandler
	subscriptionHandler *handler.SubscriptionHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		postHandler:         params.PostHandler,
		categoryHandler:     params.CategoryHandler,
		subscriptionHandler: params.SubscriptionHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/oauth/login", r.authHandler.LoginWithProvider)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Public read access to the feed and the category list.
	e.GET("/posts", r.postHandler.ListPosts)
	e.GET("/posts/:id", r.postHandler.GetPost)
	e.GET("/categories", r.categoryHandler.ListCategories)

	// Post mutations require authentication.
	postGroup := e.Group("/posts")
	postGroup.Use(r.authMiddleware.Authenticate)
	{
		postGroup.POST("", r.postHandler.CreatePost)
		postGroup.GET("/mine", r.postHandler.MyPosts)
		postGroup.PATCH("/:id", r.postHandler.UpdatePost)
		postGroup.DELETE("/:id", r.postHandler.SoftDeletePost)
		postGroup.POST("/:id/restore", r.postHandler.RestorePost)
		postGroup.DELETE("/:id/permanent", r.postHandler.HardDeletePost)
	}

	// Category management and reports.
	categoryGroup := e.Group("/categories")
	categoryGroup.Use(r.authMiddleware.Authenticate)
	{
		categoryGroup.POST("", r.categoryHandler.CreateCategory)
		categoryGroup.DELETE("/:id", r.categoryHandler.DeleteCategory)
		categoryGroup.GET("/reports/subscribers", r.categoryHandler.SubscriberReport)
		categoryGroup.GET("/reports/posts", r.categoryHandler.PostReport)
		categoryGroup.GET("/summary", r.categoryHandler.MySummary)
	}

	// Subscription management.
	subscriptionGroup := e.Group("/subscriptions")
	subscriptionGroup.Use(r.authMiddleware.Authenticate)
	{
		subscriptionGroup.POST("/qr", r.subscriptionHandler.ProcessQRSubscription)
		subscriptionGroup.POST("/:categoryId", r.subscriptionHandler.Subscribe)
		subscriptionGroup.DELETE("/:categoryId", r.subscriptionHandler.Unsubscribe)
		subscriptionGroup.GET("/:categoryId/qr", r.subscriptionHandler.GenerateSubscriptionQR)
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/me/subscriptions", r.userHandler.MySubscriptions)
		userGroup.PATCH("/me", r.userHandler.UpdateMe)
		userGroup.DELETE("/me", r.userHandler.DeleteMe)
		userGroup.GET("/:id", r.userHandler.GetUser)
	}
}
