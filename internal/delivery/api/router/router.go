// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"notekeeper/internal/delivery/api/middleware"
	"notekeeper/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	NoteHandler    *handler.NoteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	noteHandler    *handler.NoteHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		noteHandler:    params.NoteHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Account routes are public; they are the only producers of tokens.
	userGroup := api.Group("/user")
	{
		userGroup.POST("/signup", r.accountHandler.Signup)
		userGroup.POST("/signin", r.accountHandler.Signin)
	}

	// Note routes require authentication
	notesGroup := api.Group("/notes")
	notesGroup.Use(r.authMiddleware.Authenticate)
	{
		notesGroup.GET("/list", r.noteHandler.ListNotes)
		notesGroup.POST("/create", r.noteHandler.CreateNote)
		notesGroup.GET("/:noteId", r.noteHandler.GetNote)
		notesGroup.PUT("/:noteId", r.noteHandler.UpdateNote)
		notesGroup.DELETE("/:noteId", r.noteHandler.DeleteNote)
	}
}
