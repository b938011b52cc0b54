package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"raccoon/internal/auth"
	"raccoon/internal/handler"
	"raccoon/internal/middleware"
	"raccoon/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	codec *auth.TokenCodec,
	directory auth.PrincipalDirectory,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	postHandler *handler.PostHandler,
	messageHandler *handler.MessageHandler,
	commentHandler *handler.CommentHandler,
	roleHandler *handler.RoleHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// The gate runs on every API request; endpoints decide for themselves
	// whether an anonymous request is acceptable.
	api := e.Group("/api", middleware.Gate(codec, directory))

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/users", userHandler.Register)
	api.GET("/users/confirm-email", userHandler.ConfirmEmail)
	api.GET("/posts", postHandler.ListPosts)
	api.GET("/posts/:id", postHandler.GetPost)
	api.GET("/comments/:id", commentHandler.GetComment)
	api.GET("/comments/item/:itemId", commentHandler.ListForItem)
	api.GET("/comments/user/:username", commentHandler.ListForUser)
	api.GET("/roles", roleHandler.ListRoles)

	// Routes requiring an authenticated identity
	api.GET("/auth/check", authHandler.Check, middleware.RequireAuth)
	api.POST("/posts", postHandler.CreatePost, middleware.RequireAuth)
	api.POST("/messages", messageHandler.SendMessage, middleware.RequireAuth)
	api.GET("/messages/sent", messageHandler.ListSent, middleware.RequireAuth)
	api.GET("/messages/received", messageHandler.ListReceived, middleware.RequireAuth)
	api.GET("/messages/:id", messageHandler.GetMessage, middleware.RequireAuth)
	api.POST("/comments", commentHandler.CreateComment, middleware.RequireAuth)

	// Admin routes
	api.POST("/roles", roleHandler.CreateRole, middleware.RequireRole(model.RoleAdmin))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
