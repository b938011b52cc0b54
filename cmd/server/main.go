package main

import (
	"context"
	"log"
	"net/http"

	"raccoon/docs"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"raccoon/internal/auth"
	"raccoon/internal/cache"
	"raccoon/internal/config"
	"raccoon/internal/content"
	"raccoon/internal/db"
	"raccoon/internal/email"
	"raccoon/internal/handler"
	"raccoon/internal/imgur"
	"raccoon/internal/model"
	"raccoon/internal/repository"
	"raccoon/internal/router"
	"raccoon/internal/service"
)

// @title Raccoon Content API
// @version 1.0
// @description Content sharing API with posts, direct messages, cross-item comments and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Post{},
		&model.Message{},
		&model.Comment{},
		&model.CommentRef{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Initialize auth components
	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.JWTTTL)
	directory := auth.NewPrincipalDirectory(userRepo)

	// Initialize external clients
	mailer := email.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom, cfg.ConfirmBaseURL)
	imgurClient := imgur.NewClient(cfg.ImgurBaseURL, cfg.ImgurClientID)

	// Initialize services
	resolver := content.NewResolver(postRepo, messageRepo, commentRepo)
	authService := service.NewAuthService(directory, codec)
	userService := service.NewUserService(userRepo, roleRepo, mailer)
	postService := service.NewPostService(postRepo, commentRepo, imgurClient, cacheClient)
	messageService := service.NewMessageService(messageRepo, userRepo, commentRepo)
	commentService := service.NewCommentService(commentRepo, resolver)
	roleService := service.NewRoleService(roleRepo)

	// Ensure default roles exist before accepting registrations
	if err := roleService.EnsureDefaultRoles(context.Background()); err != nil {
		log.Fatalf("ensure default roles: %v", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	messageHandler := handler.NewMessageHandler(messageService)
	commentHandler := handler.NewCommentHandler(commentService)
	roleHandler := handler.NewRoleHandler(roleService)

	// Register routes
	router.Register(
		e,
		codec,
		directory,
		authHandler,
		userHandler,
		postHandler,
		messageHandler,
		commentHandler,
		roleHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
