package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"blog-service/configs"
	"blog-service/database"
	_ "blog-service/docs"
	"blog-service/internal/handlers"
	"blog-service/internal/repository"
	"blog-service/internal/routes"
	"blog-service/services"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("no .env file found, using system environment variables")
	}
}

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client, err := database.Connect(cfg.Mongo.URI)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()
	db := client.Database(cfg.Mongo.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	// --- Stores ---
	seq := repository.NewSequenceRepository(db)
	blogRepo := repository.NewBlogRepository(db, seq)
	commentRepo := repository.NewCommentRepository(db, seq)
	likeRepo := repository.NewLikeRepository(db)

	// --- Collaborators ---
	var auth services.IdentityResolver
	if cfg.Auth.Mode == configs.AuthModeLocal {
		auth = services.NewLocalAuthService(cfg.Auth.JWTSecret)
	} else {
		auth = services.NewAuthService(cfg.Auth.StakeholdersURL, cfg.ClientTimeout)
	}
	followers := services.NewFollowerService(cfg.Follow.FollowerURL, cfg.ClientTimeout)

	// --- Services ---
	blogService := services.NewBlogService(blogRepo, auth, followers)
	commentService := services.NewCommentService(commentRepo, blogRepo, auth, followers, cfg.Follow.AuthorExempt)
	likeService := services.NewLikeService(likeRepo, blogRepo, auth, followers, cfg.Follow.AuthorExempt)

	// --- Fiber App ---
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		Blogs:    handlers.NewBlogHandler(blogService),
		Comments: handlers.NewCommentHandler(commentService),
		Likes:    handlers.NewLikeHandler(likeService),
	})

	app.Use(handlers.NotFoundHandler)

	log.Printf("blog service listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
