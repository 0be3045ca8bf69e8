package app

import (
	"context"
	"io/fs"
	gohttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	controller "post-manager/internal/controller/http"
	"post-manager/internal/entity"
	"post-manager/internal/imageres"
	"post-manager/internal/repo/persistent"
	"post-manager/internal/usecase"
	"post-manager/pkg/config"
	"post-manager/pkg/logger"
	"post-manager/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "post-manager/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, uploader imageres.Uploader) {
	controller.RegisterValidatorTagNames()

	resolver := imageres.NewResolver(
		uploader,
		cfg.UploadPlaceholderFallback,
		time.Duration(cfg.UploadTimeoutSeconds)*time.Second,
		log,
	)

	// Initialize repositories
	postRepo := persistent.NewPostRepository(db)
	movieRepo := persistent.NewMovieRepository(db)

	// Initialize resource services
	postService := usecase.NewService[*entity.Post](postRepo, resolver, "post", log)
	movieService := usecase.NewService[*entity.Movie](movieRepo, resolver, "movie", log)

	// Initialize HTTP handlers
	postHandler := controller.NewPostHandler(postService, log)
	movieHandler := controller.NewMovieHandler(movieService, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Location"},
		MaxAge:        12 * 3600,
	}))

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"message":   "Post Management API is running",
			"timestamp": time.Now().UTC(),
		})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Embedded web client
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		log.Error("Failed to mount web client: %v", err)
		panic(err)
	}
	r.StaticFS("/app", gohttp.FS(staticFS))

	api := r.Group("/api")
	{
		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/:id", postHandler.GetPost)
		api.POST("/posts", postHandler.CreatePost)
		api.PUT("/posts/:id", postHandler.UpdatePost)
		api.DELETE("/posts/:id", postHandler.DeletePost)

		api.GET("/movies", movieHandler.ListMovies)
		api.GET("/movies/:id", movieHandler.GetMovie)
		api.POST("/movies", movieHandler.CreateMovie)
		api.PUT("/movies/:id", movieHandler.UpdateMovie)
		api.DELETE("/movies/:id", movieHandler.DeleteMovie)
	}

	// Create HTTP server
	srv := &gohttp.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Post management API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != gohttp.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Post management API exited")
}
