package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/MrShtrahman/mongo-M220-project/config"
	"github.com/MrShtrahman/mongo-M220-project/controllers"
	"github.com/MrShtrahman/mongo-M220-project/data_access"
	"github.com/MrShtrahman/mongo-M220-project/helper"
	"github.com/MrShtrahman/mongo-M220-project/middleware"
	"github.com/MrShtrahman/mongo-M220-project/services"
)

func main() {
	seedFile := flag.String("seed", "", "CSV file of movies to import, then exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer mongodb.Close(context.Background())

	if *seedFile != "" {
		seedMovies(mongodb, *seedFile)
		return
	}

	// Repositories
	userRepo := data_access.NewUserRepository(mongodb)
	movieRepo := data_access.NewMovieRepository(mongodb)
	commentRepo := data_access.NewCommentRepository(mongodb)

	// Services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	movieService := services.NewMovieService(movieRepo)
	commentService := services.NewCommentService(commentRepo, movieRepo)

	// Controllers
	userController := controllers.NewUserController(authService)
	movieController := controllers.NewMovieController(movieService)
	commentController := controllers.NewCommentController(commentService, authService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.SecurityHeaders())

	r.GET("/api/health", func(c *gin.Context) {
		poolSize, writeTimeout := mongodb.PoolConfig()
		c.JSON(http.StatusOK, gin.H{
			"status":        "healthy",
			"pool_size":     poolSize,
			"write_timeout": writeTimeout.String(),
		})
	})

	api := r.Group("/api/v1")
	{
		movies := api.Group("/movies")
		{
			movies.GET("", movieController.GetMovies)
			movies.GET("/search", movieController.SearchMovies)
			movies.GET("/countries", movieController.GetMoviesByCountry)
			movies.GET("/facet-search", movieController.FacetedSearch)
			movies.GET("/id/:id", movieController.GetMovieByID)

			comment := movies.Group("/comment")
			comment.Use(middleware.Auth(authService))
			{
				comment.POST("", commentController.AddComment)
				comment.PUT("", commentController.UpdateComment)
				comment.DELETE("", commentController.DeleteComment)
			}
		}

		user := api.Group("/user")
		{
			user.POST("/register", userController.Register)
			user.POST("/login", userController.Login)

			protected := user.Group("")
			protected.Use(middleware.Auth(authService))
			{
				protected.POST("/logout", userController.Logout)
				protected.DELETE("/delete", userController.Delete)
				protected.PUT("/update-preferences", userController.UpdatePreferences)
				protected.GET("/comment-report", commentController.CommentReport)
			}

			if cfg.EnableInternalRoutes {
				user.POST("/make-admin", userController.MakeAdmin)
			}
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func seedMovies(mongodb *data_access.MongoDB, path string) {
	movies, err := helper.LoadMoviesFromCSV(path)
	if err != nil {
		log.Fatal("Failed to read seed file: ", err)
	}

	docs := make([]interface{}, len(movies))
	for i, movie := range movies {
		docs[i] = movie
	}

	result, err := mongodb.Collection("movies").InsertMany(context.Background(), docs)
	if err != nil {
		log.Fatal("Failed to import movies: ", err)
	}
	log.Printf("Imported %d movies from %s", len(result.InsertedIDs), path)
}
