package main

import (
	"net/http"
	"os"

	"headless-cms/config"
	"headless-cms/handlers"
	"headless-cms/helper"
	"headless-cms/i18n"
	"headless-cms/middleware"
	"headless-cms/repositories"
	"headless-cms/services"
	"headless-cms/storage/s3"
	"headless-cms/validators"

	"github.com/gin-gonic/gin"
	localeEN "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/go-playground/validator.v9"
	translationsEN "gopkg.in/go-playground/validator.v9/translations/en"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	config.InitJWT(cfg.JWTSecret)

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}

	// Field validators speak the configured locale.
	locale := i18n.ParseLocale(cfg.Locale)
	validate := validators.New(locale)

	httpHelper, err := newHTTPHelper()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up request validation")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)
	postRepo := repositories.NewPostRepository(db)
	pageRepo := repositories.NewPageRepository(db)
	siteRepo := repositories.NewSiteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, validate, logger)
	postService := services.NewPostService(postRepo, categoryRepo, validate)
	categoryService := services.NewCategoryService(categoryRepo, validate)
	pageService := services.NewPageService(pageRepo, validate)
	siteService := services.NewSiteService(siteRepo, postRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	postHandler := handlers.NewPostHandler(postService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, httpHelper)
	pageHandler := handlers.NewPageHandler(pageService, httpHelper)
	siteHandler := handlers.NewSiteHandler(siteService, httpHelper)

	// Media needs an object store. Without a bucket the rest of the API still
	// works, media routes are just not mounted.
	var mediaHandler *handlers.MediaHandler
	if cfg.S3Bucket != "" {
		backend, err := s3.New(s3.Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Endpoint:        cfg.S3Endpoint,
			UsePathStyle:    cfg.S3UsePathStyle,
			ACL:             cfg.S3ACL,
			KeyPrefix:       cfg.S3KeyPrefix,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize S3 backend")
		}
		mediaService := services.NewMediaService(mediaRepo, backend, validate)
		mediaHandler = handlers.NewMediaHandler(mediaService, httpHelper)
	} else {
		logger.Warn().Msg("S3_BUCKET not configured, media uploads disabled")
	}

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Posts
			posts := protected.Group("/posts")
			{
				posts.POST("", postHandler.CreatePost)
				posts.GET("", postHandler.GetPosts)
				posts.GET("/:id", postHandler.GetPost)
				posts.PUT("/:id", postHandler.UpdatePost)
				posts.DELETE("/:id", postHandler.DeletePost)
			}

			// Categories
			categories := protected.Group("/categories")
			{
				categories.POST("", categoryHandler.CreateCategory)
				categories.GET("", categoryHandler.GetCategories)
				categories.GET("/:id", categoryHandler.GetCategory)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
			}

			// Pages
			pages := protected.Group("/pages")
			{
				pages.POST("", pageHandler.CreatePage)
				pages.GET("", pageHandler.GetPages)
				pages.GET("/:id", pageHandler.GetPage)
				pages.PUT("/:id", pageHandler.UpdatePage)
				pages.DELETE("/:id", pageHandler.DeletePage)
			}

			// Media
			if mediaHandler != nil {
				media := protected.Group("/media")
				{
					media.POST("", mediaHandler.Upload)
					media.GET("", mediaHandler.ListMedia)
					media.GET("/:id", mediaHandler.GetMedia)
					media.PUT("/:id", mediaHandler.UpdateAlt)
					media.DELETE("/:id", mediaHandler.DeleteMedia)
				}
			}

			// Site settings
			protected.PUT("/site", siteHandler.UpdateSettings)
		}

		// Public routes (published content only)
		public := v1.Group("/public")
		{
			public.GET("/posts", postHandler.GetPublicPosts)
			public.GET("/posts/:slug", postHandler.GetPublicPost)
			public.GET("/categories", categoryHandler.GetCategories)
			public.GET("/pages/:slug", pageHandler.GetPublicPage)
			public.GET("/site", siteHandler.GetSettings)
		}
	}

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// newHTTPHelper wires the request struct validator and its English
// translations into the shared response helper.
func newHTTPHelper() (*helper.HTTPHelper, error) {
	en := localeEN.New()
	uni := ut.New(en, en)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := translationsEN.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}

	return &helper.HTTPHelper{Validate: validate, Translator: translator}, nil
}
