package main

import (
	"log"
	"time"

	"vocab-service/internal/config"
	"vocab-service/internal/db"
	"vocab-service/internal/dictionary"
	"vocab-service/internal/event"
	"vocab-service/internal/handlers"
	"vocab-service/internal/middleware"
	"vocab-service/internal/quiz"
	"vocab-service/internal/repository"
	"vocab-service/internal/service"
	"vocab-service/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.New()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoURI)
	defer db.Disconnect()

	// RabbitMQ event publisher
	var publisher *event.Publisher
	if cfg.RabbitMQURI != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitMQURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// Session store: in-memory by default, redis when configured
	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
	var sessionStore session.Store
	if cfg.SessionBackend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		sessionStore = session.NewRedisStore(client, ttl)
		log.Printf("Session store: redis at %s", cfg.RedisAddr)
	} else {
		sessionStore = session.NewMemoryStore(ttl)
		log.Println("Session store: in-memory")
	}

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Sessions(sessionStore, cfg.SecureCookies))

	// Repositories, services, handlers
	database := db.Client.Database(cfg.MongoDB)

	userRepo := repository.NewUserRepository(database)
	authService := service.NewAuthService(userRepo, cfg.BcryptCost)
	authHandler := handlers.NewAuthHandler(authService, sessionStore)

	historyRepo := repository.NewHistoryRepository(database)
	dictClient := dictionary.NewClient(cfg.DictionaryURL)
	dictService := service.NewDictionaryService(dictClient, historyRepo)
	dictHandler := handlers.NewDictionaryHandler(dictService)

	quizEngine := quiz.NewEngine(quiz.Catalog)
	quizHandler := handlers.NewQuizHandler(quizEngine, sessionStore)

	setupRoutes(r, authHandler, dictHandler, quizHandler, publisher)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Run(":" + cfg.Port)
}

func setupRoutes(r *gin.Engine, authHandler *handlers.AuthHandler, dictHandler *handlers.DictionaryHandler, quizHandler *handlers.QuizHandler, publisher *event.Publisher) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(302, "/login")
	})

	r.GET("/login", authHandler.ShowLogin)
	r.GET("/signup", authHandler.ShowSignup)

	r.POST("/signup", func(c *gin.Context) {
		authHandler.Signup(c)
		if publisher != nil {
			publisher.Publish("user.registered", gin.H{
				"email":     c.PostForm("email"),
				"timestamp": time.Now(),
			})
		}
	})

	r.POST("/login", func(c *gin.Context) {
		authHandler.Login(c)
		if publisher != nil {
			publisher.Publish("user.login", gin.H{
				"email":     c.PostForm("email"),
				"timestamp": time.Now(),
			})
		}
	})

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth())
	{
		protected.GET("/dashboard", dictHandler.Dashboard)

		protected.GET("/search-history", dictHandler.SearchHistory)

		protected.GET("/urban-dictionary", func(c *gin.Context) {
			dictHandler.Lookup(c)
			if publisher != nil {
				publisher.Publish("word.lookup", gin.H{
					"word":      c.Query("word"),
					"timestamp": time.Now(),
				})
			}
		})

		protected.GET("/quiz", func(c *gin.Context) {
			quizHandler.Show(c)
			if publisher != nil {
				publisher.Publish("quiz.started", gin.H{
					"timestamp": time.Now(),
				})
			}
		})

		protected.POST("/quiz", func(c *gin.Context) {
			quizHandler.Submit(c)
			if publisher != nil {
				publisher.Publish("quiz.submitted", gin.H{
					"timestamp": time.Now(),
				})
			}
		})
	}
}
