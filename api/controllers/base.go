package controllers

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"Postboard/api/cache"
	"Postboard/api/middlewares"
	"Postboard/api/models"
	"Postboard/api/pagination"
	"Postboard/api/repository"
	"Postboard/api/service"
	"Postboard/api/templates"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	DB     *gorm.DB
	Router *gin.Engine
	Cache  cache.Store

	tmpl *template.Template

	users    repository.UserRepository
	groups   repository.GroupRepository
	posts    repository.PostRepository
	comments repository.CommentRepository

	feeds   service.FeedService
	follows service.FollowService

	indexTTL time.Duration
}

// ===============================
// SERVER INITIALIZATION
// ===============================
func (server *Server) Initialize(DbUser, DbPassword, DbPort, DbHost, DbName string) {
	var dsn string

	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		dsn = os.Getenv("DATABASE_URL")
		if dsn != "" && !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
	} else {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			DbHost, DbUser, DbPassword, DbName, DbPort,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Cannot connect to Postgres: %v", err)
	}

	// Redis init (safe failure: a missing cache only disables index caching)
	var store cache.Store
	if redisStore, err := cache.InitFromEnv(); err != nil {
		log.Printf("warning: could not connect to redis: %v", err)
	} else {
		store = redisStore
	}

	if err := server.Bootstrap(db, store, middlewares.RateLimitMiddleware()); err != nil {
		log.Fatalf("Error bootstrapping server: %v", err)
	}
}

// Bootstrap wires migrations, repositories, services, templates and routes on
// an already-open database handle. Tests call it directly with sqlite and a
// miniredis-backed store.
func (server *Server) Bootstrap(db *gorm.DB, store cache.Store, middleware ...gin.HandlerFunc) error {
	server.DB = db
	server.Cache = store

	if err := server.DB.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
		&models.ResetPassword{},
	); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}
	if err := ensureFollowConstraints(server.DB); err != nil {
		log.Printf("warning: follow constraints not ensured: %v", err)
	}

	pagination.ConfigureFromEnv()
	server.indexTTL = indexTTLFromEnv()

	server.users = repository.NewUserRepository(db)
	server.groups = repository.NewGroupRepository(db)
	server.posts = repository.NewPostRepository(db)
	server.comments = repository.NewCommentRepository(db)

	followRepo := repository.NewFollowRepository(db)
	server.feeds = service.NewFeedService(server.posts, server.groups, server.users, followRepo)
	server.follows = service.NewFollowService(followRepo)

	server.tmpl = templates.New()

	server.Router = gin.Default()
	server.Router.Use(middleware...)
	server.initializeRoutes()
	return nil
}

func (server *Server) Run(addr string) {
	log.Fatal(server.Router.Run(addr))
}

// ensureFollowConstraints adds the self-follow CHECK the gorm tags cannot
// express. Postgres only; sqlite in tests relies on the unique index alone.
func ensureFollowConstraints(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	var count int64
	if err := db.Raw(
		"SELECT COUNT(1) FROM pg_constraint WHERE conname = ?",
		"follows_no_self_follow",
	).Scan(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Exec(
			"ALTER TABLE follows ADD CONSTRAINT follows_no_self_follow CHECK (follower_id <> followed_id)",
		).Error; err != nil {
			return err
		}
	}
	return nil
}

func indexTTLFromEnv() time.Duration {
	raw := os.Getenv("INDEX_CACHE_TTL")
	if raw == "" {
		return 20 * time.Second
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 1 {
		return 20 * time.Second
	}
	return time.Duration(seconds) * time.Second
}
