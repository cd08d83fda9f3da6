package main

import (
	"database/sql"
	"log"

	"github.com/dave9314/online-market/internal/config"
	"github.com/dave9314/online-market/internal/handlers"
	"github.com/dave9314/online-market/internal/repositories"
	"github.com/dave9314/online-market/internal/services"
	"github.com/dave9314/online-market/utils"
)

type application struct {
	cfg             config.Config
	errorLog        *log.Logger
	infoLog         *log.Logger
	db              *sql.DB
	userRepo        *repositories.UserRepository
	userHandler     *handlers.UserHandler
	itemHandler     *handlers.ItemHandler
	categoryHandler *handlers.CategoryHandler
	ratingHandler   *handlers.RatingHandler
	adminHandler    *handlers.AdminHandler
	uploadHandler   *handlers.UploadHandler
	categoryService *services.CategoryService
	userService     *services.UserService
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := &repositories.UserRepository{DB: db}
	categoryRepo := &repositories.CategoryRepository{DB: db}
	itemRepo := &repositories.ItemRepository{DB: db}
	ratingRepo := &repositories.RatingRepository{DB: db}
	statsRepo := &repositories.StatsRepository{DB: db}

	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Printf("token manager unavailable, falling back to UUID refresh tokens: %v", err)
		tokenManager = nil
	}

	storage := &utils.Storage{
		Bucket:    cfg.S3.Bucket,
		Region:    cfg.S3.Region,
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		PublicURL: cfg.S3.PublicURL,
	}

	// Services
	userService := &services.UserService{UserRepo: userRepo, TokenManager: tokenManager, SigningKey: cfg.Auth.SigningKey}
	categoryService := &services.CategoryService{CategoryRepo: categoryRepo}
	itemService := &services.ItemService{ItemRepo: itemRepo, CategoryRepo: categoryRepo, RatingRepo: ratingRepo}
	ratingService := &services.RatingService{RatingRepo: ratingRepo, ItemRepo: itemRepo}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	itemHandler := &handlers.ItemHandler{Service: itemService}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService, ItemService: itemService}
	ratingHandler := &handlers.RatingHandler{Service: ratingService}
	adminHandler := &handlers.AdminHandler{UserService: userService, ItemService: itemService, StatsRepo: statsRepo}
	uploadHandler := &handlers.UploadHandler{Storage: storage}

	return &application{
		cfg:             cfg,
		errorLog:        errorLog,
		infoLog:         infoLog,
		db:              db,
		userRepo:        userRepo,
		userHandler:     userHandler,
		itemHandler:     itemHandler,
		categoryHandler: categoryHandler,
		ratingHandler:   ratingHandler,
		adminHandler:    adminHandler,
		uploadHandler:   uploadHandler,
		categoryService: categoryService,
		userService:     userService,
	}
}
