package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"nagaBack/internal/config"
	"nagaBack/internal/handlers"
	"nagaBack/internal/repositories"
	"nagaBack/internal/services"
)

type application struct {
	errorLog       *log.Logger
	infoLog        *log.Logger
	db             *sql.DB
	listingRepo    *repositories.ListingRepository
	searchHandler  *handlers.SearchHandler
	listingHandler *handlers.ListingHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, ranker services.Ranker, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	listingRepo := repositories.ListingRepository{DB: db}

	// Services
	searchService := &services.SearchService{
		ListingRepo: &listingRepo,
		Ranker:      ranker,
	}

	var searcher services.Searcher = searchService
	if rdb != nil {
		searcher = &services.CachedSearch{
			Next: searchService,
			RDB:  rdb,
			TTL:  time.Duration(cfg.Redis.CacheTTLHours) * time.Hour,
		}
	}

	// Handlers
	searchHandler := &handlers.SearchHandler{Service: searcher, ErrorLog: errorLog}
	listingHandler := &handlers.ListingHandler{Repo: &listingRepo, ErrorLog: errorLog}

	return &application{
		errorLog:       errorLog,
		infoLog:        infoLog,
		db:             db,
		listingRepo:    &listingRepo,
		searchHandler:  searchHandler,
		listingHandler: listingHandler,
	}
}
