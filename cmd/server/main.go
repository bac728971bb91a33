package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/opusarchive/opus/internal/config"
	"github.com/opusarchive/opus/internal/repository/jsonstore"
	"github.com/opusarchive/opus/internal/service"
	"github.com/opusarchive/opus/internal/storage"
	"github.com/opusarchive/opus/internal/transport/http/handlers"
	"github.com/opusarchive/opus/internal/transport/http/middleware"
	"github.com/opusarchive/opus/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	// Storage
	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Using data dir %s", cfg.DataDir)

	// Repositories
	userRepo := jsonstore.NewUserRepo(store)
	performanceRepo := jsonstore.NewPerformanceRepo(store)
	commentRepo := jsonstore.NewCommentRepo(store)
	likeRepo := jsonstore.NewLikeRepo(store)
	categoryRepo := jsonstore.NewCategoryRepo(store)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	performanceService := service.NewPerformanceService(performanceRepo, commentRepo, likeRepo)
	commentService := service.NewCommentService(commentRepo)
	likeService := service.NewLikeService(likeRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	searchService := service.NewSearchService(performanceRepo)

	// WebSocket hub + live archive feed
	hub := ws.NewHub()
	go hub.Run()
	notifier := ws.NewHubNotifier(hub)
	performanceService.SetNotifier(notifier)
	commentService.SetNotifier(notifier)
	likeService.SetNotifier(notifier)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	performanceHandler := handlers.NewPerformanceHandler(performanceService, searchService)
	commentHandler := handlers.NewCommentHandler(commentService)
	likeHandler := handlers.NewLikeHandler(likeService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)

	// Protected - Performances
	mux.Handle("POST /api/v1/performances", auth(http.HandlerFunc(performanceHandler.Create)))
	mux.Handle("GET /api/v1/performances", auth(http.HandlerFunc(performanceHandler.ListMine)))
	mux.Handle("GET /api/v1/performances/search", auth(http.HandlerFunc(performanceHandler.Search)))
	mux.Handle("PATCH /api/v1/performances/{id}", auth(http.HandlerFunc(performanceHandler.Update)))
	mux.Handle("DELETE /api/v1/performances/{id}", auth(http.HandlerFunc(performanceHandler.Delete)))
	mux.Handle("GET /api/v1/archive", auth(http.HandlerFunc(performanceHandler.ListPublic)))

	// Protected - Comments
	mux.Handle("POST /api/v1/performances/{id}/comments", auth(http.HandlerFunc(commentHandler.Add)))
	mux.Handle("GET /api/v1/performances/{id}/comments", auth(http.HandlerFunc(commentHandler.List)))
	mux.Handle("DELETE /api/v1/comments/{id}", auth(http.HandlerFunc(commentHandler.Delete)))

	// Protected - Likes
	mux.Handle("POST /api/v1/performances/{id}/like", auth(http.HandlerFunc(likeHandler.Toggle)))
	mux.Handle("GET /api/v1/performances/{id}/likes", auth(http.HandlerFunc(likeHandler.Status)))

	// Protected - Categories
	mux.Handle("GET /api/v1/categories/{kind}", auth(http.HandlerFunc(categoryHandler.List)))
	mux.Handle("POST /api/v1/categories/{kind}", auth(http.HandlerFunc(categoryHandler.Add)))
	mux.Handle("DELETE /api/v1/categories/{kind}", auth(http.HandlerFunc(categoryHandler.Remove)))

	// Live archive feed
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}
