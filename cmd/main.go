package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/rohithredddy/plagiarism-Check-Demo/internal/config"
	"github.com/rohithredddy/plagiarism-Check-Demo/internal/handlers"
	"github.com/rohithredddy/plagiarism-Check-Demo/internal/storage"
)

func main() {
	cfg := config.Load()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal("Storage init error: ", err)
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}
	handlers.Store = store

	router := mux.NewRouter()
	router.HandleFunc("/evaluate", handlers.EvaluateHandler).Methods("POST")
	router.HandleFunc("/questions", handlers.QuestionsHandler).Methods("GET")
	router.HandleFunc("/submissions", handlers.SubmissionsHandler).Methods("GET")
	router.HandleFunc("/health", handlers.HealthHandler).Methods("GET")

	cors := ghandlers.CORS(
		ghandlers.AllowedOrigins([]string{"*"}),
		ghandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		ghandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: cors(router),
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("\nShutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatal("Shutdown error:", err)
		}
		log.Println("Server gracefully stopped")
	}()

	log.Println("Answer Evaluation Service started on :" + cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Server error:", err)
	}
}

func openStore(cfg config.Config) (storage.Store, error) {
	switch cfg.StoreBackend {
	case "postgres":
		return storage.NewPostgresStore(cfg.ConnectionString())
	default:
		return storage.NewFileStore(cfg.SubmissionsFile), nil
	}
}
