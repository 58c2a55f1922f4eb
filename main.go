package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"surgeonsite/config"
	api "surgeonsite/handlers"
	"surgeonsite/middleware"
	"surgeonsite/store"
)

func main() {
	godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg := config.Load()

	var st store.Store = store.NotConfigured{}
	client, database := config.InitializeMongoDatabase(cfg)
	if client != nil {
		defer client.Disconnect(context.Background())
		st = store.NewMongoStore(database)
		log.Info().Str("database", cfg.DatabaseName).Msg("document store connected")
	} else {
		log.Warn().Msg("DATABASE_URL not set, running in degraded mode")
	}

	h := api.New(st)

	r := mux.NewRouter()
	r.Use(middleware.Logging)
	r.HandleFunc("/", h.Root).Methods("GET")
	r.HandleFunc("/api/surgeries", h.ListSurgeries).Methods("GET")
	r.HandleFunc("/api/testimonials", h.ListTestimonials).Methods("GET")
	r.HandleFunc("/api/testimonials", h.CreateTestimonial).Methods("POST")
	r.HandleFunc("/api/before-after", h.ListBeforeAfter).Methods("GET")
	r.HandleFunc("/api/bmi", h.CalculateBMI).Methods("POST")
	r.HandleFunc("/api/contact", h.SubmitContact).Methods("POST")
	r.HandleFunc("/api/doctor", h.GetDoctor).Methods("GET")
	r.HandleFunc("/test", h.TestDatabase).Methods("GET")

	// Open CORS policy: the site is a public marketing page.
	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(r)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Msg("server listening")
	log.Fatal().Err(http.ListenAndServe(addr, corsHandler)).Msg("server stopped")
}
