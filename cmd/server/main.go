package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"carrental/internal/api"
	"carrental/internal/auth"
	"carrental/internal/db"
	"carrental/internal/logger"
	"carrental/internal/repository"
	"carrental/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()

	if err := logger.Init(os.Getenv("DEBUG") == "true"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	var (
		catalog repository.VehicleCatalog
		store   repository.ReservationStore
	)
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		sqlDB, err := sql.Open("postgres", dbURL)
		if err != nil {
			logger.Log.Fatalf("Failed to open DB: %v", err)
		}
		if err := sqlDB.Ping(); err != nil {
			logger.Log.Fatalf("Failed to connect to DB: %v", err)
		}
		if err := db.EnsureSchema(sqlDB); err != nil {
			logger.Log.Fatalf("Failed to ensure schema: %v", err)
		}
		catalog = repository.NewPostgresVehicleCatalog(sqlDB)
		store = repository.NewPostgresReservationStore(sqlDB)
		logger.Log.Infow("Using postgres-backed stores")
	} else {
		catalog = repository.NewInMemoryVehicleCatalog()
		store = repository.NewInMemoryReservationStore()
		logger.Log.Infow("Using in-memory stores")
	}

	svc := service.NewReservationService(catalog, store)
	notify := service.NewNotifyService()
	adminSvc := service.NewAdminService(catalog, store)
	authSvc := service.NewAdminAuthService(repository.NewEnvAdminRepository())
	jobs := service.NewJobService(store)

	c := cron.New()
	c.AddFunc("@hourly", func() {
		if err := jobs.SweepEndedReservations(); err != nil {
			logger.Log.Errorw("Reservation sweep failed", "error", err)
		}
	})
	c.Start()
	defer c.Stop()

	userHandler := api.NewUserReservationHandler(svc, notify)
	adminHandler := api.NewAdminHandler(adminSvc)
	authHandler := api.NewAdminAuthHandler(authSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/options", userHandler.GetOptions).Methods("GET")
	r.HandleFunc("/api/reservations", userHandler.CreateReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", userHandler.GetReservation).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", userHandler.UpdateReservation).Methods("PUT")
	r.HandleFunc("/api/reservations/{id}", userHandler.CancelReservation).Methods("DELETE")

	// Admin endpoints (protected)
	r.HandleFunc("/admin/login", authHandler.Login).Methods("POST")
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/vehicles", adminHandler.ProvisionVehicles).Methods("POST")
	admin.HandleFunc("/vehicles", adminHandler.ListVehicles).Methods("GET")
	admin.HandleFunc("/reservations", adminHandler.ListReservations).Methods("GET")
	admin.HandleFunc("/reset", adminHandler.Reset).Methods("POST")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	logger.Log.Infof("Server running on port %s", port)
	logger.Log.Fatal(http.ListenAndServe(":"+port, cors(r)))
}
