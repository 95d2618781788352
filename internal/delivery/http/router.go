package http

import (
	"net/http"

	"docconnect/internal/delivery/http/handler"
	"docconnect/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	chamberHandler     *handler.ChamberHandler
	userHandler        *handler.UserHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	chamberHandler *handler.ChamberHandler,
	userHandler *handler.UserHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		appointmentHandler: appointmentHandler,
		chamberHandler:     chamberHandler,
		userHandler:        userHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Appointment booking (public, patient-facing)
	api.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/appointments/verify-code", r.appointmentHandler.VerifyCode).Methods(http.MethodPost)
	api.HandleFunc("/appointments/resend-code", r.appointmentHandler.ResendCode).Methods(http.MethodPost)

	// Chamber browsing (public)
	api.HandleFunc("/chambers", r.chamberHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/chambers/{id}", r.chamberHandler.Get).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Appointment management (doctor and assistant)
	staff := api.PathPrefix("/appointments").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/update-status/{id}", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)

	// Chamber management (admin or owning doctor)
	chambers := api.PathPrefix("/chambers").Subrouter()
	chambers.Use(r.authMiddleware.Authenticate)
	chambers.Use(middleware.RequireAdminOrDoctor)
	chambers.HandleFunc("", r.chamberHandler.Create).Methods(http.MethodPost)
	chambers.HandleFunc("/{id}", r.chamberHandler.Update).Methods(http.MethodPut)
	chambers.HandleFunc("/{id}", r.chamberHandler.Deactivate).Methods(http.MethodDelete)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.userHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/users", r.userHandler.GetByRole).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.Deactivate).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAll).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
