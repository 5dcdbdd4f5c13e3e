package http

import (
	"net/http"

	"clinic-directory/internal/delivery/http/handler"
	"clinic-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	adminHandler       *handler.AdminHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		adminHandler:       adminHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Admin routes (public)
	api.HandleFunc("/admin/register", r.authHandler.RegisterAdmin).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", r.authHandler.LoginAdmin).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/doctors/pending", r.adminHandler.ListPendingDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/approve", r.adminHandler.ApproveDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/deny", r.adminHandler.DenyDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/hospitals", r.adminHandler.ListHospitals).Methods(http.MethodGet)
	admin.HandleFunc("/hospitals/{id}", r.adminHandler.UpdateHospital).Methods(http.MethodPut)
	admin.HandleFunc("/hospitals/{id}/image", r.adminHandler.UploadHospitalImage).Methods(http.MethodPost)

	// Doctor routes (public)
	api.HandleFunc("/doctors/register", r.doctorHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/doctors/login", r.doctorHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.ListApproved).Methods(http.MethodGet)

	// Doctor routes (protected - doctor only)
	doctors := api.PathPrefix("/doctors/me").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.Use(middleware.RequireDoctor)
	doctors.HandleFunc("", r.doctorHandler.GetMyProfile).Methods(http.MethodGet)
	doctors.HandleFunc("/picture", r.doctorHandler.UploadProfilePicture).Methods(http.MethodPost)
	doctors.HandleFunc("/picture", r.doctorHandler.DeleteProfilePicture).Methods(http.MethodDelete)
	doctors.HandleFunc("/cv", r.doctorHandler.UploadCV).Methods(http.MethodPost)
	doctors.HandleFunc("/appointments", r.appointmentHandler.ListMyAppointments).Methods(http.MethodGet)
	doctors.HandleFunc("/appointments/{id}/finish", r.appointmentHandler.FinishAppointment).Methods(http.MethodPost)

	// Patient routes (public)
	api.HandleFunc("/patients/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	api.HandleFunc("/patients/login", r.authHandler.LoginPatient).Methods(http.MethodPost)

	// Patient routes (protected - patient only)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequirePatient)
	patients.HandleFunc("/appointments", r.appointmentHandler.CreateBooking).Methods(http.MethodPost)

	// Logout (any authenticated role)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(r.authMiddleware.Authenticate)
	auth.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
