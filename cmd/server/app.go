package main

import (
	"net/http"

	"github.com/mbaocraft/go-admin/auth"
	"github.com/mbaocraft/go-admin/internal/handlers"
	"github.com/mbaocraft/go-admin/internal/services"
	"gorm.io/gorm"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
	db  *gorm.DB
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB) *App {
	app := &App{
		mux: http.NewServeMux(),
		db:  db,
	}
	app.setupRoutes()
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Auth middleware attaches the user id when a valid cookie is present;
	// per-route requireAuth decides whether it is mandatory.
	auth.Middleware(a.mux).ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes() {
	activity := services.NewActivityService(a.db)
	contacts := services.NewContactService(a.db, activity)
	newsletter := services.NewNewsletterService(a.db, activity)
	quotes := services.NewQuoteService(a.db, activity)

	ah := handlers.NewAuthHandler(a.db)
	ch := handlers.NewContactHandler(contacts)
	nh := handlers.NewNewsletterHandler(newsletter)
	qh := handlers.NewQuoteHandler(quotes)
	dh := handlers.NewDashboardHandler(a.db, activity)
	mh := handlers.NewMetaHandler()

	// Public routes: login plus the two endpoints the website posts to.
	a.mux.HandleFunc("POST /login", ah.Login)
	a.mux.HandleFunc("POST /logout", ah.Logout)
	a.mux.HandleFunc("POST /contacts", ch.Create)
	a.mux.HandleFunc("POST /subscribers", nh.Subscribe)

	a.mux.HandleFunc("GET /session", ah.Session)

	// Contacts
	a.mux.Handle("GET /contacts", a.requireAuth(http.HandlerFunc(ch.List)))
	a.mux.Handle("GET /contacts/export", a.requireAuth(http.HandlerFunc(ch.Export)))
	a.mux.Handle("GET /contacts/{id}", a.requireAuth(http.HandlerFunc(ch.View)))
	a.mux.Handle("PATCH /contacts/{id}", a.requireAuth(http.HandlerFunc(ch.Update)))

	// Newsletter
	a.mux.Handle("GET /subscribers", a.requireAuth(http.HandlerFunc(nh.List)))
	a.mux.Handle("GET /subscribers/export", a.requireAuth(http.HandlerFunc(nh.Export)))
	a.mux.Handle("POST /subscribers/{id}/unsubscribe", a.requireAuth(http.HandlerFunc(nh.Unsubscribe)))
	a.mux.Handle("POST /subscribers/{id}/resubscribe", a.requireAuth(http.HandlerFunc(nh.Resubscribe)))

	// Quotes
	a.mux.Handle("GET /quotes", a.requireAuth(http.HandlerFunc(qh.List)))
	a.mux.Handle("POST /quotes", a.requireAuth(http.HandlerFunc(qh.Create)))
	a.mux.Handle("GET /quotes/export", a.requireAuth(http.HandlerFunc(qh.Export)))
	a.mux.Handle("GET /quotes/{id}", a.requireAuth(http.HandlerFunc(qh.View)))
	a.mux.Handle("PATCH /quotes/{id}", a.requireAuth(http.HandlerFunc(qh.Update)))
	a.mux.Handle("POST /quotes/{id}/costs", a.requireAuth(http.HandlerFunc(qh.AddCost)))
	a.mux.Handle("POST /quotes/{id}/costs/{cost_id}/delete", a.requireAuth(http.HandlerFunc(qh.RemoveCost)))
	a.mux.Handle("POST /quotes/{id}/send", a.requireAuth(http.HandlerFunc(qh.Send)))
	a.mux.Handle("POST /quotes/{id}/viewed", a.requireAuth(http.HandlerFunc(qh.MarkViewed)))
	a.mux.Handle("POST /quotes/{id}/accept", a.requireAuth(http.HandlerFunc(qh.Accept)))
	a.mux.Handle("POST /quotes/{id}/reject", a.requireAuth(http.HandlerFunc(qh.Reject)))
	a.mux.Handle("POST /quotes/{id}/expire", a.requireAuth(http.HandlerFunc(qh.Expire)))

	// Dashboard
	a.mux.Handle("GET /dashboard/stats", a.requireAuth(http.HandlerFunc(dh.Stats)))
	a.mux.Handle("GET /dashboard/activity", a.requireAuth(http.HandlerFunc(dh.Activity)))

	// Lookup tables for the admin frontend
	a.mux.Handle("GET /meta", a.requireAuth(http.HandlerFunc(mh.Lookups)))
	a.mux.Handle("GET /meta/badges/{kind}/{status}", a.requireAuth(http.HandlerFunc(mh.Badge)))
}

// requireAuth wraps a handler to require authentication.
func (a *App) requireAuth(next http.Handler) http.Handler {
	return auth.RequireAuth(next)
}
