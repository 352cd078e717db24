// Package web serves the local single-user web client: landing, login,
// registration and dashboard pages over the shared session.
package web

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/guard"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/client/session"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/gorilla/mux"
)

type Server struct {
	auth  services.AuthService
	store *session.Store
	log   logging.Logger
	pages map[string]*template.Template
}

func NewServer(as services.AuthService, s *session.Store, log logging.Logger) (*Server, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &Server{auth: as, store: s, log: log.With("module", "web"), pages: pages}, nil
}

// Router returns the routes of the web client.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogger)

	r.HandleFunc("/healthz", s.healthz).Methods(http.MethodGet)
	r.HandleFunc("/logout", s.logout).Methods(http.MethodPost)

	guest := r.NewRoute().Subrouter()
	guest.Use(guard.Middleware(s.store, guard.GuestOnly, "/dashboard"))
	guest.HandleFunc("/", s.home).Methods(http.MethodGet)
	guest.HandleFunc("/login", s.loginForm).Methods(http.MethodGet)
	guest.HandleFunc("/login", s.loginSubmit).Methods(http.MethodPost)
	guest.HandleFunc("/register", s.registerForm).Methods(http.MethodGet)
	guest.HandleFunc("/register", s.registerSubmit).Methods(http.MethodPost)

	protected := r.NewRoute().Subrouter()
	protected.Use(guard.Middleware(s.store, guard.Protected, "/login"))
	protected.HandleFunc("/dashboard", s.dashboard).Methods(http.MethodGet)

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, readHeaderTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "Starting web server", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info(ctx, "Stopping web server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	if data.User == nil {
		data.User = s.auth.CurrentUser()
	}

	var buf bytes.Buffer
	if err := s.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		s.log.Error(r.Context(), "render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
