package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/tokeninfo"
)

const msgRegistered = "Account Created Successfully! Please log in."

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK\n"))
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home", pageData{})
}

func (s *Server) loginForm(w http.ResponseWriter, r *http.Request) {
	var data pageData
	if r.URL.Query().Get("registered") == "1" {
		data.Notice = msgRegistered
	}
	s.render(w, r, http.StatusOK, "login", data)
}

func (s *Server) loginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "login", pageData{Error: client.MsgInvalidInput})
		return
	}

	creds := models.Credentials{Email: r.PostFormValue("email"), Password: r.PostFormValue("password")}
	if _, err := s.auth.Login(r.Context(), creds); err != nil {
		s.render(w, r, statusFor(err), "login", pageData{Error: client.UserMessage(err), Email: creds.Email})
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) registerForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "register", pageData{})
}

func (s *Server) registerSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "register", pageData{Error: client.MsgFillAllFields})
		return
	}

	req := models.RegistrationRequest{
		FullName: r.PostFormValue("fullName"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := s.auth.Register(r.Context(), req); err != nil {
		s.render(w, r, statusFor(err), "register", pageData{
			Error:    client.UserMessage(err),
			FullName: req.FullName,
			Email:    req.Email,
		})
		return
	}

	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

// dashboard re-checks the profile: a logout may land between the guard
// and this handler.
func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	user := s.auth.CurrentUser()
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	data := pageData{User: user, Since: s.store.SignedInAt()}
	if info, err := tokeninfo.Inspect(s.store.Token()); err == nil {
		data.Token = &info
	}
	s.render(w, r, http.StatusOK, "dashboard", data)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.Logout(r.Context()); err != nil {
		s.log.Warn(r.Context(), "logout", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// statusFor picks the HTTP status a form page is re-rendered with.
func statusFor(err error) int {
	switch {
	case errors.Is(err, client.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, client.ErrInvalidInput), errors.Is(err, client.ErrRegistrationFailed):
		return http.StatusBadRequest
	case errors.Is(err, client.ErrNetwork), errors.Is(err, client.ErrProfileFetchFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
