// Package services contains application services for the gophauth clients.
// This file defines the authentication service: registration, login,
// logout and session restore on start.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/session"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// AuthService defines authentication operations shared by the views.
//
// Contract:
//   - Register: create an account. Empty fields are rejected locally.
//   - Login: obtain a token and resolve the profile. The session is set
//     only when both succeed.
//   - Logout: drop the session locally. The server is not contacted.
//   - Restore: turn a stored token into a session, or clear it when the
//     profile cannot be fetched.
//   - CurrentUser: the resolved profile, or nil.
type AuthService interface {
	Register(ctx context.Context, req models.RegistrationRequest) error
	Login(ctx context.Context, creds models.Credentials) (*models.UserProfile, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	CurrentUser() *models.UserProfile
}

type authService struct {
	client client.Client
	store  *session.Store
	log    logging.Logger
}

func NewAuthService(c client.Client, s *session.Store, log logging.Logger) AuthService {
	return &authService{client: c, store: s, log: log}
}

func (a *authService) Register(ctx context.Context, req models.RegistrationRequest) error {
	req = req.Normalize()
	if missing := req.MissingFields(); len(missing) > 0 {
		return &client.ValidationError{Op: client.OpRegister, Fields: missing}
	}

	if err := a.client.Register(ctx, req); err != nil {
		a.log.Info(ctx, "registration rejected", "user", req, "error", err)
		return err
	}
	a.log.Info(ctx, "account registered", "user", req)
	return nil
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (*models.UserProfile, error) {
	creds = creds.Normalize()
	if missing := creds.MissingFields(); len(missing) > 0 {
		return nil, &client.ValidationError{Op: client.OpLogin, Fields: missing}
	}

	token, err := a.client.Login(ctx, creds)
	if err != nil {
		a.log.Info(ctx, "login failed", "user", creds, "error", err)
		return nil, err
	}

	profile, err := a.resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	a.log.Info(ctx, "logged in", "user", creds)
	return profile, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) Restore(ctx context.Context) error {
	token, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	_, err = a.resolve(ctx, token)
	return err
}

func (a *authService) CurrentUser() *models.UserProfile {
	return a.store.Profile()
}

// resolve fetches the profile for token and publishes the session. When
// either step fails the session is torn down and the error is returned.
func (a *authService) resolve(ctx context.Context, token models.AuthToken) (*models.UserProfile, error) {
	profile, err := a.client.FetchProfile(ctx, token)
	if err != nil {
		a.log.Warn(ctx, "profile fetch failed, clearing session", "error", err)
		if cerr := a.store.Clear(ctx); cerr != nil {
			return nil, errors.Join(err, cerr)
		}
		return nil, err
	}

	if err := a.store.SetSession(ctx, token, profile); err != nil {
		a.log.Warn(ctx, "session not stored, clearing session", "error", err)
		if cerr := a.store.Clear(ctx); cerr != nil {
			return nil, errors.Join(err, cerr)
		}
		return nil, err
	}
	return profile, nil
}
