// Package bootstrap wires the pieces both front-ends share: the token
// store, the session, the HTTP API client and the auth service.
package bootstrap

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/client/session"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

type Components struct {
	Store *session.Store
	Auth  services.AuthService

	closeFn func() error
}

// Build opens the configured token store and connects it to an API client
// for cfg.ServerBaseURL. Extra options are passed to the API client.
func Build(ctx context.Context, cfg *config.Config, log logging.Logger, opts ...client.Option) (*Components, error) {
	repo, closeRepo, err := tokens.Open(ctx, cfg.StoreKind, cfg.StorePath)
	if err != nil {
		return nil, err
	}

	opts = append([]client.Option{client.WithLogger(log)}, opts...)
	api, err := client.NewHTTPClient(cfg.ServerBaseURL, opts...)
	if err != nil {
		return nil, errors.Join(err, closeRepo())
	}

	store := session.NewStore(repo, log)
	return &Components{
		Store:   store,
		Auth:    services.NewAuthService(api, store, log),
		closeFn: closeRepo,
	}, nil
}

// Close releases the token store.
func (c *Components) Close() error {
	if c == nil || c.closeFn == nil {
		return nil
	}
	return c.closeFn()
}
