package client

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

// Client is the contract the views rely on to talk to the auth API.
type Client interface {
	Register(ctx context.Context, req models.RegistrationRequest) error
	Login(ctx context.Context, creds models.Credentials) (models.AuthToken, error)
	FetchProfile(ctx context.Context, token models.AuthToken) (*models.UserProfile, error)
}
