package tokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

type Repository interface {
	Get(ctx context.Context) (models.AuthToken, error)
	Save(ctx context.Context, token models.AuthToken) error
	Delete(ctx context.Context) error
}

// SavedAtReader is implemented by repositories that know when the current
// token was stored. The zero time means no token is stored.
type SavedAtReader interface {
	SavedAt(ctx context.Context) (time.Time, error)
}
