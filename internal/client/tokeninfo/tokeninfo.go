// Package tokeninfo decodes the registered claims of a JWT auth token for
// display. Nothing here checks a signature; access decisions never depend
// on it.
package tokeninfo

import (
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var ErrNotJWT = errors.New("token is not a JWT")

type Info struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry that is not after now.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !i.ExpiresAt.After(now)
}

// Inspect reads the claims of token. A "Bearer " prefix is ignored.
func Inspect(token models.AuthToken) (Info, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(string(token)), common.BearerPrefix)
	if strings.Count(raw, ".") != 2 {
		return Info{}, ErrNotJWT
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return Info{}, errors.Join(ErrNotJWT, err)
	}

	info := Info{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
