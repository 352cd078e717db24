package tokens

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
)

type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

var (
	_ Repository    = (*SQLiteRepository)(nil)
	_ SavedAtReader = (*SQLiteRepository)(nil)
)

// NewSQLiteRepository expects db to be migrated (see client.InitDatabase).
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Get(ctx context.Context) (models.AuthToken, error) {
	v, err := metadata.NewSQLiteRepository(r.db).Get(ctx, common.TokenKey)
	if err != nil {
		return "", err
	}
	return models.AuthToken(v), nil
}

func (r *SQLiteRepository) SavedAt(ctx context.Context) (time.Time, error) {
	v, err := metadata.NewSQLiteRepository(r.db).Get(ctx, common.TokenSavedAtKey)
	if err != nil || len(v) == 0 {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339Nano, string(v))
}

func (r *SQLiteRepository) Save(ctx context.Context, token models.AuthToken) error {
	savedAt := r.now().UTC().Format(time.RFC3339Nano)

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.TokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.TokenSavedAtKey, []byte(savedAt))
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.TokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.TokenSavedAtKey)
	})
}
