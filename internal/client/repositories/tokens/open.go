package tokens

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
)

// Open builds the repository selected by kind. The returned close func
// releases whatever the backend holds open and is never nil.
func Open(ctx context.Context, kind, path string) (Repository, func() error, error) {
	noop := func() error { return nil }

	switch kind {
	case config.StoreSQLite:
		db, err := client.InitDatabase(ctx, path)
		if err != nil {
			return nil, noop, fmt.Errorf("open token database: %w", err)
		}
		return NewSQLiteRepository(db), db.Close, nil
	case config.StoreFile:
		return NewFileRepository(path), noop, nil
	case config.StoreMemory:
		return NewMemoryRepository(), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown token store %q", kind)
	}
}
