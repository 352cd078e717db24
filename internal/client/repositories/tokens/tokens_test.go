package tokens

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLite(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "gophauth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

// repositoryContract runs the behaviour every backend must share.
func repositoryContract(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()

	tok, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok, "fresh store holds no token")

	require.NoError(t, repo.Save(ctx, "first"))
	require.NoError(t, repo.Save(ctx, "second"))

	tok, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AuthToken("second"), tok)

	require.NoError(t, repo.Delete(ctx))
	tok, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, repo.Delete(ctx), "delete of an absent token is not an error")
}

func TestRepositories_Contract(t *testing.T) {
	tests := []struct {
		name string
		repo func(t *testing.T) Repository
	}{
		{"sqlite", func(t *testing.T) Repository { return newSQLite(t) }},
		{"file", func(t *testing.T) Repository {
			return NewFileRepository(filepath.Join(t.TempDir(), "gophauth", "token.json"))
		}},
		{"memory", func(t *testing.T) Repository { return NewMemoryRepository() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repositoryContract(t, tt.repo(t))
		})
	}
}

func TestSQLiteRepository_SavedAt(t *testing.T) {
	repo := newSQLite(t)
	fixed := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	repo.now = func() time.Time { return fixed }
	ctx := context.Background()

	at, err := repo.SavedAt(ctx)
	require.NoError(t, err)
	assert.True(t, at.IsZero())

	require.NoError(t, repo.Save(ctx, "abc"))
	at, err = repo.SavedAt(ctx)
	require.NoError(t, err)
	assert.True(t, fixed.Equal(at), "got %v", at)

	require.NoError(t, repo.Delete(ctx))
	at, err = repo.SavedAt(ctx)
	require.NoError(t, err)
	assert.True(t, at.IsZero(), "delete removes the timestamp too")
}

func TestFileRepository_SavedAt(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "gophauth", "token.json")
	repo := NewFileRepository(path)

	at, err := repo.SavedAt(ctx)
	require.NoError(t, err)
	assert.True(t, at.IsZero())

	require.NoError(t, repo.Save(ctx, "abc"))
	stamp := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	at, err = repo.SavedAt(ctx)
	require.NoError(t, err)
	assert.True(t, stamp.Equal(at), "got %v", at)

	require.NoError(t, repo.Delete(ctx))
	at, err = repo.SavedAt(ctx)
	require.NoError(t, err)
	assert.True(t, at.IsZero())
}

func TestSQLiteRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "gophauth.db")

	db, err := client.InitDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteRepository(db).Save(ctx, "persisted"))
	require.NoError(t, db.Close())

	db, err = client.InitDatabase(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	tok, err := NewSQLiteRepository(db).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AuthToken("persisted"), tok)
}

func TestSQLiteRepository_ClosedDB(t *testing.T) {
	ctx := context.Background()
	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "gophauth.db"))
	require.NoError(t, err)
	repo := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err = repo.Get(ctx)
	require.Error(t, err)
	require.Error(t, repo.Save(ctx, "x"))
	require.Error(t, repo.Delete(ctx))
}

func TestFileRepository_FileFormatAndMode(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "gophauth", "token.json")
	repo := NewFileRepository(path)

	require.NoError(t, repo.Save(ctx, "abc"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"abc"}`, string(data))

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}

	require.NoError(t, repo.Delete(ctx))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileRepository(path).Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode token file")
}

func TestFileRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewFileRepository(filepath.Join(t.TempDir(), "token.json"))

	_, err := repo.Get(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, repo.Save(ctx, "x"), context.Canceled)
	require.ErrorIs(t, repo.Delete(ctx), context.Canceled)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		kind    string
		path    string
		want    any
		wantErr bool
	}{
		{kind: config.StoreSQLite, path: filepath.Join(dir, "a.db"), want: &SQLiteRepository{}},
		{kind: config.StoreFile, path: filepath.Join(dir, "t.json"), want: &FileRepository{}},
		{kind: config.StoreMemory, want: &MemoryRepository{}},
		{kind: "redis", wantErr: true},
		{kind: config.StoreSQLite, path: filepath.Join(dir, "missing", "a.db"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			repo, closeFn, err := Open(ctx, tt.kind, tt.path)
			require.NotNil(t, closeFn)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer func() { require.NoError(t, closeFn()) }()
			assert.IsType(t, tt.want, repo)
		})
	}
}
