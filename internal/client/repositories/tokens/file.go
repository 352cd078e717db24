package tokens

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/filex"
)

type fileDocument struct {
	Token models.AuthToken `json:"token"`
}

// FileRepository stores the token as {"token": "..."} in a 0600 file.
type FileRepository struct {
	path string
}

var (
	_ Repository    = (*FileRepository)(nil)
	_ SavedAtReader = (*FileRepository)(nil)
)

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Get(ctx context.Context) (models.AuthToken, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("decode token file %s: %w", r.path, err)
	}
	return doc.Token, nil
}

// SavedAt is the modification time of the token file.
func (r *FileRepository) SavedAt(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}

	fi, err := os.Stat(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("stat token file: %w", err)
	}
	return fi.ModTime(), nil
}

func (r *FileRepository) Save(ctx context.Context, token models.AuthToken) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(fileDocument{Token: token})
	if err != nil {
		return err
	}
	if err := filex.WriteFileAtomic(r.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (r *FileRepository) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
