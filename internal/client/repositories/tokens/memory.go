package tokens

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

type MemoryRepository struct {
	mu    sync.Mutex
	token models.AuthToken
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Get(_ context.Context) (models.AuthToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.token, nil
}

func (r *MemoryRepository) Save(_ context.Context, token models.AuthToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = token
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = ""
	return nil
}
