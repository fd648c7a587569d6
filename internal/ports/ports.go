package ports

import (
	"context"
	"errors"

	"svw.info/sokoban/internal/domain"
)

// ErrNotFound is returned by Storage for unknown level IDs.
var ErrNotFound = errors.New("level not found")

// Validator checks a board and reports its state.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (domain.Report, error)
}

// Storage persists and retrieves levels.
type Storage interface {
	Save(ctx context.Context, lv *domain.Level) error
	Load(ctx context.Context, id string) (*domain.Level, error)
	List(ctx context.Context) ([]domain.LevelMeta, error)
	Delete(ctx context.Context, id string) error
}
