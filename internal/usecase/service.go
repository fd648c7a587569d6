package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"svw.info/sokoban/internal/domain"
	"svw.info/sokoban/internal/levelio"
	"svw.info/sokoban/internal/ports"
)

type Service struct {
	Validator ports.Validator
	Storage   ports.Storage
	Logger    *slog.Logger
}

func NewService(v ports.Validator, st ports.Storage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Validator: v, Storage: st, Logger: logger}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Check parses the level rows and validates the resulting board. Rows that
// cannot be parsed are an error; a parsed but invalid board is reported.
func (u *Service) Check(ctx context.Context, lv *domain.Level) (*domain.Board, domain.Report, error) {
	if u.Validator == nil {
		return nil, domain.Report{}, errNotConfigured
	}
	b, err := levelio.Parse(lv.Rows)
	if err != nil {
		return nil, domain.Report{}, err
	}
	rep, err := u.Validator.Validate(ctx, b)
	if err != nil {
		return nil, domain.Report{}, err
	}
	u.Logger.Debug("checked level", "id", lv.ID, "name", lv.Name, "valid", rep.Valid, "solved", rep.Solved)
	return b, rep, nil
}

// Persistence

// Save stores lv, assigning an ID and creation time when missing. Levels
// whose rows do not parse are refused.
func (u *Service) Save(ctx context.Context, lv *domain.Level) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if _, err := levelio.Parse(lv.Rows); err != nil {
		return fmt.Errorf("level %q: %w", lv.Name, err)
	}
	if lv.ID == "" {
		lv.ID = uuid.NewString()
	}
	if lv.CreatedAt == 0 {
		lv.CreatedAt = time.Now().UnixNano()
	}
	if err := u.Storage.Save(ctx, lv); err != nil {
		return err
	}
	u.Logger.Info("saved level", "id", lv.ID, "name", lv.Name)
	return nil
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Level, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.LevelMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

func (u *Service) Delete(ctx context.Context, id string) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if err := u.Storage.Delete(ctx, id); err != nil {
		return err
	}
	u.Logger.Info("deleted level", "id", id)
	return nil
}
