package validator

import (
	"context"

	"svw.info/sokoban/internal/domain"
)

type BoardValidator struct{}

func New() *BoardValidator { return &BoardValidator{} }

// Validate runs the board's own checks and summarises the result. A broken
// board is reported in the Report, not as an error.
func (v *BoardValidator) Validate(ctx context.Context, b *domain.Board) (domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}
	rep := domain.Report{
		Solved:    b.IsSolved(),
		Width:     b.Width(),
		Height:    b.Height(),
		Treasures: b.Treasures().Size(),
		Targets:   b.CountTargets(),
	}
	if err := b.Validate(); err != nil {
		rep.Problem = err.Error()
		return rep, nil
	}
	rep.Valid = true
	return rep, nil
}
