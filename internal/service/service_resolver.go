package service

import (
	"context"

	"github.com/Gil100/Personal-Finance--sub001/models"
)

// staticResolver resolves every conflict with the same choice without user
// interaction. Used for headless imports and tests; the interactive resolver
// lives in the TUI layer.
type staticResolver struct {
	choice models.Choice
}

// NewStaticResolver returns a ConflictResolver applying choice to every
// conflict.
func NewStaticResolver(choice models.Choice) ConflictResolver {
	return &staticResolver{choice: choice}
}

func (r *staticResolver) Resolve(ctx context.Context, conflicts []models.Conflict) (models.Resolution, error) {
	if err := ctx.Err(); err != nil {
		return models.Resolution{}, err
	}
	return models.ResolveAll(len(conflicts), r.choice), nil
}
