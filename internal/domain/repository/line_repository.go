package repository

import (
	"context"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
	"github.com/google/uuid"
)

// LineRepository persists lines together with their stop sequence
type LineRepository interface {
	Create(ctx context.Context, line *domain.Line) error

	// GetByID returns errors.ErrLineNotFound when no line has the ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Line, error)

	// List returns lines without stops, newest first
	List(ctx context.Context, limit, offset int) ([]*domain.Line, error)

	// ListByIDs returns the lines (with stops) that exist among ids
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Line, error)

	// Update replaces name, color and the whole stop sequence
	Update(ctx context.Context, line *domain.Line) error

	Delete(ctx context.Context, id uuid.UUID) error
}
