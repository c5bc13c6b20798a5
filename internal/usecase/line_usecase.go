package usecase

import (
	"context"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain/repository"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/errors"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type LineUseCase struct {
	lineRepo repository.LineRepository
	logger   *zap.Logger
	onChange []func(ctx context.Context)
}

func NewLineUseCase(lineRepo repository.LineRepository, logger *zap.Logger) *LineUseCase {
	return &LineUseCase{
		lineRepo: lineRepo,
		logger:   logger,
	}
}

// OnChange registers a hook that runs after a line was created, updated or deleted
func (uc *LineUseCase) OnChange(hook func(ctx context.Context)) {
	uc.onChange = append(uc.onChange, hook)
}

func (uc *LineUseCase) changed(ctx context.Context) {
	for _, hook := range uc.onChange {
		hook(ctx)
	}
}

func (uc *LineUseCase) Create(ctx context.Context, req dto.LineRequest) (*domain.Line, error) {
	stops := dto.ToStops(req.Stops)
	if err := validateStops(stops); err != nil {
		return nil, err
	}

	line := &domain.Line{
		ID:    uuid.New(),
		Name:  req.Name,
		Color: req.Color,
		Stops: stops,
	}
	if err := uc.lineRepo.Create(ctx, line); err != nil {
		uc.logger.Error("Failed to create line", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Line created", zap.String("id", line.ID.String()), zap.Int("stops", len(stops)))
	uc.changed(ctx)
	return line, nil
}

func (uc *LineUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Line, error) {
	return uc.lineRepo.GetByID(ctx, id)
}

// List returns a page of lines without their stops
func (uc *LineUseCase) List(ctx context.Context, limit, offset int) ([]*domain.Line, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	lines, err := uc.lineRepo.List(ctx, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list lines", zap.Error(err))
		return nil, err
	}
	return lines, nil
}

// ListByIDs parses ids and returns the lines that exist among them
func (uc *LineUseCase) ListByIDs(ctx context.Context, req dto.BatchLinesRequest) ([]*domain.Line, error) {
	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.ErrInvalidLineID.WithDetails(map[string]interface{}{
				"id": raw,
			})
		}
		ids = append(ids, id)
	}
	return uc.lineRepo.ListByIDs(ctx, ids)
}

func (uc *LineUseCase) Update(ctx context.Context, id uuid.UUID, req dto.LineRequest) (*domain.Line, error) {
	stops := dto.ToStops(req.Stops)
	if err := validateStops(stops); err != nil {
		return nil, err
	}

	line := &domain.Line{
		ID:    id,
		Name:  req.Name,
		Color: req.Color,
		Stops: stops,
	}
	if err := uc.lineRepo.Update(ctx, line); err != nil {
		return nil, err
	}
	uc.changed(ctx)
	return uc.lineRepo.GetByID(ctx, id)
}

func (uc *LineUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.lineRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Line deleted", zap.String("id", id.String()))
	uc.changed(ctx)
	return nil
}
