package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/config"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/detour"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain/repository"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/errors"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	reasonTooClose   = "stops closer than minimum pair separation"
	reasonZeroLength = "direct route has zero length"
)

// DetourUseCase evaluates the detours of a line. It queries the routing
// service once for the whole line and once per query pair.
type DetourUseCase struct {
	routingRepo repository.RoutingRepository
	lineRepo    repository.LineRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cfg         config.DetourConfig
	cacheTTL    time.Duration
}

// NewDetourUseCase creates a new DetourUseCase
func NewDetourUseCase(
	routingRepo repository.RoutingRepository,
	lineRepo repository.LineRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cfg config.DetourConfig,
	cacheTTL time.Duration,
) *DetourUseCase {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 1
	}
	return &DetourUseCase{
		routingRepo: routingRepo,
		lineRepo:    lineRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cfg:         cfg,
		cacheTTL:    cacheTTL,
	}
}

// DefaultCap returns the cap used when a request does not name one
func (uc *DetourUseCase) DefaultCap() int {
	return uc.cfg.DefaultCap
}

// QueryPairs previews the pairs an evaluation with cap would query
func (uc *DetourUseCase) QueryPairs(stops []domain.Stop, cap int) ([]domain.QueryPair, error) {
	if err := uc.validateStops(stops); err != nil {
		return nil, err
	}
	return detour.CreateQueryPairs(stops, cap), nil
}

// EvaluateLine loads a stored line and evaluates it
func (uc *DetourUseCase) EvaluateLine(ctx context.Context, lineID uuid.UUID, cap int) (*domain.Line, *domain.DetourEvaluation, error) {
	line, err := uc.lineRepo.GetByID(ctx, lineID)
	if err != nil {
		return nil, nil, fmt.Errorf("load line %s: %w", lineID, err)
	}

	evaluation, err := uc.Evaluate(ctx, line.Stops, cap)
	if err != nil {
		return nil, nil, err
	}
	return line, evaluation, nil
}

// Evaluate computes the detour statistics of stops. Pairs whose routing
// query fails are reported in FailedPairs and left out of the result; the
// evaluation only fails when the line itself cannot be routed.
func (uc *DetourUseCase) Evaluate(ctx context.Context, stops []domain.Stop, cap int) (*domain.DetourEvaluation, error) {
	if err := uc.validateStops(stops); err != nil {
		return nil, err
	}

	// 1. Проверяем кеш
	key, err := evaluationKey(stops, cap)
	if err == nil {
		cached, err := uc.cacheRepo.GetEvaluation(ctx, key)
		if err != nil {
			uc.logger.Warn("Failed to get evaluation from cache", zap.Error(err))
		} else if cached != nil {
			uc.logger.Debug("Evaluation fetched from cache", zap.String("key", key))
			return cached, nil
		}
	}

	start := time.Now()

	// 2. Пары остановок
	pairs := detour.CreateQueryPairs(stops, cap)
	evaluation := &domain.DetourEvaluation{
		Cap:   cap,
		Pairs: len(pairs),
	}
	pairs, evaluation.SkippedPairs = uc.dropClosePairs(pairs)

	if len(pairs) == 0 {
		evaluation.Result = &domain.DetourResult{}
		evaluation.EvaluatedAt = time.Now().UTC()
		uc.store(ctx, key, evaluation)
		return evaluation, nil
	}

	// 3. Маршрут самой линии
	originalPath, err := uc.routingRepo.QueryRoute(ctx, domain.Coordinates(stops))
	if err != nil {
		uc.logger.Error("Failed to route line", zap.Int("stops", len(stops)), zap.Error(err))
		return nil, errors.ErrRoutingFailed.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}
	if n := originalPath.StopWaypoints(); n != len(stops) {
		return nil, errors.ErrRouteMismatch.WithDetails(map[string]interface{}{
			"reason": fmt.Sprintf("route addresses %d of %d stops", n, len(stops)),
		})
	}
	original := detour.NewPathGeometry(originalPath)

	// 4. Прямые маршруты, параллельно
	subPaths, failed := uc.resolvePairs(ctx, pairs)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	evaluation.FailedPairs = failed

	usable, degenerate := detour.FilterDegenerate(subPaths)
	for _, sub := range degenerate {
		evaluation.SkippedPairs = append(evaluation.SkippedPairs, domain.FailedPair{
			SourceIndex: sub.StartIndex,
			TargetIndex: sub.EndIndex,
			Reason:      reasonZeroLength,
		})
	}

	// 5. Статистика объездов
	result, err := detour.ComputeDetours(original, usable)
	if err != nil {
		uc.logger.Error("Failed to compute detours", zap.Error(err))
		return nil, errors.ErrDetourComputation.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}
	evaluation.Result = result
	evaluation.EvaluatedAt = time.Now().UTC()

	uc.logger.Info("Detour evaluation finished",
		zap.Int("stops", len(stops)),
		zap.Int("cap", cap),
		zap.Int("pairs", evaluation.Pairs),
		zap.Int("failed", len(evaluation.FailedPairs)),
		zap.Int("skipped", len(evaluation.SkippedPairs)),
		zap.Float64("average_detour", result.AverageDetour),
		zap.Duration("took", time.Since(start)))

	// Частичный результат не кешируем, повторный запрос доберет упавшие пары
	if len(evaluation.FailedPairs) == 0 {
		uc.store(ctx, key, evaluation)
	}

	return evaluation, nil
}

// resolvePairs queries the direct route of every pair concurrently. The
// returned sub-paths are ordered by start and end index.
func (uc *DetourUseCase) resolvePairs(ctx context.Context, pairs []domain.QueryPair) ([]detour.SubPath, []domain.FailedPair) {
	var (
		mu       sync.Mutex
		subPaths = make([]detour.SubPath, 0, len(pairs))
		failed   []domain.FailedPair
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.MaxConcurrency)

	for _, pair := range pairs {
		g.Go(func() error {
			path, err := uc.routingRepo.QueryRoute(gctx, []domain.Coordinate{
				pair.Source.Coordinate(),
				pair.Target.Coordinate(),
			})

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				uc.logger.Warn("Failed to route query pair, leaving it out",
					zap.Int("source", pair.SourceIndex),
					zap.Int("target", pair.TargetIndex),
					zap.Error(err))
				failed = append(failed, domain.FailedPair{
					SourceIndex: pair.SourceIndex,
					TargetIndex: pair.TargetIndex,
					Reason:      err.Error(),
				})
				return nil
			}

			subPaths = append(subPaths, detour.SubPath{
				StartIndex: pair.SourceIndex,
				EndIndex:   pair.TargetIndex,
				Path:       detour.NewPathGeometry(path),
			})
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(subPaths, func(i, j int) bool {
		if subPaths[i].StartIndex != subPaths[j].StartIndex {
			return subPaths[i].StartIndex < subPaths[j].StartIndex
		}
		return subPaths[i].EndIndex < subPaths[j].EndIndex
	})
	sortFailed(failed)

	return subPaths, failed
}

func (uc *DetourUseCase) dropClosePairs(pairs []domain.QueryPair) ([]domain.QueryPair, []domain.FailedPair) {
	if uc.cfg.MinPairSeparation <= 0 {
		return pairs, nil
	}

	kept := pairs[:0:0]
	var skipped []domain.FailedPair
	for _, p := range pairs {
		d := utils.HaversineMeters(p.Source.Lat, p.Source.Lng, p.Target.Lat, p.Target.Lng)
		if d < uc.cfg.MinPairSeparation {
			skipped = append(skipped, domain.FailedPair{
				SourceIndex: p.SourceIndex,
				TargetIndex: p.TargetIndex,
				Reason:      reasonTooClose,
			})
			continue
		}
		kept = append(kept, p)
	}
	return kept, skipped
}

func (uc *DetourUseCase) store(ctx context.Context, key string, evaluation *domain.DetourEvaluation) {
	if key == "" {
		return
	}
	if err := uc.cacheRepo.SetEvaluation(ctx, key, evaluation, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache evaluation", zap.Error(err))
	}
}

func sortFailed(failed []domain.FailedPair) {
	sort.Slice(failed, func(i, j int) bool {
		if failed[i].SourceIndex != failed[j].SourceIndex {
			return failed[i].SourceIndex < failed[j].SourceIndex
		}
		return failed[i].TargetIndex < failed[j].TargetIndex
	})
}

// evaluationKey identifies an evaluation by the stop positions, flags and cap.
// Names do not influence the result and are left out.
func evaluationKey(stops []domain.Stop, cap int) (string, error) {
	type keyStop struct {
		Lat, Lng float64
		Real     bool
	}
	ks := make([]keyStop, len(stops))
	for i, s := range stops {
		ks[i] = keyStop{Lat: s.Lat, Lng: s.Lng, Real: s.RealStop}
	}

	data, err := json.Marshal(struct {
		Stops []keyStop
		Cap   int
	}{ks, cap})
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func (uc *DetourUseCase) validateStops(stops []domain.Stop) error {
	if len(stops) < 2 {
		return errors.ErrInvalidLine.WithDetails(map[string]interface{}{
			"stops": len(stops),
		})
	}
	if uc.cfg.MaxStops > 0 && len(stops) > uc.cfg.MaxStops {
		return errors.ErrInvalidLine.WithDetails(map[string]interface{}{
			"stops":     len(stops),
			"max_stops": uc.cfg.MaxStops,
		})
	}
	for i, s := range stops {
		if !utils.ValidateCoordinates(s.Lat, s.Lng) {
			return errors.ErrInvalidLine.WithDetails(map[string]interface{}{
				"index": i,
			})
		}
	}
	return nil
}
