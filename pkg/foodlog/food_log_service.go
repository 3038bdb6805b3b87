package foodlog

import (
	"context"
	"time"

	"recipe-dashboard/domain"
	"recipe-dashboard/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	FoodLogService interface {
		StartSession(ctx context.Context) (domain.SessionResponse, error)
		EndSession(ctx context.Context, sessionID string) error
		LogRecipe(ctx context.Context, req domain.LogRecipeRequest, sessionID string) (domain.FoodLogResponse, error)
		ClearLog(ctx context.Context, sessionID string) error
		GetLog(ctx context.Context, sessionID string) (domain.FoodLogResponse, error)
		GetSummary(ctx context.Context, sessionID string) (domain.NutrientSummary, error)
		PurgeIdleSessions(ctx context.Context, maxIdle time.Duration) int
	}

	foodLogService struct {
		foodLogRepository FoodLogRepository
		catalog           *domain.Catalog
		jwtService        jwt.JWTService
		logger            *zap.Logger
	}
)

func NewFoodLogService(
	foodLogRepository FoodLogRepository,
	catalog *domain.Catalog,
	jwtService jwt.JWTService,
	logger *zap.Logger,
) FoodLogService {
	return &foodLogService{
		foodLogRepository: foodLogRepository,
		catalog:           catalog,
		jwtService:        jwtService,
		logger:            logger,
	}
}

func (s *foodLogService) StartSession(ctx context.Context) (domain.SessionResponse, error) {
	sessionID := uuid.New().String()

	token, expiresAt, err := s.jwtService.GenerateSessionToken(sessionID)
	if err != nil {
		return domain.SessionResponse{}, err
	}
	if err := s.foodLogRepository.CreateSession(ctx, sessionID); err != nil {
		return domain.SessionResponse{}, err
	}

	s.logger.Info("session started", zap.String("session_id", sessionID))
	return domain.SessionResponse{
		SessionID: sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *foodLogService) EndSession(ctx context.Context, sessionID string) error {
	if err := s.foodLogRepository.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Info("session ended", zap.String("session_id", sessionID))
	return nil
}

// LogRecipe appends without checking the catalog; unknown names surface
// later as missing entries in the summary.
func (s *foodLogService) LogRecipe(ctx context.Context, req domain.LogRecipeRequest, sessionID string) (domain.FoodLogResponse, error) {
	if err := s.foodLogRepository.AppendEntry(ctx, sessionID, req.RecipeName); err != nil {
		return domain.FoodLogResponse{}, err
	}
	if _, ok := s.catalog.Lookup(req.RecipeName); !ok {
		s.logger.Warn("logged recipe is not in the catalog",
			zap.String("session_id", sessionID),
			zap.String("recipe", req.RecipeName),
		)
	}
	return s.GetLog(ctx, sessionID)
}

func (s *foodLogService) ClearLog(ctx context.Context, sessionID string) error {
	return s.foodLogRepository.ClearEntries(ctx, sessionID)
}

func (s *foodLogService) GetLog(ctx context.Context, sessionID string) (domain.FoodLogResponse, error) {
	entries, err := s.foodLogRepository.GetEntries(ctx, sessionID)
	if err != nil {
		return domain.FoodLogResponse{}, err
	}
	return domain.FoodLogResponse{
		Entries: entries,
		Total:   len(entries),
	}, nil
}

func (s *foodLogService) GetSummary(ctx context.Context, sessionID string) (domain.NutrientSummary, error) {
	entries, err := s.foodLogRepository.GetEntries(ctx, sessionID)
	if err != nil {
		return domain.NutrientSummary{}, err
	}

	summary := Summarize(s.catalog, entries)
	if len(summary.Missing) > 0 {
		s.logger.Warn("skipped food log entries missing from catalog",
			zap.String("session_id", sessionID),
			zap.Strings("recipes", summary.MissingNames()),
		)
	}
	return summary, nil
}

func (s *foodLogService) PurgeIdleSessions(ctx context.Context, maxIdle time.Duration) int {
	purged := s.foodLogRepository.PurgeIdle(ctx, time.Now().Add(-maxIdle))
	if purged > 0 {
		s.logger.Info("purged idle sessions", zap.Int("count", purged))
	}
	return purged
}
