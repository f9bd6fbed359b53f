package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
)

// ApplicationStateService keeps the current screen of every user in memory.
type ApplicationStateService struct {
	BaseService
	mu      sync.RWMutex
	screens map[string]domain.ScreenConfig
}

// NewApplicationStateService creates an empty state store.
func NewApplicationStateService() *ApplicationStateService {
	return &ApplicationStateService{screens: make(map[string]domain.ScreenConfig)}
}

var _ portssvc.ApplicationStateSvc = (*ApplicationStateService)(nil)

func (s *ApplicationStateService) CurrentScreen(_ context.Context, userID string) (*domain.ScreenConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	screen, ok := s.screens[userID]
	if !ok {
		return nil, false
	}
	return &screen, true
}

func (s *ApplicationStateService) SetCurrentScreen(ctx context.Context, userID string, screen domain.ScreenConfig) {
	s.mu.Lock()
	s.screens[userID] = screen
	s.mu.Unlock()
	s.LogDebug(ctx, "Current screen set", slog.String("screen", screen.Name), slog.Int64("ticket_type_id", screen.TicketTypeID))
}

func (s *ApplicationStateService) ClearCurrentScreen(_ context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.screens, userID)
}
