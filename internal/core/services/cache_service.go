package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/apperrors"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	portsrepo "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/repositories"
	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheService keeps recently used entity and ticket types in memory.
type CacheService struct {
	BaseService
	entityTypes    *lru.Cache[int64, domain.EntityType]
	ticketTypes    *lru.Cache[int64, domain.TicketType]
	entityTypeRepo portsrepo.EntityTypeReader
	ticketTypeRepo portsrepo.TicketTypeReader
}

// NewCacheService creates a cache holding up to size types of each kind.
func NewCacheService(size int, entityTypeRepo portsrepo.EntityTypeReader, ticketTypeRepo portsrepo.TicketTypeReader) (*CacheService, error) {
	entityTypes, err := lru.New[int64, domain.EntityType](size)
	if err != nil {
		return nil, fmt.Errorf("create entity type cache: %w", err)
	}
	ticketTypes, err := lru.New[int64, domain.TicketType](size)
	if err != nil {
		return nil, fmt.Errorf("create ticket type cache: %w", err)
	}
	return &CacheService{
		entityTypes:    entityTypes,
		ticketTypes:    ticketTypes,
		entityTypeRepo: entityTypeRepo,
		ticketTypeRepo: ticketTypeRepo,
	}, nil
}

var _ portssvc.CacheLookupSvc = (*CacheService)(nil)

func (s *CacheService) GetEntityTypeByID(ctx context.Context, entityTypeID int64) (*domain.EntityType, error) {
	if entityType, ok := s.entityTypes.Get(entityTypeID); ok {
		entityType.CustomFields = slices.Clone(entityType.CustomFields)
		return &entityType, nil
	}
	entityType, err := s.entityTypeRepo.FindEntityTypeByID(ctx, entityTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: entity type %d", apperrors.ErrLookup, entityTypeID)
		}
		s.LogError(ctx, err, "Failed to load entity type")
		return nil, err
	}
	cached := *entityType
	cached.CustomFields = slices.Clone(entityType.CustomFields)
	s.entityTypes.Add(entityTypeID, cached)
	return entityType, nil
}

func (s *CacheService) GetTicketTypeByID(ctx context.Context, ticketTypeID int64) (*domain.TicketType, error) {
	if ticketType, ok := s.ticketTypes.Get(ticketTypeID); ok {
		ticketType.EntityTypeAssignments = slices.Clone(ticketType.EntityTypeAssignments)
		return &ticketType, nil
	}
	ticketType, err := s.ticketTypeRepo.FindTicketTypeByID(ctx, ticketTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ticket type %d", apperrors.ErrLookup, ticketTypeID)
		}
		s.LogError(ctx, err, "Failed to load ticket type")
		return nil, err
	}
	cached := *ticketType
	cached.EntityTypeAssignments = slices.Clone(ticketType.EntityTypeAssignments)
	s.ticketTypes.Add(ticketTypeID, cached)
	return ticketType, nil
}

// InvalidateEntityType drops a cached entity type.
func (s *CacheService) InvalidateEntityType(entityTypeID int64) {
	s.entityTypes.Remove(entityTypeID)
}

// InvalidateTicketType drops a cached ticket type.
func (s *CacheService) InvalidateTicketType(ticketTypeID int64) {
	s.ticketTypes.Remove(ticketTypeID)
}
