package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/apperrors"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	portsrepo "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/repositories"
	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/dto"
	"github.com/go-playground/validator/v10"
)

// templateFieldPattern matches "[:Field]" references in account name templates.
var templateFieldPattern = regexp.MustCompile(`\[:([^\]]+)\]`)

var tagValidator = validator.New()

// typeCacheInvalidator drops cached type configuration after writes.
type typeCacheInvalidator interface {
	InvalidateEntityType(entityTypeID int64)
	InvalidateTicketType(ticketTypeID int64)
}

type entityTypeService struct {
	BaseService
	entityTypeRepo  portsrepo.EntityTypeRepositoryFacade
	accountTypeRepo portsrepo.AccountTypeReader
	cache           typeCacheInvalidator
}

// NewEntityTypeService creates the service managing entity types.
func NewEntityTypeService(entityTypeRepo portsrepo.EntityTypeRepositoryFacade, accountTypeRepo portsrepo.AccountTypeReader, cache typeCacheInvalidator, permissions portssvc.PermissionCheckerSvc) portssvc.EntityTypeSvcFacade {
	return &entityTypeService{
		BaseService:     BaseService{Permissions: permissions},
		entityTypeRepo:  entityTypeRepo,
		accountTypeRepo: accountTypeRepo,
		cache:           cache,
	}
}

var _ portssvc.EntityTypeSvcFacade = (*entityTypeService)(nil)

func (s *entityTypeService) CreateEntityType(ctx context.Context, req dto.CreateEntityTypeRequest, userID string) (*domain.EntityType, error) {
	if err := s.RequirePermission(ctx, userID, domain.PermissionManageEntityTypes); err != nil {
		return nil, err
	}

	entityType := domain.EntityType{
		Name:                req.Name,
		EntityName:          req.EntityName,
		PrimaryFieldName:    req.PrimaryFieldName,
		PrimaryFieldFormat:  req.PrimaryFieldFormat,
		AccountTypeID:       req.AccountTypeID,
		AccountNameTemplate: req.AccountNameTemplate,
		CustomFields:        make([]domain.EntityCustomField, 0, len(req.CustomFields)),
	}
	for _, f := range req.CustomFields {
		fieldType := f.Type
		if fieldType == "" {
			fieldType = domain.FieldString
		}
		if _, exists := entityType.CustomField(f.Name); exists {
			return nil, fmt.Errorf("%w: duplicate custom field %q", apperrors.ErrValidation, f.Name)
		}
		if err := checkValidationTag(f.ValidationTag); err != nil {
			return nil, fmt.Errorf("%w: custom field %q: %w", apperrors.ErrValidation, f.Name, err)
		}
		entityType.CustomFields = append(entityType.CustomFields, domain.EntityCustomField{
			Name:          f.Name,
			Type:          fieldType,
			Required:      f.Required,
			ValidationTag: f.ValidationTag,
		})
	}

	for _, match := range templateFieldPattern.FindAllStringSubmatch(entityType.AccountNameTemplate, -1) {
		if _, ok := entityType.CustomField(match[1]); !ok {
			return nil, fmt.Errorf("%w: account name template references unknown field %q", apperrors.ErrValidation, match[1])
		}
	}

	if entityType.AccountTypeID > 0 {
		if _, err := s.accountTypeRepo.FindAccountTypeByID(ctx, entityType.AccountTypeID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: account type %d does not exist", apperrors.ErrValidation, entityType.AccountTypeID)
			}
			s.LogError(ctx, err, "Failed to find account type", slog.Int64("account_type_id", entityType.AccountTypeID))
			return nil, err
		}
	}

	entityType.Stamp(userID, time.Now())
	id, err := s.entityTypeRepo.SaveEntityType(ctx, entityType)
	if err != nil {
		s.LogError(ctx, err, "Failed to save entity type", slog.String("name", entityType.Name))
		return nil, err
	}
	entityType.ID = id
	s.cache.InvalidateEntityType(id)

	s.LogInfo(ctx, "Entity type created", slog.Int64("entity_type_id", id), slog.String("name", entityType.Name))
	return &entityType, nil
}

func (s *entityTypeService) GetEntityTypeByID(ctx context.Context, entityTypeID int64) (*domain.EntityType, error) {
	entityType, err := s.entityTypeRepo.FindEntityTypeByID(ctx, entityTypeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entity type", slog.Int64("entity_type_id", entityTypeID))
		}
		return nil, err
	}
	return entityType, nil
}

func (s *entityTypeService) ListEntityTypes(ctx context.Context) ([]domain.EntityType, error) {
	entityTypes, err := s.entityTypeRepo.ListEntityTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entity types")
		return nil, err
	}
	return entityTypes, nil
}

// checkValidationTag rejects tags the validator does not know. The validator panics on
// those, so the check runs it once against an empty value.
func checkValidationTag(tag string) (err error) {
	if tag == "" {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid validation tag %q: %v", tag, r)
		}
	}()
	_ = tagValidator.Var("", "omitempty,"+tag)
	return nil
}
