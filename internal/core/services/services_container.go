package services

import (
	"fmt"

	portsrepo "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/repositories"
	portssvc "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/services"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}

	// Permissions first; the other services check against it.
	container.Permission = NewPermissionService(repos.UserRepo)

	cache, err := NewCacheService(cfg.TypeCacheSize, repos.EntityTypeRepo, repos.TicketTypeRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to create type cache: %w", err)
	}
	container.Cache = cache

	container.Entity = NewEntityService(repos.EntityRepo)
	container.EntityType = NewEntityTypeService(repos.EntityTypeRepo, repos.AccountTypeRepo, cache, container.Permission)
	container.Account = NewAccountService(repos.AccountRepo, repos.AccountTypeRepo, container.Permission)
	container.Ticket = NewTicketService(repos.TicketTypeRepo, repos.TicketRepo, repos.EntityTypeRepo, cache, container.Permission)
	container.User = NewUserService(repos.UserRepo, cfg.DefaultPermissions)
	container.AppState = NewApplicationStateService()

	return container, nil
}
