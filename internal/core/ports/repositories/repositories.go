package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	EntityRepo      EntityRepositoryFacade
	EntityTypeRepo  EntityTypeRepositoryFacade
	AccountRepo     AccountRepositoryFacade
	AccountTypeRepo AccountTypeRepositoryFacade
	TicketTypeRepo  TicketTypeRepositoryFacade
	TicketRepo      TicketWriter
	UserRepo        UserRepositoryFacade
}
