package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Entity     EntitySvcFacade
	EntityType EntityTypeSvcFacade
	Account    AccountSvcFacade
	Ticket     TicketSvcFacade
	Permission PermissionSvcFacade
	User       UserSvcFacade
	Cache      CacheLookupSvc
	AppState   ApplicationStateSvc
}
