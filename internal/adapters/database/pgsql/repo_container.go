package pgsql

import (
	portsrepo "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntityRepo:      newPgxEntityRepository(dbPool),
		EntityTypeRepo:  newPgxEntityTypeRepository(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool),
		AccountTypeRepo: newPgxAccountTypeRepository(dbPool),
		TicketTypeRepo:  newPgxTicketTypeRepository(dbPool),
		TicketRepo:      newPgxTicketRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
