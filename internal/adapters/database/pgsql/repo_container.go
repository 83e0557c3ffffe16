package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/stackscout/stackscout/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JobRepo:          newPgxJobRepository(pool),
		UserRepo:         newPgxUserRepository(pool),
		NotificationRepo: newPgxNotificationRepository(pool),
		SearchRepo:       newPgxSearchRepository(pool),
	}
}
