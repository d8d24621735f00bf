package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/visadesk/visa_desk_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the full set of pgx-backed repositories over one pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(db),
		ProfileRepo: newPgxProfileRepository(db),
		FileRepo:    newPgxFileRepository(db),
	}
}
