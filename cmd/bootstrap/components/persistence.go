package components

import (
	"lift-reservation/internal/infra/readstore"
	sqlc "lift-reservation/internal/infra/sqlc/generated"
	"lift-reservation/internal/infra/uow"
	"lift-reservation/internal/pkg/config"
	"lift-reservation/internal/usecase/queries"
	"lift-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Capacity
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CapacityReadQueries)),
		),
		fx.Annotate(
			readstore.NewCapacityReadStore,
			fx.As(new(queries.CapacityReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q, cfg.DB.OperationTimeout)
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
