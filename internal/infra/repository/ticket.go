package repository

import (
	"context"

	"lift-reservation/internal/domain/ticket"
	"lift-reservation/internal/infra"
	"lift-reservation/internal/infra/repository/converter"
	sqlc "lift-reservation/internal/infra/sqlc/generated"
)

type TicketWriteQueries interface {
	CreateTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTicketParams) error
}

type TicketRepository struct {
	queries TicketWriteQueries
	db      sqlc.DBTX
}

func NewTicketRepository(queries TicketWriteQueries, db sqlc.DBTX) *TicketRepository {
	return &TicketRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TicketRepository) Create(ctx context.Context, tx sqlc.DBTX, t *ticket.Ticket) error {
	if err := r.queries.CreateTicket(ctx, tx, converter.TicketToInfra(t)); err != nil {
		return infra.WrapRepoErr("failed to create ticket", err)
	}
	return nil
}
