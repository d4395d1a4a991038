package queries

import (
	"context"
	"strings"

	"lift-reservation/internal/domain/ticket"
	"lift-reservation/internal/pkg/errs"
)

// ErrInvalidTicket covers payloads that are not ours: bad framing or a bad signature.
var ErrInvalidTicket = errs.New("invalid ticket")

// TicketVerifier is satisfied by *ticket.Issuer.
type TicketVerifier interface {
	Verify(payload string) (*ticket.Claims, error)
}

type TicketQueries interface {
	// Verify checks a scanned QR payload offline; it does not consult the store.
	Verify(ctx context.Context, payload string) (*TicketClaimsView, error)
}

type ticketQueriesImpl struct {
	verifier TicketVerifier
}

func NewTicketQueries(verifier TicketVerifier) TicketQueries {
	return &ticketQueriesImpl{verifier: verifier}
}

func (q *ticketQueriesImpl) Verify(_ context.Context, payload string) (*TicketClaimsView, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, errs.Mark(errs.New("empty ticket payload"), ErrInvalidQuery)
	}

	claims, err := q.verifier.Verify(payload)
	if err != nil {
		if errs.Is(err, ticket.ErrMalformedPayload) || errs.Is(err, ticket.ErrSignatureMismatch) {
			return nil, errs.Mark(err, ErrInvalidTicket)
		}
		return nil, err
	}
	return &TicketClaimsView{
		TicketID: claims.TicketID,
		ResortID: claims.ResortID,
		Date:     claims.Date,
		Slot:     claims.Slot,
	}, nil
}
