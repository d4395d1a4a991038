package request

import (
	"strings"

	"lift-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ResortID string `json:"resortId" binding:"required,max=64"`
	Date     string `json:"date" binding:"required,len=10"`
	Slot     string `json:"slot" binding:"required"`
}

// ToInput leaves semantic checks (slug format, calendar date, slot window) to the usecase.
func (r CreateReservationRequest) ToInput(userID uuid.UUID) commands.ReserveInput {
	return commands.ReserveInput{
		UserID:   userID,
		ResortID: strings.TrimSpace(r.ResortID),
		Date:     strings.TrimSpace(r.Date),
		Slot:     strings.TrimSpace(r.Slot),
	}
}

type VerifyTicketRequest struct {
	QRPayload string `json:"qrPayload" binding:"required,max=1024"`
}
