package response

import (
	"time"

	"lift-reservation/internal/usecase/commands"
	"lift-reservation/internal/usecase/queries"
)

type TicketResponse struct {
	TicketID   string `json:"ticketId"`
	BookingID  string `json:"bookingId"`
	ResortID   string `json:"resortId"`
	Date       string `json:"date"`
	Slot       string `json:"slot"`
	QRPayload  string `json:"qrPayload"`
	QRImageURL string `json:"qrImageUrl,omitempty"`
	IssuedAt   int64  `json:"issuedAt"`
}

func FromTicketResult(r *commands.TicketResult) *TicketResponse {
	return &TicketResponse{
		TicketID:   r.TicketID.String(),
		BookingID:  r.BookingID.String(),
		ResortID:   r.ResortID,
		Date:       r.Date,
		Slot:       r.Slot,
		QRPayload:  r.QRPayload,
		QRImageURL: r.QRImageURL,
		IssuedAt:   r.IssuedAt.Unix(),
	}
}

type BookingResponse struct {
	ID         string `json:"id"`
	ResortID   string `json:"resortId"`
	Date       string `json:"date"`
	Slot       string `json:"slot"`
	Status     string `json:"status"`
	TicketID   string `json:"ticketId"`
	QRPayload  string `json:"qrPayload"`
	CreatedAt  int64  `json:"createdAt"`
	CanceledAt *int64 `json:"canceledAt,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:         v.ID.String(),
		ResortID:   v.ResortID,
		Date:       v.Date,
		Slot:       v.Slot,
		Status:     v.Status,
		TicketID:   v.TicketID.String(),
		QRPayload:  v.QRPayload,
		CreatedAt:  v.CreatedAt.Unix(),
		CanceledAt: unixOrNil(v.CanceledAt),
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

type BookingListItemResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	Slot       string `json:"slot"`
	Status     string `json:"status"`
	TicketID   string `json:"ticketId"`
	CreatedAt  int64  `json:"createdAt"`
	CanceledAt *int64 `json:"canceledAt,omitempty"`
}

func FromBookingList(items []*queries.BookingListItem) []*BookingListItemResponse {
	res := make([]*BookingListItemResponse, len(items))
	for i, it := range items {
		res[i] = &BookingListItemResponse{
			ID:         it.ID.String(),
			UserID:     it.UserID.String(),
			Slot:       it.Slot,
			Status:     it.Status,
			TicketID:   it.TicketID.String(),
			CreatedAt:  it.CreatedAt.Unix(),
			CanceledAt: unixOrNil(it.CanceledAt),
		}
	}
	return res
}

type CancelResponse struct {
	Status string `json:"status"`
}

func unixOrNil(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	u := t.Unix()
	return &u
}

type TicketClaimsResponse struct {
	TicketID string `json:"ticketId"`
	ResortID string `json:"resortId"`
	Date     string `json:"date"`
	Slot     string `json:"slot"`
}

func FromTicketClaims(v *queries.TicketClaimsView) *TicketClaimsResponse {
	return &TicketClaimsResponse{
		TicketID: v.TicketID.String(),
		ResortID: v.ResortID,
		Date:     v.Date,
		Slot:     v.Slot,
	}
}
