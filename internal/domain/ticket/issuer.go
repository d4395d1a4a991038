package ticket

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/pkg/clock"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

const payloadPrefix = "LT1"

var (
	ErrEmptySigningKey   = errors.New("ticket signing key is required")
	ErrBookingNotActive  = errors.New("tickets are only issued for confirmed bookings")
	ErrMalformedPayload  = errors.New("malformed ticket payload")
	ErrSignatureMismatch = errors.New("ticket signature mismatch")
)

// Ticket is proof of reservation, bound 1:1 to a confirmed booking and never mutated.
type Ticket struct {
	id        uuid.UUID
	bookingID uuid.UUID
	qrPayload string
	issuedAt  time.Time
}

func Reconstruct(id, bookingID uuid.UUID, qrPayload string, issuedAt time.Time) *Ticket {
	return &Ticket{id: id, bookingID: bookingID, qrPayload: qrPayload, issuedAt: issuedAt}
}

func (t *Ticket) ID() uuid.UUID        { return t.id }
func (t *Ticket) BookingID() uuid.UUID { return t.bookingID }
func (t *Ticket) QRPayload() string    { return t.qrPayload }
func (t *Ticket) IssuedAt() time.Time  { return t.issuedAt }

// Claims is the signed body of a QR payload. Field order is the canonical order.
type Claims struct {
	TicketID uuid.UUID `json:"tid"`
	ResortID string    `json:"rid"`
	Date     string    `json:"date"`
	Slot     string    `json:"slot"`
}

// Issuer mints tickets. It reads booking fields only and has no store access.
type Issuer struct {
	key   []byte
	clock clock.Clock
	newID func() (uuid.UUID, error)
}

func NewIssuer(signingKey string, clk clock.Clock) (*Issuer, error) {
	if signingKey == "" {
		return nil, ErrEmptySigningKey
	}
	key := []byte(signingKey)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	return &Issuer{key: key, clock: clk, newID: uuid.NewRandom}, nil
}

func (i *Issuer) Issue(b *booking.Booking) (*Ticket, error) {
	if !b.IsActive() {
		return nil, ErrBookingNotActive
	}
	id, err := i.newID()
	if err != nil {
		return nil, err
	}
	payload, err := i.Payload(Claims{
		TicketID: id,
		ResortID: b.ResortID().String(),
		Date:     b.Date().String(),
		Slot:     b.Slot().String(),
	})
	if err != nil {
		return nil, err
	}
	return &Ticket{
		id:        id,
		bookingID: b.ID(),
		qrPayload: payload,
		issuedAt:  i.clock.Now(),
	}, nil
}

// Payload is deterministic: equal claims under the same key give the same string.
func (i *Issuer) Payload(c Claims) (string, error) {
	body, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	sig, err := i.sign(body)
	if err != nil {
		return "", err
	}
	enc := base64.RawURLEncoding
	return payloadPrefix + "." + enc.EncodeToString(body) + "." + enc.EncodeToString(sig), nil
}

// Verify checks a scanned payload and returns its claims.
func (i *Issuer) Verify(payload string) (*Claims, error) {
	parts := strings.Split(payload, ".")
	if len(parts) != 3 || parts[0] != payloadPrefix {
		return nil, ErrMalformedPayload
	}
	enc := base64.RawURLEncoding
	body, err := enc.DecodeString(parts[1])
	if err != nil {
		return nil, ErrMalformedPayload
	}
	sig, err := enc.DecodeString(parts[2])
	if err != nil {
		return nil, ErrMalformedPayload
	}
	want, err := i.sign(body)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare(sig, want) != 1 {
		return nil, ErrSignatureMismatch
	}
	var c Claims
	if err := json.Unmarshal(body, &c); err != nil {
		return nil, ErrMalformedPayload
	}
	return &c, nil
}

func (i *Issuer) sign(body []byte) ([]byte, error) {
	h, err := blake2b.New256(i.key)
	if err != nil {
		return nil, err
	}
	h.Write(body)
	return h.Sum(nil), nil
}
