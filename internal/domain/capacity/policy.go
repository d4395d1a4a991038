package capacity

import (
	"errors"

	"lift-reservation/internal/domain/booking"
)

var ErrNegativeCapacity = errors.New("capacity total cannot be negative")

// Key identifies one capacity row.
type Key struct {
	ResortID booking.ResortID
	Date     booking.Date
	Slot     booking.Slot
}

// Policy decides the total for a capacity row the first time it is touched.
// Reserve and availability both consult it, so an untouched slot reports the
// same number either way.
type Policy struct {
	defaultTotal int32
	overrides    map[booking.ResortID]int32
}

func NewPolicy(defaultTotal int32, overrides map[string]int32) (*Policy, error) {
	if defaultTotal < 0 {
		return nil, ErrNegativeCapacity
	}
	p := &Policy{
		defaultTotal: defaultTotal,
		overrides:    make(map[booking.ResortID]int32, len(overrides)),
	}
	for resort, total := range overrides {
		if total < 0 {
			return nil, ErrNegativeCapacity
		}
		id, err := booking.NewResortID(resort)
		if err != nil {
			return nil, err
		}
		p.overrides[id] = total
	}
	return p, nil
}

func (p *Policy) TotalFor(resortID booking.ResortID) int32 {
	if total, ok := p.overrides[resortID]; ok {
		return total
	}
	return p.defaultTotal
}

// Record mirrors a stored capacity row.
type Record struct {
	Key       Key
	Total     int32
	Remaining int32
}

// Availability is the remaining count per slot for one resort day.
type Availability map[booking.Slot]int32

// BuildAvailability fills slots without a stored record from the policy and clamps at zero.
func BuildAvailability(policy *Policy, resortID booking.ResortID, records []Record) Availability {
	out := make(Availability, len(booking.AllSlots))
	for _, slot := range booking.AllSlots {
		out[slot] = policy.TotalFor(resortID)
	}
	for _, r := range records {
		if !r.Key.Slot.IsValid() {
			continue
		}
		out[r.Key.Slot] = max(r.Remaining, 0)
	}
	return out
}
