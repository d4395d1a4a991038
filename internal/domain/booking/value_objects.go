package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidSlot     = errors.New("slot must be AM or PM")
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidResortID = errors.New("resort id must be 1-64 chars of [a-z0-9-]")
)

const DateLayout = "2006-01-02"

// Slot is a fixed half-day window. Windows never overlap.
type Slot string

const (
	SlotAM Slot = "AM"
	SlotPM Slot = "PM"
)

// AllSlots is ordered by start time.
var AllSlots = []Slot{SlotAM, SlotPM}

type window struct {
	startMin int
	endMin   int
}

var slotWindows = map[Slot]window{
	SlotAM: {startMin: 8*60 + 30, endMin: 12*60 + 30},
	SlotPM: {startMin: 12*60 + 30, endMin: 16*60 + 30},
}

func ParseSlot(s string) (Slot, error) {
	slot := Slot(strings.ToUpper(strings.TrimSpace(s)))
	if !slot.IsValid() {
		return "", ErrInvalidSlot
	}
	return slot, nil
}

func (s Slot) IsValid() bool {
	_, ok := slotWindows[s]
	return ok
}

func (s Slot) String() string {
	return string(s)
}

// Window returns the half-open [start, end) wall-clock interval of the slot on date in loc.
func (s Slot) Window(d Date, loc *time.Location) (time.Time, time.Time) {
	w := slotWindows[s]
	midnight := time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 0, 0, 0, 0, loc)
	return midnight.Add(time.Duration(w.startMin) * time.Minute),
		midnight.Add(time.Duration(w.endMin) * time.Minute)
}

// Date is a civil calendar date with no zone attached.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

// DateOf returns the civil date of t as observed in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()
	return NewDate(y, m, d)
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) IsZero() bool                 { return d.t.IsZero() }
func (d Date) Before(other Date) bool       { return d.t.Before(other.t) }
func (d Date) Equal(other Date) bool        { return d.t.Equal(other.t) }
func (d Date) String() string               { return d.t.Format(DateLayout) }
func (d Date) Time() time.Time              { return d.t }
func (d Date) AddDays(days int) Date        { return Date{t: d.t.AddDate(0, 0, days)} }
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

var resortIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

// ResortID references a resort held by the external reference-data service.
type ResortID string

func NewResortID(s string) (ResortID, error) {
	s = strings.TrimSpace(s)
	if !resortIDPattern.MatchString(s) {
		return "", ErrInvalidResortID
	}
	return ResortID(s), nil
}

func (r ResortID) String() string {
	return string(r)
}
