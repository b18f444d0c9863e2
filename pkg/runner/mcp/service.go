// Package mcp serves the trip log and calendar classification over the Model
// Context Protocol.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/rangepick/pkg/calendar"
	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/printers"
	"tableflip.dev/rangepick/pkg/store"
)

var (
	// ErrOutOfBounds is returned when a pickup falls outside the booking window.
	ErrOutOfBounds = errors.New("pickup outside the booking window")
	// ErrNoPersistence is returned when the service has no trip log.
	ErrNoPersistence = errors.New("persistence is not configured")
)

// Service holds the operations shared by MCP tools and resources.
type Service struct {
	Persistence store.Persistence
	Config      store.Config
	Clock       picker.Clock
}

// TripDTO is a transport-friendly projection of a trip.
type TripDTO struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Pickup     string `json:"pickup"`
	PickupText string `json:"pickupText"`
	Return     string `json:"return,omitempty"`
	ReturnText string `json:"returnText,omitempty"`
	Nights     int    `json:"nights,omitempty"`
	Created    string `json:"created,omitempty"`
}

// BookOptions are the raw values of a booking request. Dates accept every
// layout a picker's bound input does.
type BookOptions struct {
	Kind   store.TripKind
	Pickup string
	Return string
}

// MonthOptions select and classify one month. Empty values are unset.
type MonthOptions struct {
	Month    string `json:"month"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Selected string `json:"selected"`
}

// DayDTO is one classified day.
type DayDTO struct {
	Day      int    `json:"day"`
	Date     string `json:"date"`
	Disabled bool   `json:"disabled,omitempty"`
	Selected bool   `json:"selected,omitempty"`
	Today    bool   `json:"today,omitempty"`
	Range    string `json:"range,omitempty"`
}

// MonthDTO is a classified month grid.
type MonthDTO struct {
	Month  string   `json:"month"`
	Offset int      `json:"offset"`
	Days   []DayDTO `json:"days"`
}

// NewService builds a service with the default config and the wall clock.
func NewService(p store.Persistence) *Service {
	return &Service{Persistence: p}
}

func (s *Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

func (s *Service) bounds(now time.Time) calendar.Bounds {
	cfg := s.Config
	if cfg == nil {
		cfg = store.StaticConfig{}
	}
	minDate, maxDate := store.Bounds(cfg, now)
	return calendar.Bounds{Min: minDate, Max: maxDate}
}

// ListTrips returns saved trips, optionally of one kind.
func (s *Service) ListTrips(ctx context.Context, kind store.TripKind) ([]TripDTO, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	trips := s.Persistence.List(ctx)
	out := make([]TripDTO, 0, len(trips))
	for _, t := range trips {
		if kind != "" && t.Kind != kind {
			continue
		}
		out = append(out, toDTO(t))
	}
	return out, nil
}

// GetTrip returns one trip.
func (s *Service) GetTrip(ctx context.Context, id string) (*TripDTO, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	t, err := s.Persistence.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	dto := toDTO(t)
	return &dto, nil
}

// BookTrip validates and stores a trip.
func (s *Service) BookTrip(ctx context.Context, opts BookOptions) (*TripDTO, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	now := s.now()
	loc := now.Location()

	kind := opts.Kind
	if kind == "" {
		kind = store.KindReturn
		if strings.TrimSpace(opts.Return) == "" {
			kind = store.KindOneWay
		}
	}

	trip := &store.Trip{Kind: kind, Created: now}
	if v := strings.TrimSpace(opts.Pickup); v != "" {
		t, ok := picker.ParseValue(v, loc)
		if !ok {
			return nil, fmt.Errorf("invalid pickup %q", v)
		}
		trip.Pickup = t
	}
	if v := strings.TrimSpace(opts.Return); v != "" && kind == store.KindReturn {
		t, ok := picker.ParseValue(v, loc)
		if !ok {
			return nil, fmt.Errorf("invalid return %q", v)
		}
		trip.Return = t
	}
	if err := trip.Validate(); err != nil {
		return nil, err
	}
	b := s.bounds(now)
	if !b.Contains(trip.Pickup) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, trip.Pickup.Format(picker.DateTimeLayout))
	}
	if trip.Kind == store.KindReturn && !b.Contains(trip.Return) {
		return nil, fmt.Errorf("%w: return %s", ErrOutOfBounds, trip.Return.Format(picker.DateTimeLayout))
	}

	if err := s.Persistence.Store(trip); err != nil {
		return nil, err
	}
	dto := toDTO(trip)
	return &dto, nil
}

// CancelTrip deletes a trip and returns what was removed.
func (s *Service) CancelTrip(ctx context.Context, id string) (*TripDTO, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	t, err := s.Persistence.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if err := s.Persistence.Delete(t); err != nil {
		return nil, err
	}
	dto := toDTO(t)
	return &dto, nil
}

// ClassifyMonth builds the month grid a picker would draw, using the booking
// window as bounds.
func (s *Service) ClassifyMonth(opts MonthOptions) (*MonthDTO, error) {
	now := s.now()
	loc := now.Location()
	b := s.bounds(now)

	parse := func(name, v string) (time.Time, error) {
		v = strings.TrimSpace(v)
		if v == "" {
			return time.Time{}, nil
		}
		t, ok := picker.ParseValue(v, loc)
		if !ok {
			return time.Time{}, fmt.Errorf("invalid %s %q", name, v)
		}
		return t, nil
	}

	start, err := parse("start", opts.Start)
	if err != nil {
		return nil, err
	}
	end, err := parse("end", opts.End)
	if err != nil {
		return nil, err
	}
	selected, err := parse("selected", opts.Selected)
	if err != nil {
		return nil, err
	}
	if selected.IsZero() {
		selected = b.Min
	}
	if v := strings.TrimSpace(opts.Month); v != "" {
		month, err := time.ParseInLocation("January 2006", v, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid month %q", v)
		}
		selected = calendar.WithYearMonth(selected, month.Year(), month.Month())
	}

	g := calendar.Build(calendar.GridOptions{
		Selected: selected,
		Bounds:   b,
		Range:    calendar.Range{Start: start, End: end},
		Now:      now,
	})
	out := &MonthDTO{
		Month:  g.Month.Format("January 2006"),
		Offset: g.Offset,
		Days:   make([]DayDTO, 0, len(g.Cells)),
	}
	for _, c := range g.Cells {
		day := DayDTO{
			Day:      c.Day,
			Date:     c.Date.Format("2006-01-02"),
			Disabled: c.Disabled,
			Selected: c.Selected,
			Today:    c.Today,
		}
		if c.Range != calendar.RangeNone {
			day.Range = c.Range.String()
		}
		out.Days = append(out.Days, day)
	}
	return out, nil
}

func toDTO(t *store.Trip) TripDTO {
	dto := TripDTO{
		ID:         t.ID,
		Kind:       string(t.Kind),
		Pickup:     t.Pickup.Format(time.RFC3339),
		PickupText: t.Pickup.Format(picker.DateTimeLayout),
	}
	if !t.Return.IsZero() {
		dto.Return = t.Return.Format(time.RFC3339)
		dto.ReturnText = t.Return.Format(picker.DateTimeLayout)
		dto.Nights = printers.Nights(t.Pickup, t.Return)
	}
	if !t.Created.IsZero() {
		dto.Created = t.Created.Format(time.RFC3339)
	}
	return dto
}
