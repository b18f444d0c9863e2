package store

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

// TripKind distinguishes one-way trips from trips with a return.
type TripKind string

const (
	// KindOneWay has a pickup only.
	KindOneWay TripKind = "oneway"
	// KindReturn has a pickup and a return.
	KindReturn TripKind = "return"
)

var (
	// ErrNoPickup is returned when a trip has no pickup date.
	ErrNoPickup = errors.New("store: pickup date required")
	// ErrNoReturn is returned when a return trip has no return date.
	ErrNoReturn = errors.New("store: return date required")
	// ErrReturnBeforePickup is returned when the return precedes the pickup.
	ErrReturnBeforePickup = errors.New("store: return before pickup")
	// ErrUnknownKind is returned for an unrecognised trip kind.
	ErrUnknownKind = errors.New("store: unknown trip kind")
	// ErrNotFound is returned when no trip has the requested ID.
	ErrNotFound = errors.New("store: trip not found")
)

// Trip is a confirmed booking.
type Trip struct {
	ID      string    `json:"id,omitempty"`
	Kind    TripKind  `json:"kind"`
	Pickup  time.Time `json:"pickup"`
	Return  time.Time `json:"return"`
	Created time.Time `json:"created"`
}

// Validate checks the trip is internally consistent.
func (t *Trip) Validate() error {
	if t.Pickup.IsZero() {
		return ErrNoPickup
	}
	switch t.Kind {
	case KindOneWay:
		return nil
	case KindReturn:
		if t.Return.IsZero() {
			return ErrNoReturn
		}
		if t.Return.Before(t.Pickup) {
			return ErrReturnBeforePickup
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, t.Kind)
}

// Persistence defines the persistence contract for trips.
type Persistence interface {
	List(ctx context.Context) []*Trip
	Get(ctx context.Context, id string) (*Trip, error)
	Store(t *Trip) error
	Delete(t *Trip) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*Trip, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	t := &Trip{}
	if err := json.Unmarshal(val, t); err != nil {
		return nil, err
	}
	t.ID = keyToPathTransform(key).FileName
	return t, nil
}

func (p *persistence) List(ctx context.Context) []*Trip {
	all := make([]*Trip, 0)
	for key := range p.d.Keys(ctx.Done()) {
		t, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, t)
	}
	sortTrips(all)
	return all
}

func (p *persistence) Get(ctx context.Context, id string) (*Trip, error) {
	id = strings.TrimSpace(id)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	for key := range p.d.Keys(ctx.Done()) {
		if keyToPathTransform(key).FileName != id {
			continue
		}
		return p.read(key)
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (p *persistence) Store(t *Trip) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.Created.IsZero() {
		t.Created = time.Now()
	}
	key := toKey(t)
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

func (p *persistence) Delete(t *Trip) error {
	if t.ID == "" {
		return fmt.Errorf("%w: empty id", ErrNotFound)
	}
	return p.d.Erase(toKey(t))
}

const layoutISO = "2006-01-02"

// sortTrips orders by pickup, then ID.
func sortTrips(trips []*Trip) {
	sort.SliceStable(trips, func(i, j int) bool {
		left, right := trips[i], trips[j]
		if left.Pickup.Equal(right.Pickup) {
			return left.ID < right.ID
		}
		return left.Pickup.Before(right.Pickup)
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `kind-yyyy-mm-dd-id`, filing trips by pickup day.
func toKey(t *Trip) string {
	then := t.Pickup.Format(layoutISO)

	if t.ID == "" {
		b, _ := json.Marshal(t)
		id := md5.Sum(b)
		t.ID = fmt.Sprintf("%x", id[:8])
	}

	return fmt.Sprintf("%s-%s-%s", t.Kind, then, t.ID)
}
