// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	domainerrors "geoo/internal/domain/errors"
)

// NeverExpire marks a region that stays registered until explicitly removed.
const NeverExpire time.Duration = -1

// MaxExpirationMs is the longest expiration in milliseconds a time.Duration can hold.
const MaxExpirationMs = math.MaxInt64 / int64(time.Millisecond)

// ExpirationFromMillis converts a millisecond expiration. Negative values mean
// never; values beyond MaxExpirationMs are rejected instead of wrapping.
func ExpirationFromMillis(ms int64) (time.Duration, error) {
	if ms < 0 {
		return NeverExpire, nil
	}
	if ms > MaxExpirationMs {
		return 0, domainerrors.ErrInvalidRegion.WithDetails(fmt.Sprintf("expiration_ms: must not exceed %d", MaxExpirationMs))
	}

	return time.Duration(ms) * time.Millisecond, nil
}

// LatLng is a WGS84 coordinate in degrees.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks the coordinate ranges.
func (p LatLng) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("latitude: must be between -90 and 90, got %v", p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("longitude: must be between -180 and 180, got %v", p.Longitude)
	}

	return nil
}

// TransitionKind identifies a boundary crossing. The values match the
// platform's transition codes; anything else read off the wire is kept
// as-is so it can be reported as unrecognized.
type TransitionKind int

const (
	TransitionError TransitionKind = -1
	TransitionEnter TransitionKind = 1
	TransitionExit  TransitionKind = 2
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionEnter:
		return "enter"
	case TransitionExit:
		return "exit"
	case TransitionError:
		return "error"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// TransitionSet is a bitmask of TransitionEnter and TransitionExit.
type TransitionSet int

const allTransitions = TransitionSet(TransitionEnter) | TransitionSet(TransitionExit)

// NewTransitionSet builds a set from the given kinds.
func NewTransitionSet(kinds ...TransitionKind) TransitionSet {
	var set TransitionSet
	for _, kind := range kinds {
		set |= TransitionSet(kind)
	}

	return set
}

// Has reports whether kind is part of the set.
func (s TransitionSet) Has(kind TransitionKind) bool {
	if kind != TransitionEnter && kind != TransitionExit {
		return false
	}

	return s&TransitionSet(kind) != 0
}

// Names lists the members as lower-case strings.
func (s TransitionSet) Names() []string {
	names := make([]string, 0, 2)
	if s.Has(TransitionEnter) {
		names = append(names, TransitionEnter.String())
	}
	if s.Has(TransitionExit) {
		names = append(names, TransitionExit.String())
	}

	return names
}

// ParseTransitionSet parses names such as "enter" and "exit".
func ParseTransitionSet(names []string) (TransitionSet, error) {
	var set TransitionSet
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "enter":
			set |= TransitionSet(TransitionEnter)
		case "exit":
			set |= TransitionSet(TransitionExit)
		default:
			return 0, fmt.Errorf("unknown transition %q", name)
		}
	}

	return set, nil
}

// InitialTrigger controls which events fire when monitoring starts and the
// device is already on one side of the boundary.
type InitialTrigger int

const (
	InitialTriggerNone  InitialTrigger = 0
	InitialTriggerEnter InitialTrigger = 1
	InitialTriggerExit  InitialTrigger = 2
)

// Has reports whether the policy fires the given kind at registration time.
func (t InitialTrigger) Has(kind TransitionKind) bool {
	switch kind {
	case TransitionEnter:
		return t&InitialTriggerEnter != 0
	case TransitionExit:
		return t&InitialTriggerExit != 0
	default:
		return false
	}
}

// ParseInitialTrigger accepts "enter", "exit", "none" or a comma separated mix.
func ParseInitialTrigger(value string) (InitialTrigger, error) {
	var trigger InitialTrigger
	for _, part := range strings.Split(value, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "", "none":
		case "enter":
			trigger |= InitialTriggerEnter
		case "exit":
			trigger |= InitialTriggerExit
		default:
			return 0, fmt.Errorf("unknown initial trigger %q", part)
		}
	}

	return trigger, nil
}

// Region is a circular geofence.
type Region struct {
	ID             string         `json:"id"`
	Label          string         `json:"label,omitempty"`
	Center         LatLng         `json:"center"`
	Radius         float64        `json:"radius"` // meters
	Expiration     time.Duration  `json:"expiration"`
	Triggers       TransitionSet  `json:"triggers"`
	InitialTrigger InitialTrigger `json:"initial_trigger"`
	RegisteredAt   time.Time      `json:"registered_at"`
	ExpiresAt      *time.Time     `json:"expires_at,omitempty"`
}

// Validate enforces the region invariants. maxRadius <= 0 disables the upper bound.
func (r *Region) Validate(maxRadius float64) error {
	if strings.TrimSpace(r.ID) == "" {
		return domainerrors.ErrInvalidRegion.WithDetails("id: required")
	}
	if err := r.Center.Validate(); err != nil {
		return domainerrors.ErrInvalidRegion.WithDetails(err.Error())
	}
	if r.Radius <= 0 {
		return domainerrors.ErrInvalidRegion.WithDetails("radius: must be positive")
	}
	if maxRadius > 0 && r.Radius > maxRadius {
		return domainerrors.ErrInvalidRegion.WithDetails(fmt.Sprintf("radius: must not exceed %v meters", maxRadius))
	}
	if r.Triggers == 0 {
		return domainerrors.ErrInvalidRegion.WithDetails("triggers: at least one of enter, exit is required")
	}
	if r.Triggers&^allTransitions != 0 {
		return domainerrors.ErrInvalidRegion.WithDetails("triggers: only enter and exit are supported")
	}
	if r.Expiration != NeverExpire && r.Expiration <= 0 {
		return domainerrors.ErrInvalidRegion.WithDetails("expiration: must be positive or never")
	}

	return nil
}

// NeverExpires reports whether the region has no expiration.
func (r *Region) NeverExpires() bool {
	return r.Expiration == NeverExpire
}

// Activate stamps the registration time and computes the expiry.
func (r *Region) Activate(now time.Time) {
	r.RegisteredAt = now
	r.ExpiresAt = nil
	if !r.NeverExpires() {
		expiresAt := now.Add(r.Expiration)
		r.ExpiresAt = &expiresAt
	}
}

// IsExpired reports whether the region expired at or before now.
func (r *Region) IsExpired(now time.Time) bool {
	return r.ExpiresAt != nil && !now.Before(*r.ExpiresAt)
}

// GeoURI renders the region as an RFC 5870 geo URI with uncertainty.
func (r *Region) GeoURI() string {
	return "geo:" + formatFloat(r.Center.Latitude) + "," + formatFloat(r.Center.Longitude) +
		";u=" + formatFloat(r.Radius)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
