package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Property types accepted by the marketplace. The backend rejects anything
// outside this set, so forms offer exactly these values.
const (
	TypeBuy        = "Buy"
	TypeRent       = "Rent"
	TypeCommercial = "Commercial"
	TypePG         = "PG"
	TypePlot       = "Plot"
	TypeLuxury     = "Luxury"
	TypeShortStay  = "ShortStay"
	TypeNew        = "New"
)

// PropertyTypes lists every valid listing type in display order.
var PropertyTypes = []string{
	TypeBuy, TypeRent, TypeCommercial, TypePG,
	TypePlot, TypeLuxury, TypeShortStay, TypeNew,
}

// ValidPropertyType reports whether t is one of the fixed listing types.
func ValidPropertyType(t string) bool {
	for _, pt := range PropertyTypes {
		if t == pt {
			return true
		}
	}
	return false
}

// Property is a single listing as returned by the backend API.
type Property struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Price       Price       `json:"price"`
	City        string      `json:"city"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Features    FeatureList `json:"features"`
	Images      ImageList   `json:"images"`
	Address     string      `json:"address,omitempty"`
	Area        string      `json:"area,omitempty"`
	Latitude    *float64    `json:"latitude,omitempty"`
	Longitude   *float64    `json:"longitude,omitempty"`
	Owner       *User       `json:"owner,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// HasLocation reports whether the listing carries usable coordinates.
func (p *Property) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Price is a decimal amount. The backend serializes decimals as either a
// JSON number or a quoted string ("18000.00"), so decoding accepts both.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	var raw json.Number
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = json.Number(s)
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f, err := strconv.ParseFloat(raw.String(), 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", raw.String(), err)
	}
	*p = Price(f)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

// FeatureList holds a property's feature names. The API emits features in
// two shapes, plain strings or {"id":..,"name":..} records; both normalize
// to a flat name slice at decode time.
type FeatureList []string

func (fl *FeatureList) UnmarshalJSON(data []byte) error {
	names, err := normalizeUnion(data, "name")
	if err != nil {
		return fmt.Errorf("features: %w", err)
	}
	*fl = names
	return nil
}

// Contains reports whether the list holds the named feature.
func (fl FeatureList) Contains(name string) bool {
	for _, f := range fl {
		if f == name {
			return true
		}
	}
	return false
}

// ImageList holds a property's image URLs, normalized from either plain
// strings or {"id":..,"image":..} records.
type ImageList []string

func (il *ImageList) UnmarshalJSON(data []byte) error {
	urls, err := normalizeUnion(data, "image")
	if err != nil {
		return fmt.Errorf("images: %w", err)
	}
	*il = urls
	return nil
}

// normalizeUnion flattens a JSON array whose elements are either strings or
// objects carrying the value under key. JSON null decodes to an empty list.
func normalizeUnion(data []byte, key string) ([]string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		var rec map[string]json.RawMessage
		if err := json.Unmarshal(item, &rec); err != nil {
			return nil, fmt.Errorf("element is neither string nor record: %s", item)
		}
		if err := json.Unmarshal(rec[key], &s); err != nil {
			return nil, fmt.Errorf("record missing %q field: %s", key, item)
		}
		out = append(out, s)
	}
	return out, nil
}

// PropertyDraft is the payload for creating or replacing a listing. The
// owner is always the session user's id; the backend assigns identity.
type PropertyDraft struct {
	Title       string   `json:"title" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	City        string   `json:"city" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Features    []string `json:"features"`
	Images      []string `json:"images"`
	Address     string   `json:"address,omitempty"`
	Area        string   `json:"area,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Owner       int      `json:"owner"`
}
