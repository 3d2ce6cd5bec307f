package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Locatable is anything the nearest selector can rank.
type Locatable interface {
	Pos() Position
}

// A coffee shop as listed by the remote catalog.
// Only the position takes part in ranking; ID and Name pass through untouched.
type CoffeeShop struct {
	ID   string
	Name string
	Position
}

func (s CoffeeShop) Pos() Position { return s.Position }

type coffeeShopJSON struct {
	ID   json.RawMessage `json:"id"`
	Name json.RawMessage `json:"name"`
	X    json.RawMessage `json:"x"`
	Y    json.RawMessage `json:"y"`
}

// UnmarshalJSON accepts ids, names and coordinates as JSON numbers or strings.
// A coordinate that cannot be read as a number decodes to NaN, so the shop
// is excluded from ranking instead of failing the whole catalog. A record
// that is not an object at all decodes the same way.
func (s *CoffeeShop) UnmarshalJSON(data []byte) error {
	var raw coffeeShopJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = CoffeeShop{Position: Position{X: math.NaN(), Y: math.NaN()}}
		return nil
	}

	s.ID = parseText(raw.ID)
	s.Name = parseText(raw.Name)
	s.X = parseCoordinate(raw.X)
	s.Y = parseCoordinate(raw.Y)
	return nil
}

func (s CoffeeShop) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string  `json:"id"`
		Name string  `json:"name"`
		X    float64 `json:"x"`
		Y    float64 `json:"y"`
	}{s.ID, s.Name, s.X, s.Y})
}

// parseText reads a string or number field as text. Anything else reads as "".
func parseText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}

	// Numbers keep their literal text so large ids survive.
	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		return num.String()
	}
	return ""
}

func parseCoordinate(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return math.NaN()
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}

	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
