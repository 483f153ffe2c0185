package room

import (
	"errors"
	"fmt"
)

// Config describes one game type: how many seats a room has and the deck it
// starts with. A matching request's gameID selects the config of the same
// name when one exists; everything else gets the default two-seat empty deck.
type Config struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Seats       int    `json:"seats"`
	Deck        []Card `json:"deck,omitempty"`
}

// MaxSeats bounds configured seat counts. The dispatcher validates the
// `next` parameter against the room's actual seat count, so this only guards
// against nonsense configuration files.
const MaxSeats = 8

var ErrNilConfig = errors.New("config cannot be nil")

// ValidateConfig checks a room configuration for structural problems.
func ValidateConfig(c *Config) error {
	if c == nil {
		return ErrNilConfig
	}
	if c.Name == "" {
		return fmt.Errorf("config name is required")
	}
	if c.Seats < 2 || c.Seats > MaxSeats {
		return fmt.Errorf("seats must be between 2 and %d, got %d", MaxSeats, c.Seats)
	}
	for i, card := range c.Deck {
		if card == nil {
			return fmt.Errorf("deck entry %d is null", i)
		}
	}
	return nil
}

// DefaultConfig returns the built-in fallback: two seats, empty deck. Players
// seed the deck themselves with add-cards-to-deck.
func DefaultConfig() *Config {
	return &Config{
		Name:        "default",
		Description: "Two-seat room with an empty deck",
		Seats:       DefaultSeats,
	}
}
