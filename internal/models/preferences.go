package models

import (
	"errors"
	"fmt"
)

// ErrInvalidPreferences wraps every preference validation failure.
var ErrInvalidPreferences = errors.New("invalid preferences")

var (
	themes      = []string{"light", "dark"}
	fonts       = []string{"Inter", "Arial", "Times New Roman", "Roboto", "Georgia"}
	fontWeights = []string{"normal", "bold"}
	iconSizes   = []string{"medium", "large"}
)

// Preferences are the per-card display and accessibility settings.
type Preferences struct {
	Theme        string `json:"theme" db:"theme"`
	Font         string `json:"font" db:"font"`
	FontWeight   string `json:"font_weight" db:"font_weight"`
	IconSize     string `json:"icon_size" db:"icon_size"`
	TextToSpeech bool   `json:"text_to_speech" db:"text_to_speech"`
}

// DefaultPreferences is what a card sees before it saves anything.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:        "light",
		Font:         "Inter",
		FontWeight:   "normal",
		IconSize:     "medium",
		TextToSpeech: false,
	}
}

// Validate checks every field against the options the kiosk offers.
func (p Preferences) Validate() error {
	checks := []struct {
		field, value string
		allowed      []string
	}{
		{"theme", p.Theme, themes},
		{"font", p.Font, fonts},
		{"font_weight", p.FontWeight, fontWeights},
		{"icon_size", p.IconSize, iconSizes},
	}
	for _, c := range checks {
		if !oneOf(c.value, c.allowed) {
			return fmt.Errorf("%w: %s %q", ErrInvalidPreferences, c.field, c.value)
		}
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}
