package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferences_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Preferences)
		wantErr bool
	}{
		{name: "defaults", mutate: func(p *Preferences) {}},
		{name: "dark bold large", mutate: func(p *Preferences) {
			p.Theme, p.FontWeight, p.IconSize, p.TextToSpeech = "dark", "bold", "large", true
		}},
		{name: "font with spaces", mutate: func(p *Preferences) { p.Font = "Times New Roman" }},
		{name: "unknown theme", mutate: func(p *Preferences) { p.Theme = "blue" }, wantErr: true},
		{name: "unknown font", mutate: func(p *Preferences) { p.Font = "Comic Sans" }, wantErr: true},
		{name: "empty weight", mutate: func(p *Preferences) { p.FontWeight = "" }, wantErr: true},
		{name: "small icons", mutate: func(p *Preferences) { p.IconSize = "small" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPreferences()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPreferences)
				return
			}
			assert.NoError(t, err)
		})
	}
}
