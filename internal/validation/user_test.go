package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid", "movie_fan123", false},
		{"Exactly Min Length", "abc", false},
		{"Exactly Max Length", strings.Repeat("a", 50), false},
		{"Too Short", "ab", true},
		{"Too Long", strings.Repeat("a", 51), true},
		{"Illegal Chars", "user@123", true},
		{"Space", "movie fan", true},
		{"Starts Underscore", "_user", true},
		{"Ends Underscore", "user_", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "watchlist42", false},
		{"Exactly Min Length", "abcdefg1", false},
		{"Too Short", "abc1234", true},
		{"Too Long", strings.Repeat("a", 128) + "1", true},
		{"No Digit", "onlyletters", true},
		{"No Letter", "1234567890", true},
		{"Unicode Letters", "pässwörter1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
