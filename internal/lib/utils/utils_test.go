package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces", "ABC Company", "abc-company"},
		{"punctuation runs collapse", "Big -- Blue!!", "big-blue"},
		{"leading and trailing separators", "  Café & Co. ", "cafe-co"},
		{"digits kept", "3M Company 2", "3m-company-2"},
		{"already a slug", "apple", "apple"},
		{"no letters or digits", "!!! ???", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugifyIsDeterministic(t *testing.T) {
	assert.Equal(t, Slugify("International Business Machines"), Slugify("International Business Machines"))
}
