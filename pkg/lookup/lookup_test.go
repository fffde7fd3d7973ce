package lookup

import (
	"strings"
	"testing"
)

func TestNarrator(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantInText string
	}{
		{"known narrator", "Bukhari", "Muhammad ibn Ismail al-Bukhari"},
		{"case and whitespace insensitive", "  ABU HURAIRAH ", "Abd al-Rahman ibn Sakhr al-Dawsi"},
		{"unknown narrator", "Somebody Else", "I don't have detailed information"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Narrator(tt.query)
			if !strings.Contains(got, tt.wantInText) {
				t.Errorf("Narrator(%q) = %q, want it to contain %q", tt.query, got, tt.wantInText)
			}
		})
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantInText string
	}{
		{"sahih", "Sahih", "continuous chain of trustworthy narrators"},
		{"mutawatir", "mutawatir", "fabrication is impossible"},
		{"unknown term", "gharib", "The main classifications are"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classification(tt.query)
			if !strings.Contains(got, tt.wantInText) {
				t.Errorf("Classification(%q) = %q, want it to contain %q", tt.query, got, tt.wantInText)
			}
		})
	}
}
