package phone

import "testing"

func TestForWhatsApp(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		countryCode string
		want        string
	}{
		{name: "national format", input: "0812-3456-7890", want: "6281234567890"},
		{name: "plus prefix", input: "+62 812 3456 7890", want: "6281234567890"},
		{name: "already international", input: "6281234567890", want: "6281234567890"},
		{name: "double zero prefix", input: "0062 812 3456", want: "628123456"},
		{name: "trunk zero after country code", input: "62081234567", want: "6281234567"},
		{name: "custom country code", input: "050-123-4567", countryCode: "972", want: "972501234567"},
		{name: "parentheses", input: "(0812) 345 678", want: "62812345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForWhatsApp(tt.input, tt.countryCode)
			if got != tt.want {
				t.Errorf("ForWhatsApp(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
