package messaging

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"already_normalized", "5531999887766", "5531999887766"},
		{"eleven_local_digits", "31999887766", "5531999887766"},
		{"missing_ninth_digit", "3199887766", "5531999887766"},
		{"formatted_input", "(31) 99988-7766", "5531999887766"},
		{"formatted_without_ninth", "(31) 9988-7766", "5531999887766"},
		{"plus_prefix", "+55 31 99988-7766", "5531999887766"},
		{"empty", "", ""},
		{"only_symbols", "() -", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.raw, "55"); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBarePhone(t *testing.T) {
	if got := BarePhone("5531999887766", "55"); got != "31999887766" {
		t.Errorf("BarePhone = %q", got)
	}
	if got := BarePhone("31999887766", "55"); got != "31999887766" {
		t.Errorf("BarePhone without prefix = %q", got)
	}
}
