package codes

import (
	"strings"
	"testing"
)

func TestGenerateBookingCode(t *testing.T) {
	code, err := GenerateBookingCode()
	if err != nil {
		t.Fatalf("GenerateBookingCode() error = %v", err)
	}

	if len(code) != BookingCodeLength {
		t.Errorf("GenerateBookingCode() length = %d, want %d", len(code), BookingCodeLength)
	}

	for _, c := range code {
		if !strings.ContainsRune(charsetBookingCode, c) {
			t.Errorf("GenerateBookingCode() produced character %q outside charset", c)
		}
	}

	// Ambiguous characters are excluded from the charset
	for _, c := range "01IOL" {
		if strings.ContainsRune(code, c) {
			t.Errorf("GenerateBookingCode() contains ambiguous character %q", c)
		}
	}
}

func TestGenerateBookingCodeUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := GenerateBookingCode()
		if err != nil {
			t.Fatalf("GenerateBookingCode() error = %v", err)
		}
		if seen[code] {
			t.Fatalf("GenerateBookingCode() produced duplicate %q", code)
		}
		seen[code] = true
	}
}

func TestGenerateReceiptReference(t *testing.T) {
	ref, err := GenerateReceiptReference()
	if err != nil {
		t.Fatalf("GenerateReceiptReference() error = %v", err)
	}

	if len(ref) != 16 {
		t.Errorf("GenerateReceiptReference() length = %d, want 16", len(ref))
	}

	if strings.ContainsAny(ref, "+/=") {
		t.Errorf("GenerateReceiptReference() not URL-safe: %q", ref)
	}
}

func TestGenerateNumericCode(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"length 4", 4, false},
		{"length 6", 6, false},
		{"zero length", 0, true},
		{"negative length", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := GenerateNumericCode(tt.length)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GenerateNumericCode(%d) error = %v, wantErr %v", tt.length, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(code) != tt.length {
				t.Errorf("GenerateNumericCode(%d) length = %d", tt.length, len(code))
			}
			for _, c := range code {
				if c < '0' || c > '9' {
					t.Errorf("GenerateNumericCode(%d) produced non-digit %q", tt.length, c)
				}
			}
		})
	}
}

func TestFormatAndParseCode(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		groupSize int
		want      string
	}{
		{"groups of four", "ABCD1234", 4, "ABCD-1234"},
		{"uneven tail", "ABCDE", 2, "AB-CD-E"},
		{"shorter than group", "AB", 4, "AB"},
		{"zero group size", "ABCD", 0, "ABCD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCode(tt.code, tt.groupSize)
			if got != tt.want {
				t.Errorf("FormatCode(%q, %d) = %q, want %q", tt.code, tt.groupSize, got, tt.want)
			}
			if back := ParseCode(got); back != strings.ToUpper(tt.code) {
				t.Errorf("ParseCode(%q) = %q, want %q", got, back, strings.ToUpper(tt.code))
			}
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	if got := NormalizeCode("  k7mnp2qr "); got != "K7MNP2QR" {
		t.Errorf("NormalizeCode() = %q, want K7MNP2QR", got)
	}
}
