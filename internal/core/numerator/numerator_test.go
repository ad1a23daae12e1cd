package numerator

import (
	"testing"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		history []string
		want    string
	}{
		{
			name:    "empty history seeds the sequence",
			history: nil,
			want:    "000001",
		},
		{
			name:    "takes max plus one",
			history: []string{"000001", "000002", "000003", "000004"},
			want:    "000005",
		},
		{
			name:    "non-numeric entries are ignored",
			history: []string{"000001", "000002", "000003", "000004", "SPECIAL"},
			want:    "000005",
		},
		{
			name:    "max wins regardless of order",
			history: []string{"000009", "000002", "000007"},
			want:    "000010",
		},
		{
			name:    "only unparsable entries behaves like empty history",
			history: []string{"SPECIAL", "INV-17", ""},
			want:    "000001",
		},
		{
			name:    "gaps are not filled",
			history: []string{"000001", "000100"},
			want:    "000101",
		},
		{
			name:    "numbers wider than the pad width still count",
			history: []string{"1000000"},
			want:    "1000001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(tt.history, DefaultConfig())
			if got != tt.want {
				t.Errorf("Next(%v) = %q, want %q", tt.history, got, tt.want)
			}
		})
	}
}

func TestNext_Idempotent(t *testing.T) {
	history := []string{"000003", "000001", "SPECIAL"}

	first := Next(history, DefaultConfig())
	second := Next(history, DefaultConfig())

	if first != second {
		t.Errorf("Next is not idempotent: %q vs %q", first, second)
	}
}

func TestNext_StrictlyGreaterThanHistory(t *testing.T) {
	history := []string{"000042", "000007", "junk", "000013"}

	got := Next(history, DefaultConfig())
	next, ok := Parse(got)
	if !ok {
		t.Fatalf("Next returned unparsable number %q", got)
	}

	for _, number := range history {
		if n, ok := Parse(number); ok && next <= n {
			t.Errorf("allocated %d is not greater than existing %d", next, n)
		}
	}
}

func TestNext_CustomWidth(t *testing.T) {
	got := Next(nil, Config{Width: 4})
	if got != "0001" {
		t.Errorf("Next with width 4 = %q, want %q", got, "0001")
	}

	// Zero width falls back to the default.
	got = Next(nil, Config{})
	if got != "000001" {
		t.Errorf("Next with zero width = %q, want %q", got, "000001")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"000001", 1, true},
		{"42", 42, true},
		{"SPECIAL", 0, false},
		{"", 0, false},
		{"-5", 0, false},
		{"12a", 0, false},
		{"99999999999999999999", 0, false}, // overflows int64
	}

	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Parse(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
