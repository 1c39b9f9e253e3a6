package sanskrit

import "testing"

func TestContainsRange(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"iast diacritic", "yadā yadā hi dharmasya", true},
		{"devanagari", "धर्मक्षेत्रे कुरुक्षेत्रे", true},
		{"danda digits", "॥ १ ॥", true},
		{"plain english", "A note about the publisher", false},
		{"ascii transliteration", "yada yada hi dharmasya", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContainsRange(tc.in); got != tc.want {
				t.Errorf("ContainsRange(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCountRange(t *testing.T) {
	if got := CountRange("rāma"); got != 1 {
		t.Errorf("expected 1 Sanskrit-range rune, got %d", got)
	}
	if got := CountRange("abc"); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}
