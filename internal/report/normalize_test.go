package report

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty string",
			in:   "",
			want: "",
		},
		{
			name: "only whitespace",
			in:   "   \t ",
			want: "",
		},
		{
			name: "trims and collapses whitespace",
			in:   "  orijinali   alındı ",
			want: "ORIJINALI ALINDI",
		},
		{
			name: "dotted and dotless i fold to same key",
			in:   "tarafımızca düzeltilmiştir",
			want: "TARAFIMIZCA DÜZELTILMIŞTIR",
		},
		{
			name: "other turkish letters preserved",
			in:   "şube çıkışı göründü",
			want: "ŞUBE ÇIKIŞI GÖRÜNDÜ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "  aBc ", "şişli  İSTANBUL", "Tarafımızca   Düzeltilmiştir"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

// Operatör yazım varyasyonları (i/ı karışık, bozuk boşluklar, karışık
// büyük/küçük) aynı anahtara inmeli.
func TestNormalizeTypingVariantsMatch(t *testing.T) {
	a := Normalize("  Tarafimizca   Düzeltilmiştir ")
	b := Normalize("TARAFIMIZCA DÜZELTİLMİŞTİR")
	if a != b {
		t.Errorf("yazım varyantları eşleşmedi: %q != %q", a, b)
	}
}
