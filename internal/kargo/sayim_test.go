package kargo

import "testing"

func TestEvrakSayisiHesapla(t *testing.T) {
	tests := []struct {
		name     string
		irsaliye string
		focal    string
		ek       int
		want     int
	}{
		{"iki irsaliye bir focal", "12345-12346", "F-001", 0, 4},
		{"sadece ek evrak", "", "", 3, 3},
		{"hepsi bos", "", "", 0, 0},
		{"bosluklu parcalar", " 12345 - 12346 ", "", 0, 2},
		{"cift tire yazim hatasi", "12--13", "", 0, 2},
		{"tek numara", "98765", "", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvrakSayisiHesapla(tt.irsaliye, tt.focal, tt.ek)
			if got != tt.want {
				t.Errorf("EvrakSayisiHesapla(%q, %q, %d) = %d, beklenen %d",
					tt.irsaliye, tt.focal, tt.ek, got, tt.want)
			}
		})
	}
}
