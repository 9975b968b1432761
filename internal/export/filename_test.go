package export

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "turkish characters transliterated",
			in:   "Yılmaz Şirketi Çağrı",
			want: "Yilmaz_Sirketi_Cagri",
		},
		{
			name: "illegal filesystem characters stripped",
			in:   `EVR/2024:0042*?"<>|`,
			want: "EVR20240042",
		},
		{
			name: "plate with spaces",
			in:   "34 ABC 123",
			want: "34_ABC_123",
		},
		{
			name: "empty after cleaning",
			in:   "///***",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFileName(tt.in)
			if got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTutanakDosyaAdi(t *testing.T) {
	row := TutanakRow{TedarikciAdi: "Yılmaz Nakliyat", EvrakNo: "EVR-42", PlakaNo: "34 ABC 123"}
	got := TutanakDosyaAdi(row)
	want := "tutanak_Yilmaz_Nakliyat_EVR-42_34_ABC_123.docx"
	if got != want {
		t.Errorf("TutanakDosyaAdi() = %q, want %q", got, want)
	}

	if got := TutanakDosyaAdi(TutanakRow{}); got != "tutanak.docx" {
		t.Errorf("boş satır için dosya adı = %q, want tutanak.docx", got)
	}
}
