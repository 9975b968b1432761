package export

import "github.com/xuri/excelize/v2"

// Evrak ve kargo listelerinin XLSX çıktılarında kullanılan ortak stiller.

func BaslikStili(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2F5496"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "999999", Style: 1},
			{Type: "right", Color: "999999", Style: 1},
			{Type: "top", Color: "999999", Style: 1},
			{Type: "bottom", Color: "999999", Style: 1},
		},
	})
}

// ZebraStili: Çift numaralı satırlara uygulanan açık dolgu.
func ZebraStili(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"EDF2FA"}},
		Border: []excelize.Border{
			{Type: "left", Color: "CCCCCC", Style: 1},
			{Type: "right", Color: "CCCCCC", Style: 1},
			{Type: "top", Color: "CCCCCC", Style: 1},
			{Type: "bottom", Color: "CCCCCC", Style: 1},
		},
	})
}

// BirlesikHucreStili: Bire çok evrak/sefer satırlarında birleştirilen
// üst hücreler için dikey ortalanmış stil.
func BirlesikHucreStili(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "CCCCCC", Style: 1},
			{Type: "right", Color: "CCCCCC", Style: 1},
			{Type: "top", Color: "CCCCCC", Style: 1},
			{Type: "bottom", Color: "CCCCCC", Style: 1},
		},
	})
}
