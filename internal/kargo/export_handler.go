package kargo

import (
	"fmt"

	"evraktakip-backend/internal/export"
	"evraktakip-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

var kargoBasliklar = []string{
	"Tarih", "Taşıyıcı Firma", "Takip No", "Gönderici Firma",
	"İrsaliye Adı", "İrsaliye Noları", "Focal Evrak Noları",
	"Ek Evrak", "Evrak Sayısı",
}

// GET /api/kargolar/export — liste filtreleriyle aynı sorguyu düz
// tablo olarak XLSX'e yazar.
func ExportKargolarHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq, err := kargoSorgusu(c)
		if err != nil {
			return err
		}

		var rows []models.KargoKayit
		if err := dbq.Order("tarih asc, id asc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kargo kayıtları okunamadı")
		}

		f := excelize.NewFile()
		defer f.Close()

		sayfa := "Kargolar"
		f.SetSheetName("Sheet1", sayfa)

		baslikStil, err := export.BaslikStili(f)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel stili oluşturulamadı")
		}
		zebraStil, err := export.ZebraStili(f)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel stili oluşturulamadı")
		}

		for i, baslik := range kargoBasliklar {
			hucre, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sayfa, hucre, baslik)
		}
		f.SetCellStyle(sayfa, "A1", "I1", baslikStil)
		f.SetColWidth(sayfa, "A", "A", 12)
		f.SetColWidth(sayfa, "B", "G", 22)
		f.SetColWidth(sayfa, "H", "I", 12)

		for i, k := range rows {
			satir := i + 2
			f.SetCellValue(sayfa, fmt.Sprintf("A%d", satir), k.Tarih.Format("02.01.2006"))
			f.SetCellValue(sayfa, fmt.Sprintf("B%d", satir), k.TasiyiciFirma)
			f.SetCellValue(sayfa, fmt.Sprintf("C%d", satir), k.TakipNo)
			f.SetCellValue(sayfa, fmt.Sprintf("D%d", satir), k.GondericiFirma)
			f.SetCellValue(sayfa, fmt.Sprintf("E%d", satir), k.IrsaliyeAdi)
			f.SetCellValue(sayfa, fmt.Sprintf("F%d", satir), k.IrsaliyeNolari)
			f.SetCellValue(sayfa, fmt.Sprintf("G%d", satir), k.FocalEvrakNolari)
			f.SetCellValue(sayfa, fmt.Sprintf("H%d", satir), k.EkEvrakSayisi)
			f.SetCellValue(sayfa, fmt.Sprintf("I%d", satir), k.EvrakSayisi)
			if i%2 == 1 {
				f.SetCellStyle(sayfa, fmt.Sprintf("A%d", satir), fmt.Sprintf("I%d", satir), zebraStil)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		dosyaAdi := fmt.Sprintf("kargolar_%s.xlsx", uuid.New().String()[:8])
		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, dosyaAdi))
		return c.Send(buf.Bytes())
	}
}
