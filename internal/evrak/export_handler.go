package evrak

import (
	"fmt"
	"log"
	"strings"

	"evraktakip-backend/internal/database"
	"evraktakip-backend/internal/export"
	"evraktakip-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const exportSayfaBoyu = 1000

// GET /api/evraklar/export
// Tüm evrakları sefer satırlarıyla birlikte XLSX olarak indirir.
// Kayıtlar 1000'lik sayfalar halinde sırayla çekilir (elle imleç);
// paralel istek atılmaz. Bire çok evrak/sefer satırlarında evrak
// hücreleri dikey birleştirilir, başlık ve zebra stilleri uygulanır.
func ExportEvraklarHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var evraklar []models.Evrak
		for offset := 0; ; offset += exportSayfaBoyu {
			var sayfa []models.Evrak
			if err := database.DB.
				Preload("Lokasyon").Preload("Seferler").Preload("Projeler").
				Order("id asc").
				Offset(offset).Limit(exportSayfaBoyu).
				Find(&sayfa).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Evraklar yüklenemedi")
			}
			evraklar = append(evraklar, sayfa...)
			if len(sayfa) < exportSayfaBoyu {
				break
			}
		}

		f := excelize.NewFile()
		defer func() {
			if err := f.Close(); err != nil {
				log.Printf("xlsx kapatılamadı: %v", err)
			}
		}()
		sheet := "Evraklar"
		f.SetSheetName("Sheet1", sheet)

		baslikStil, err := export.BaslikStili(f)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stil oluşturulamadı")
		}
		zebraStil, err := export.ZebraStili(f)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stil oluşturulamadı")
		}
		birlesikStil, err := export.BirlesikHucreStili(f)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stil oluşturulamadı")
		}

		basliklar := []string{"Evrak No", "Tarih", "Lokasyon", "Toplam Sefer", "Sefer No", "Sefer Açıklaması"}
		for i, b := range basliklar {
			hucre, _ := excelize.CoordinatesToCellName(i+1, 1)
			_ = f.SetCellValue(sheet, hucre, b)
		}
		_ = f.SetCellStyle(sheet, "A1", "F1", baslikStil)
		_ = f.SetColWidth(sheet, "A", "D", 14)
		_ = f.SetColWidth(sheet, "E", "F", 28)

		satir := 2
		for idx, e := range evraklar {
			ilkSatir := satir
			seferSayisi := len(e.Seferler)
			if seferSayisi == 0 {
				seferSayisi = 1 // sefersiz evrak tek boş satır olarak yazılır
			}

			_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", ilkSatir), e.ID)
			_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", ilkSatir), e.Tarih.Format("02.01.2006"))
			_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", ilkSatir), e.Lokasyon.Ad)
			_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", ilkSatir), e.ToplamSefer)

			for _, s := range e.Seferler {
				_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", satir), s.SeferNo)
				_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", satir), s.Aciklama)
				satir++
			}
			if len(e.Seferler) == 0 {
				satir++
			}
			sonSatir := satir - 1

			// evrak hücrelerini sefer satırları boyunca birleştir
			if sonSatir > ilkSatir {
				for _, kolon := range []string{"A", "B", "C", "D"} {
					_ = f.MergeCell(sheet, fmt.Sprintf("%s%d", kolon, ilkSatir), fmt.Sprintf("%s%d", kolon, sonSatir))
				}
			}
			_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", ilkSatir), fmt.Sprintf("D%d", sonSatir), birlesikStil)

			// zebra: çift sıradaki evrak bloklarına açık dolgu
			if idx%2 == 1 {
				_ = f.SetCellStyle(sheet, fmt.Sprintf("E%d", ilkSatir), fmt.Sprintf("F%d", sonSatir), zebraStil)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		dosyaAdi := fmt.Sprintf("evraklar_%s.xlsx", strings.Split(uuid.NewString(), "-")[0])
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, dosyaAdi))
		return c.Send(buf.Bytes())
	}
}
