package export

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TutanakZipRequest struct {
	Rows []TutanakRow `json:"rows"`
}

// POST /api/tutanaklar
// Tek kaynak satırdan .docx tutanak üretir ve indirme olarak döner.
func CreateTutanakHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var row TutanakRow
		if err := c.BodyParser(&row); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		docx, err := BuildTutanakDocx(row)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tutanak oluşturulamadı")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, TutanakDosyaAdi(row)))
		return c.Send(docx)
	}
}

// POST /api/tutanaklar/zip
// Birden çok satırdan tutanakları üretip tek zip olarak döner. Aynı
// dosya adı birden fazla üretilirse sıra numarası eklenir.
func CreateTutanakZipHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body TutanakZipRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if len(body.Rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "En az bir satır gönderilmeli")
		}

		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)

		kullanilan := make(map[string]int)
		for _, row := range body.Rows {
			docx, err := BuildTutanakDocx(row)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Tutanak oluşturulamadı")
			}

			ad := TutanakDosyaAdi(row)
			if n := kullanilan[ad]; n > 0 {
				kullanilan[ad] = n + 1
				ad = fmt.Sprintf("%s_%d.docx", ad[:len(ad)-len(".docx")], n+1)
			} else {
				kullanilan[ad] = 1
			}

			w, err := zw.Create(ad)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Zip oluşturulamadı")
			}
			if _, err := w.Write(docx); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Zip yazılamadı")
			}
		}

		if err := zw.Close(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Zip kapatılamadı")
		}

		c.Set(fiber.HeaderContentType, "application/zip")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="tutanaklar_%s.zip"`, uuid.NewString()[:8]))
		return c.Send(buf.Bytes())
	}
}
