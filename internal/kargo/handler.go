package kargo

import (
	"fmt"
	"time"

	"evraktakip-backend/internal/audit"
	"evraktakip-backend/internal/auth"
	"evraktakip-backend/internal/database"
	"evraktakip-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type KargoRequest struct {
	Tarih            string `json:"tarih"` // "2025-12-09"
	TasiyiciFirma    string `json:"tasiyici_firma"`
	TakipNo          string `json:"takip_no"`
	GondericiFirma   string `json:"gonderici_firma"`
	IrsaliyeAdi      string `json:"irsaliye_adi"`
	IrsaliyeNolari   string `json:"irsaliye_nolari"`
	FocalEvrakNolari string `json:"focal_evrak_nolari"`
	EkEvrakSayisi    int    `json:"ek_evrak_sayisi"`
}

type KargoResponse struct {
	ID               uint   `json:"id"`
	Tarih            string `json:"tarih"`
	TasiyiciFirma    string `json:"tasiyici_firma"`
	TakipNo          string `json:"takip_no"`
	GondericiFirma   string `json:"gonderici_firma"`
	IrsaliyeAdi      string `json:"irsaliye_adi"`
	IrsaliyeNolari   string `json:"irsaliye_nolari"`
	FocalEvrakNolari string `json:"focal_evrak_nolari"`
	EkEvrakSayisi    int    `json:"ek_evrak_sayisi"`
	EvrakSayisi      int    `json:"evrak_sayisi"`
}

func toResponse(k models.KargoKayit) KargoResponse {
	return KargoResponse{
		ID:               k.ID,
		Tarih:            k.Tarih.Format("2006-01-02"),
		TasiyiciFirma:    k.TasiyiciFirma,
		TakipNo:          k.TakipNo,
		GondericiFirma:   k.GondericiFirma,
		IrsaliyeAdi:      k.IrsaliyeAdi,
		IrsaliyeNolari:   k.IrsaliyeNolari,
		FocalEvrakNolari: k.FocalEvrakNolari,
		EkEvrakSayisi:    k.EkEvrakSayisi,
		EvrakSayisi:      k.EvrakSayisi,
	}
}

func kayitDoldur(k *models.KargoKayit, body KargoRequest) error {
	tarih, err := time.Parse("2006-01-02", body.Tarih)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
	}
	if body.EkEvrakSayisi < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ek_evrak_sayisi negatif olamaz")
	}

	k.Tarih = tarih
	k.TasiyiciFirma = body.TasiyiciFirma
	k.TakipNo = body.TakipNo
	k.GondericiFirma = body.GondericiFirma
	k.IrsaliyeAdi = body.IrsaliyeAdi
	k.IrsaliyeNolari = body.IrsaliyeNolari
	k.FocalEvrakNolari = body.FocalEvrakNolari
	k.EkEvrakSayisi = body.EkEvrakSayisi
	k.EvrakSayisi = EvrakSayisiHesapla(body.IrsaliyeNolari, body.FocalEvrakNolari, body.EkEvrakSayisi)
	return nil
}

// POST /api/kargolar
func CreateKargoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body KargoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		var k models.KargoKayit
		if err := kayitDoldur(&k, body); err != nil {
			return err
		}

		if err := database.DB.Create(&k).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kargo kaydı oluşturulamadı")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "kargo",
			EntityID:    k.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Kargo eklendi: %s / %s", k.TasiyiciFirma, k.TakipNo),
			After:       k,
		}); logErr != nil {
			fmt.Printf("Audit log yazılamadı: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(k))
	}
}

// GET /api/kargolar?from=...&to=...&tasiyici=...&gonderici=...
func ListKargolarHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq, err := kargoSorgusu(c)
		if err != nil {
			return err
		}

		var rows []models.KargoKayit
		if err := dbq.Order("tarih desc, id desc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kargo kayıtları listelenemedi")
		}

		resp := make([]KargoResponse, 0, len(rows))
		for _, k := range rows {
			resp = append(resp, toResponse(k))
		}
		return c.JSON(resp)
	}
}

func kargoSorgusu(c *fiber.Ctx) (*gorm.DB, error) {
	dbq := database.DB.Model(&models.KargoKayit{})

	if from := c.Query("from"); from != "" {
		d, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "from formatı 'YYYY-MM-DD' olmalı")
		}
		dbq = dbq.Where("tarih >= ?", d)
	}
	if to := c.Query("to"); to != "" {
		d, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "to formatı 'YYYY-MM-DD' olmalı")
		}
		dbq = dbq.Where("tarih <= ?", d)
	}
	if tasiyici := c.Query("tasiyici"); tasiyici != "" {
		dbq = dbq.Where("tasiyici_firma ILIKE ?", "%"+tasiyici+"%")
	}
	if gonderici := c.Query("gonderici"); gonderici != "" {
		dbq = dbq.Where("gonderici_firma ILIKE ?", "%"+gonderici+"%")
	}
	return dbq, nil
}

// PUT /api/kargolar/:id
func UpdateKargoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var k models.KargoKayit
		if err := database.DB.First(&k, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kargo kaydı bulunamadı")
		}
		onceki := k

		var body KargoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := kayitDoldur(&k, body); err != nil {
			return err
		}

		if err := database.DB.Save(&k).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kargo kaydı güncellenemedi")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "kargo",
			EntityID:    k.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Kargo güncellendi: %s / %s", k.TasiyiciFirma, k.TakipNo),
			Before:      onceki,
			After:       k,
		}); logErr != nil {
			fmt.Printf("Audit log yazılamadı: %v\n", logErr)
		}

		return c.JSON(toResponse(k))
	}
}

// DELETE /api/kargolar/:id
func DeleteKargoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var k models.KargoKayit
		if err := database.DB.First(&k, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kargo kaydı bulunamadı")
		}

		if err := database.DB.Delete(&k).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kargo kaydı silinemedi")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "kargo",
			EntityID:    k.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Kargo silindi: %s / %s", k.TasiyiciFirma, k.TakipNo),
			Before:      k,
		}); logErr != nil {
			fmt.Printf("Audit log yazılamadı: %v\n", logErr)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
