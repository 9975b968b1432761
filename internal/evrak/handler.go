package evrak

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"evraktakip-backend/internal/database"
	"evraktakip-backend/internal/models"
	"evraktakip-backend/internal/report"

	"github.com/gofiber/fiber/v2"
)

type SeferInput struct {
	SeferNo  string `json:"sefer_no"`
	Aciklama string `json:"aciklama"`
}

type ProjeDagilimInput struct {
	ProjeID     uint `json:"proje_id"`
	SeferSayisi int  `json:"sefer_sayisi"`
}

type CreateEvrakRequest struct {
	Tarih      string              `json:"tarih"` // "2025-12-09"
	LokasyonID uint                `json:"lokasyon_id"`
	Seferler   []SeferInput        `json:"seferler"`
	Projeler   []ProjeDagilimInput `json:"projeler"`
}

type SeferResponse struct {
	ID       uint   `json:"id"`
	SeferNo  string `json:"sefer_no"`
	Aciklama string `json:"aciklama"`
}

type ProjeDagilimResponse struct {
	ID          uint `json:"id"`
	ProjeID     uint `json:"proje_id"`
	SeferSayisi int  `json:"sefer_sayisi"`
}

type EvrakResponse struct {
	ID          uint                   `json:"id"`
	Tarih       string                 `json:"tarih"`
	LokasyonID  uint                   `json:"lokasyon_id"`
	Lokasyon    string                 `json:"lokasyon"`
	ToplamSefer int                    `json:"toplam_sefer"`
	Seferler    []SeferResponse        `json:"seferler"`
	Projeler    []ProjeDagilimResponse `json:"projeler"`
}

func toEvrakResponse(e models.Evrak) EvrakResponse {
	resp := EvrakResponse{
		ID:          e.ID,
		Tarih:       e.Tarih.Format("2006-01-02"),
		LokasyonID:  e.LokasyonID,
		Lokasyon:    e.Lokasyon.Ad,
		ToplamSefer: e.ToplamSefer,
		Seferler:    make([]SeferResponse, 0, len(e.Seferler)),
		Projeler:    make([]ProjeDagilimResponse, 0, len(e.Projeler)),
	}
	for _, s := range e.Seferler {
		resp.Seferler = append(resp.Seferler, SeferResponse{ID: s.ID, SeferNo: s.SeferNo, Aciklama: s.Aciklama})
	}
	for _, p := range e.Projeler {
		resp.Projeler = append(resp.Projeler, ProjeDagilimResponse{ID: p.ID, ProjeID: p.ProjeID, SeferSayisi: p.SeferSayisi})
	}
	return resp
}

// toplamSeferHesapla: ToplamSefer türetilmiş değerdir, her yazmada
// proje dağılımı toplamından yeniden hesaplanır.
func toplamSeferHesapla(projeler []ProjeDagilimInput) int {
	toplam := 0
	for _, p := range projeler {
		toplam += p.SeferSayisi
	}
	return toplam
}

// POST /api/evraklar
func CreateEvrakHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEvrakRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.LokasyonID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "lokasyon_id zorunlu")
		}

		tarih, err := time.Parse("2006-01-02", body.Tarih)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		var lokasyon models.Lokasyon
		if err := database.DB.First(&lokasyon, "id = ?", body.LokasyonID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Lokasyon bulunamadı")
		}

		e := models.Evrak{
			Tarih:       tarih,
			LokasyonID:  body.LokasyonID,
			ToplamSefer: toplamSeferHesapla(body.Projeler),
		}
		for _, s := range body.Seferler {
			e.Seferler = append(e.Seferler, models.EvrakSefer{SeferNo: strings.TrimSpace(s.SeferNo), Aciklama: strings.TrimSpace(s.Aciklama)})
		}
		for _, p := range body.Projeler {
			e.Projeler = append(e.Projeler, models.EvrakProje{ProjeID: p.ProjeID, SeferSayisi: p.SeferSayisi})
		}

		if err := database.DB.Create(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Evrak kaydedilemedi")
		}

		e.Lokasyon = lokasyon
		return c.Status(fiber.StatusCreated).JSON(toEvrakResponse(e))
	}
}

// GET /api/evraklar?from=...&to=...&lokasyon_ids=1,2&proje_ids=3&aciklama=...
// Kayıtlar çekilir, süzme rapor motoruyla bellekte yapılır: ekran ve
// rapor aynı süzme yolunu paylaşır.
func ListEvraklarHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		crit, err := criteriaFromQuery(c)
		if err != nil {
			return err
		}

		var evraklar []models.Evrak
		if err := database.DB.
			Preload("Lokasyon").Preload("Seferler").Preload("Projeler").
			Order("tarih asc, id asc").
			Find(&evraklar).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Evraklar listelenemedi")
		}

		evraklar = report.FilterEvraklar(evraklar, crit)

		resp := make([]EvrakResponse, 0, len(evraklar))
		for _, e := range evraklar {
			resp = append(resp, toEvrakResponse(e))
		}
		return c.JSON(resp)
	}
}

// GET /api/evraklar/:id
func GetEvrakHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var e models.Evrak
		if err := database.DB.
			Preload("Lokasyon").Preload("Seferler").Preload("Projeler").
			First(&e, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Evrak bulunamadı")
		}

		return c.JSON(toEvrakResponse(e))
	}
}

// PUT /api/evraklar/:id
// Alt kayıtlar komple değiştirilir (sil + yeniden oluştur), ToplamSefer
// yeniden hesaplanır. Versiyonlama yok: son yazan kazanır.
func UpdateEvrakHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var e models.Evrak
		if err := database.DB.First(&e, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Evrak bulunamadı")
		}

		var body CreateEvrakRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Tarih != "" {
			tarih, err := time.Parse("2006-01-02", body.Tarih)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
			}
			e.Tarih = tarih
		}
		if body.LokasyonID != 0 {
			var lokasyon models.Lokasyon
			if err := database.DB.First(&lokasyon, "id = ?", body.LokasyonID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Lokasyon bulunamadı")
			}
			e.LokasyonID = body.LokasyonID
		}

		e.ToplamSefer = toplamSeferHesapla(body.Projeler)

		if err := database.DB.Where("evrak_id = ?", e.ID).Delete(&models.EvrakSefer{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Seferler güncellenemedi")
		}
		if err := database.DB.Where("evrak_id = ?", e.ID).Delete(&models.EvrakProje{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Proje dağılımı güncellenemedi")
		}

		e.Seferler = nil
		e.Projeler = nil
		for _, s := range body.Seferler {
			e.Seferler = append(e.Seferler, models.EvrakSefer{EvrakID: e.ID, SeferNo: strings.TrimSpace(s.SeferNo), Aciklama: strings.TrimSpace(s.Aciklama)})
		}
		for _, p := range body.Projeler {
			e.Projeler = append(e.Projeler, models.EvrakProje{EvrakID: e.ID, ProjeID: p.ProjeID, SeferSayisi: p.SeferSayisi})
		}

		if err := database.DB.Save(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Evrak güncellenemedi")
		}

		var guncel models.Evrak
		if err := database.DB.
			Preload("Lokasyon").Preload("Seferler").Preload("Projeler").
			First(&guncel, "id = ?", e.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Evrak yeniden yüklenemedi")
		}

		return c.JSON(toEvrakResponse(guncel))
	}
}

// DELETE /api/evraklar/:id
func DeleteEvrakHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		// alt kayıtlar cascade ile gider
		if err := database.DB.Delete(&models.Evrak{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Evrak silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// criteriaFromQuery: Ortak süzme query parametrelerini rapor motorunun
// ölçüt yapısına çevirir.
func criteriaFromQuery(c *fiber.Ctx) (report.Criteria, error) {
	var crit report.Criteria

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return crit, fiber.NewError(fiber.StatusBadRequest, "from geçersiz")
		}
		crit.Baslangic = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return crit, fiber.NewError(fiber.StatusBadRequest, "to geçersiz")
		}
		crit.Bitis = &to
	}

	var err error
	if crit.LokasyonIDs, err = parseIDList(c.Query("lokasyon_ids")); err != nil {
		return crit, fiber.NewError(fiber.StatusBadRequest, "lokasyon_ids geçersiz")
	}
	if crit.ProjeIDs, err = parseIDList(c.Query("proje_ids")); err != nil {
		return crit, fiber.NewError(fiber.StatusBadRequest, "proje_ids geçersiz")
	}

	crit.AciklamaIcerik = strings.TrimSpace(c.Query("aciklama"))
	return crit, nil
}

func parseIDList(s string) ([]uint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parcalar := strings.Split(s, ",")
	ids := make([]uint, 0, len(parcalar))
	for _, p := range parcalar {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("geçersiz id: %q", p)
		}
		ids = append(ids, uint(n))
	}
	return ids, nil
}
