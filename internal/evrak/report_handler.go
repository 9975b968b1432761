package evrak

import (
	"strconv"

	"evraktakip-backend/internal/database"
	"evraktakip-backend/internal/models"
	"evraktakip-backend/internal/report"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

type OzetRaporResponse struct {
	EvrakSayisi      int               `json:"evrak_sayisi"`
	ProjeDagilimi    []report.KeyTotal `json:"proje_dagilimi"`
	LokasyonDagilimi []report.KeyTotal `json:"lokasyon_dagilimi"`
	AciklamaDagilimi []report.KeyTotal `json:"aciklama_dagilimi"`
}

type ProjeRaporResponse struct {
	ProjeID uint                 `json:"proje_id"`
	ProjeAd string               `json:"proje_ad"`
	Dagilim report.ProjeDagilimi `json:"dagilim"`
}

type LokasyonRaporResponse struct {
	LokasyonID uint                    `json:"lokasyon_id"`
	LokasyonAd string                  `json:"lokasyon_ad"`
	Dagilim    report.LokasyonDagilimi `json:"dagilim"`
}

// GET /api/raporlar/ozet?from=...&to=...&lokasyon_ids=...&proje_ids=...&top=10
// Evraklar, projeler ve lokasyonlar birbirinden bağımsız olduğu için
// üç sorgu paralel atılıp birleştirilir.
func OzetRaporHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		crit, err := criteriaFromQuery(c)
		if err != nil {
			return err
		}

		var (
			evraklar    []models.Evrak
			projeler    []models.Proje
			lokasyonlar []models.Lokasyon
		)

		var g errgroup.Group
		g.Go(func() error {
			return database.DB.
				Preload("Seferler").Preload("Projeler").
				Order("tarih asc, id asc").
				Find(&evraklar).Error
		})
		g.Go(func() error {
			return database.DB.Find(&projeler).Error
		})
		g.Go(func() error {
			return database.DB.Find(&lokasyonlar).Error
		})
		if err := g.Wait(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor verileri yüklenemedi")
		}

		evraklar = report.FilterEvraklar(evraklar, crit)

		projeAdlari := make(map[uint]string, len(projeler))
		for _, p := range projeler {
			projeAdlari[p.ID] = p.Ad
		}
		lokasyonAdlari := make(map[uint]string, len(lokasyonlar))
		for _, l := range lokasyonlar {
			lokasyonAdlari[l.ID] = l.Ad
		}

		top := 0
		if topStr := c.Query("top"); topStr != "" {
			if n, err := strconv.Atoi(topStr); err == nil && n > 0 {
				top = n
			}
		}

		resp := OzetRaporResponse{
			EvrakSayisi:      len(evraklar),
			ProjeDagilimi:    ilkN(report.AggregateByProje(evraklar, projeAdlari), top),
			LokasyonDagilimi: ilkN(report.AggregateByLokasyon(evraklar, lokasyonAdlari), top),
			AciklamaDagilimi: ilkN(report.AggregateByAciklama(evraklar), top),
		}
		return c.JSON(resp)
	}
}

// GET /api/raporlar/proje?proje_id=1&from=...&to=...
// Seçili projenin kesirli açıklama dağılımı.
func ProjeRaporHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		projeID, err := zorunluID(c, "proje_id")
		if err != nil {
			return err
		}

		var proje models.Proje
		if err := database.DB.First(&proje, "id = ?", projeID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Proje bulunamadı")
		}

		crit, err := criteriaFromQuery(c)
		if err != nil {
			return err
		}

		var evraklar []models.Evrak
		if err := database.DB.
			Preload("Seferler").Preload("Projeler").
			Order("tarih asc, id asc").
			Find(&evraklar).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Evraklar yüklenemedi")
		}

		evraklar = report.FilterEvraklar(evraklar, crit)

		return c.JSON(ProjeRaporResponse{
			ProjeID: proje.ID,
			ProjeAd: proje.Ad,
			Dagilim: report.AttributeToProje(evraklar, proje.ID),
		})
	}
}

// GET /api/raporlar/lokasyon?lokasyon_id=1&from=...&to=...
// Lokasyon raporu kesirli paylaştırmaz; evrak tek lokasyona ait
// olduğundan düz sayım yapılır.
func LokasyonRaporHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lokasyonID, err := zorunluID(c, "lokasyon_id")
		if err != nil {
			return err
		}

		var lokasyon models.Lokasyon
		if err := database.DB.First(&lokasyon, "id = ?", lokasyonID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Lokasyon bulunamadı")
		}

		crit, err := criteriaFromQuery(c)
		if err != nil {
			return err
		}

		var evraklar []models.Evrak
		if err := database.DB.
			Preload("Seferler").Preload("Projeler").
			Order("tarih asc, id asc").
			Find(&evraklar).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Evraklar yüklenemedi")
		}

		evraklar = report.FilterEvraklar(evraklar, crit)

		return c.JSON(LokasyonRaporResponse{
			LokasyonID: lokasyon.ID,
			LokasyonAd: lokasyon.Ad,
			Dagilim:    report.LokasyonAciklamaDagilimi(evraklar, lokasyon.ID),
		})
	}
}

func zorunluID(c *fiber.Ctx, param string) (uint, error) {
	s := c.Query(param)
	if s == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, param+" zorunlu")
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, param+" geçersiz")
	}
	return uint(n), nil
}

func ilkN(rows []report.KeyTotal, n int) []report.KeyTotal {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}
