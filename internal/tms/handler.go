package tms

import (
	"time"

	"evraktakip-backend/internal/config"
	"evraktakip-backend/internal/report"

	"github.com/gofiber/fiber/v2"
)

type ReportRow struct {
	SiparisNo    string `json:"siparis_no"`
	TedarikciAdi string `json:"tedarikci_adi"`
	MusteriAdi   string `json:"musteri_adi"`
	ProjeAdi     string `json:"proje_adi"`
	EvrakNo      string `json:"evrak_no"`
	PlakaNo      string `json:"plaka_no"`
	FaturaNo     string `json:"fatura_no"`
	SurucuAdi    string `json:"surucu_adi"`
	DurumKodu    int    `json:"durum_kodu"`
	Durum        string `json:"durum"`
}

type ReportResponse struct {
	From        string      `json:"from"`
	To          string      `json:"to"`
	ChunkSayisi int         `json:"chunk_sayisi"`
	Rows        []ReportRow `json:"rows"`
}

// POST /api/tms/orders
// Şeffaf proxy: gövde TMS'e aynen iletilir, cevap aynen döner. Token
// burada eklenir, istemciye hiç gösterilmez.
func ProxyOrdersHandler(cfg *config.Config) fiber.Handler {
	client := NewClient(cfg)
	return func(c *fiber.Ctx) error {
		raw, status, err := client.Forward(c.Body())
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "TMS'e ulaşılamadı")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(status).Send(raw)
	}
}

// GET /api/tms/orders-report?from=2024-01-01&to=2024-03-31
// TMS geniş tarih aralıklarında sessizce veri kırptığı için aralık
// TMS_CHUNK_DAYS günlük parçalara bölünür, parça başına bir çağrı
// sırayla atılır ve sonuçlar birleştirilir. Durum kodları sabit
// sözlükten etikete çevrilir.
func OrdersReportHandler(cfg *config.Config) fiber.Handler {
	client := NewClient(cfg)
	return func(c *fiber.Ctx) error {
		fromStr := c.Query("from")
		toStr := c.Query("to")
		if fromStr == "" || toStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "from ve to zorunlu")
		}

		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "from geçersiz, format 'YYYY-MM-DD' olmalı")
		}
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "to geçersiz, format 'YYYY-MM-DD' olmalı")
		}
		if to.Before(from) {
			return fiber.NewError(fiber.StatusBadRequest, "to, from'dan önce olamaz")
		}

		chunks := report.ChunkDateRange(from, to, cfg.TMSChunkDays)

		rows := make([]ReportRow, 0)
		for _, ch := range chunks {
			// chunk sonu gün sonuna çekilir ki aralık kapalı kalsın
			sayfa, err := client.FetchOrders(ch.Start, ch.End.Add(24*time.Hour-time.Second), nil)
			if err != nil {
				return fiber.NewError(fiber.StatusBadGateway, "TMS raporu alınamadı")
			}
			for _, r := range sayfa {
				rows = append(rows, ReportRow{
					SiparisNo:    r.SiparisNo,
					TedarikciAdi: r.TedarikciAdi,
					MusteriAdi:   r.MusteriAdi,
					ProjeAdi:     r.ProjeAdi,
					EvrakNo:      r.EvrakNo,
					PlakaNo:      r.PlakaNo,
					FaturaNo:     r.FaturaNo,
					SurucuAdi:    r.SurucuAdi,
					DurumKodu:    r.DurumKodu,
					Durum:        DurumEtiketi(r.DurumKodu),
				})
			}
		}

		return c.JSON(ReportResponse{
			From:        fromStr,
			To:          toStr,
			ChunkSayisi: len(chunks),
			Rows:        rows,
		})
	}
}
