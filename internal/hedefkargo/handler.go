package hedefkargo

import (
	"fmt"
	"time"

	"evraktakip-backend/internal/audit"
	"evraktakip-backend/internal/auth"
	"evraktakip-backend/internal/database"
	"evraktakip-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type HedefKargoRequest struct {
	Tarih        string `json:"tarih"` // "2025-12-09"
	Gonderen     string `json:"gonderen"`
	Tedarikci    string `json:"tedarikci"`
	TeslimAlan   string `json:"teslim_alan"`
	TeslimTarihi string `json:"teslim_tarihi"`
}

type HedefKargoResponse struct {
	ID           uint   `json:"id"`
	Tarih        string `json:"tarih"`
	Gonderen     string `json:"gonderen"`
	Tedarikci    string `json:"tedarikci"`
	TeslimAlan   string `json:"teslim_alan"`
	TeslimTarihi string `json:"teslim_tarihi"`
}

func toResponse(h models.HedefKargo) HedefKargoResponse {
	resp := HedefKargoResponse{
		ID:         h.ID,
		Tarih:      h.Tarih.Format("2006-01-02"),
		Gonderen:   h.Gonderen,
		Tedarikci:  h.Tedarikci,
		TeslimAlan: h.TeslimAlan,
	}
	if !h.TeslimTarihi.IsZero() {
		resp.TeslimTarihi = h.TeslimTarihi.Format("2006-01-02")
	}
	return resp
}

func kayitDoldur(h *models.HedefKargo, body HedefKargoRequest) error {
	tarih, err := time.Parse("2006-01-02", body.Tarih)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
	}
	h.Tarih = tarih
	h.Gonderen = body.Gonderen
	h.Tedarikci = body.Tedarikci
	h.TeslimAlan = body.TeslimAlan
	h.TeslimTarihi = time.Time{}
	if body.TeslimTarihi != "" {
		d, err := time.Parse("2006-01-02", body.TeslimTarihi)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "teslim_tarihi formatı 'YYYY-MM-DD' olmalı")
		}
		h.TeslimTarihi = d
	}
	return nil
}

// POST /api/hedef-kargolar
func CreateHedefKargoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body HedefKargoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		var h models.HedefKargo
		if err := kayitDoldur(&h, body); err != nil {
			return err
		}

		if err := database.DB.Create(&h).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hedef kargo kaydı oluşturulamadı")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "hedef_kargo",
			EntityID:    h.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Hedef kargo eklendi: %s", h.Gonderen),
			After:       h,
		}); logErr != nil {
			fmt.Printf("Audit log yazılamadı: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(h))
	}
}

// GET /api/hedef-kargolar?from=...&to=...
func ListHedefKargolarHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.HedefKargo{})

		if from := c.Query("from"); from != "" {
			d, err := time.Parse("2006-01-02", from)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "from formatı 'YYYY-MM-DD' olmalı")
			}
			dbq = dbq.Where("tarih >= ?", d)
		}
		if to := c.Query("to"); to != "" {
			d, err := time.Parse("2006-01-02", to)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "to formatı 'YYYY-MM-DD' olmalı")
			}
			dbq = dbq.Where("tarih <= ?", d)
		}

		var rows []models.HedefKargo
		if err := dbq.Order("tarih desc, id desc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hedef kargo kayıtları listelenemedi")
		}

		resp := make([]HedefKargoResponse, 0, len(rows))
		for _, h := range rows {
			resp = append(resp, toResponse(h))
		}
		return c.JSON(resp)
	}
}

// PUT /api/hedef-kargolar/:id
func UpdateHedefKargoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var h models.HedefKargo
		if err := database.DB.First(&h, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Hedef kargo kaydı bulunamadı")
		}
		onceki := h

		var body HedefKargoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := kayitDoldur(&h, body); err != nil {
			return err
		}

		if err := database.DB.Save(&h).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hedef kargo kaydı güncellenemedi")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "hedef_kargo",
			EntityID:    h.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Hedef kargo güncellendi: %s", h.Gonderen),
			Before:      onceki,
			After:       h,
		}); logErr != nil {
			fmt.Printf("Audit log yazılamadı: %v\n", logErr)
		}

		return c.JSON(toResponse(h))
	}
}

// DELETE /api/hedef-kargolar/:id
func DeleteHedefKargoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var h models.HedefKargo
		if err := database.DB.First(&h, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Hedef kargo kaydı bulunamadı")
		}

		if err := database.DB.Delete(&h).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hedef kargo kaydı silinemedi")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "hedef_kargo",
			EntityID:    h.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Hedef kargo silindi: %s", h.Gonderen),
			Before:      h,
		}); logErr != nil {
			fmt.Printf("Audit log yazılamadı: %v\n", logErr)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
