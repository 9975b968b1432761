package admin

import (
	"strings"

	"evraktakip-backend/internal/database"
	"evraktakip-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LokasyonResponse struct {
	ID uint   `json:"id"`
	Ad string `json:"ad"`
}

type CreateLokasyonRequest struct {
	Ad string `json:"ad"`
}

type UpdateLokasyonRequest struct {
	Ad *string `json:"ad"`
}

// GET /api/lokasyonlar (auth olan herkes)
func ListLokasyonlarHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var lokasyonlar []models.Lokasyon
		if err := database.DB.Order("ad asc").Find(&lokasyonlar).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Lokasyonlar listelenemedi")
		}

		res := make([]LokasyonResponse, 0, len(lokasyonlar))
		for _, l := range lokasyonlar {
			res = append(res, LokasyonResponse{ID: l.ID, Ad: l.Ad})
		}
		return c.JSON(res)
	}
}

// POST /api/admin/lokasyonlar
func CreateLokasyonHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLokasyonRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Ad = strings.TrimSpace(body.Ad)
		if body.Ad == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ad zorunlu")
		}

		lokasyon := models.Lokasyon{Ad: body.Ad}
		if err := database.DB.Create(&lokasyon).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Lokasyon oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(LokasyonResponse{ID: lokasyon.ID, Ad: lokasyon.Ad})
	}
}

// PUT /api/admin/lokasyonlar/:id
func UpdateLokasyonHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var lokasyon models.Lokasyon
		if err := database.DB.First(&lokasyon, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Lokasyon bulunamadı")
		}

		var body UpdateLokasyonRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Ad != nil {
			ad := strings.TrimSpace(*body.Ad)
			if ad == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Ad boş olamaz")
			}
			lokasyon.Ad = ad
		}

		if err := database.DB.Save(&lokasyon).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Lokasyon güncellenemedi")
		}

		return c.JSON(LokasyonResponse{ID: lokasyon.ID, Ad: lokasyon.Ad})
	}
}

// DELETE /api/admin/lokasyonlar/:id
func DeleteLokasyonHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Lokasyon{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Lokasyon silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
