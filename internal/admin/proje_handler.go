package admin

import (
	"strings"

	"evraktakip-backend/internal/database"
	"evraktakip-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProjeResponse struct {
	ID uint   `json:"id"`
	Ad string `json:"ad"`
}

type CreateProjeRequest struct {
	Ad string `json:"ad"`
}

type UpdateProjeRequest struct {
	Ad *string `json:"ad"`
}

// GET /api/projeler (auth olan herkes)
func ListProjelerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var projeler []models.Proje
		if err := database.DB.Order("ad asc").Find(&projeler).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Projeler listelenemedi")
		}

		res := make([]ProjeResponse, 0, len(projeler))
		for _, p := range projeler {
			res = append(res, ProjeResponse{ID: p.ID, Ad: p.Ad})
		}
		return c.JSON(res)
	}
}

// POST /api/admin/projeler
func CreateProjeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProjeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Ad = strings.TrimSpace(body.Ad)
		if body.Ad == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ad zorunlu")
		}

		proje := models.Proje{Ad: body.Ad}
		if err := database.DB.Create(&proje).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Proje oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(ProjeResponse{ID: proje.ID, Ad: proje.Ad})
	}
}

// PUT /api/admin/projeler/:id
func UpdateProjeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var proje models.Proje
		if err := database.DB.First(&proje, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Proje bulunamadı")
		}

		var body UpdateProjeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Ad != nil {
			ad := strings.TrimSpace(*body.Ad)
			if ad == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Ad boş olamaz")
			}
			proje.Ad = ad
		}

		if err := database.DB.Save(&proje).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Proje güncellenemedi")
		}

		return c.JSON(ProjeResponse{ID: proje.ID, Ad: proje.Ad})
	}
}

// DELETE /api/admin/projeler/:id
// Doğrudan satır silme; dağılımlarda bütünlük kontrolü yapılmaz,
// silinen projeye işaret eden dağılımlar raporlarda atlanır.
func DeleteProjeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Proje{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Proje silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
