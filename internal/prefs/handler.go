package prefs

import (
	"evraktakip-backend/internal/auth"
	"evraktakip-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

type SetPreferenceRequest struct {
	Value string `json:"value"`
}

// GET /api/tercihler — kullanıcının tüm tercihleri
func GetAllPreferencesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		store := NewStore(database.DB)
		prefs, err := store.GetAll(userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tercihler okunamadı")
		}
		return c.JSON(prefs)
	}
}

// GET /api/tercihler/:key
func GetPreferenceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		key := c.Params("key")
		store := NewStore(database.DB)
		value, found, err := store.Get(userID, key)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tercih okunamadı")
		}
		if !found {
			return fiber.NewError(fiber.StatusNotFound, "Tercih bulunamadı")
		}
		return c.JSON(fiber.Map{"key": key, "value": value})
	}
}

// PUT /api/tercihler/:key — yoksa oluşturur, varsa üzerine yazar
func SetPreferenceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		key := c.Params("key")
		if key == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Tercih anahtarı boş olamaz")
		}

		var body SetPreferenceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		store := NewStore(database.DB)
		if err := store.Set(userID, key, body.Value); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tercih kaydedilemedi")
		}
		return c.JSON(fiber.Map{"key": key, "value": body.Value})
	}
}

// DELETE /api/tercihler/:key
func DeletePreferenceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		key := c.Params("key")
		store := NewStore(database.DB)
		if err := store.Delete(userID, key); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tercih silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
