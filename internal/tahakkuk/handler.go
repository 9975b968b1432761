package tahakkuk

import (
	"fmt"
	"time"

	"evraktakip-backend/internal/audit"
	"evraktakip-backend/internal/auth"
	"evraktakip-backend/internal/database"
	"evraktakip-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateTahakkukRequest struct {
	TedarikciFirma string `json:"tedarikci_firma"`
	Aciklama       string `json:"aciklama"`
	OdemeTarihi    string `json:"odeme_tarihi"` // "2025-12-09"
	GirisTarihi    string `json:"giris_tarihi"`
}

type UpdateTahakkukRequest struct {
	TedarikciFirma *string `json:"tedarikci_firma"`
	Aciklama       *string `json:"aciklama"`
	OdemeTarihi    *string `json:"odeme_tarihi"`
	Durum          *string `json:"durum"`
	SonIslem       string  `json:"son_islem"`
}

type BulkDurumRequest struct {
	IDs      []uint `json:"ids"`
	Durum    string `json:"durum"`
	SonIslem string `json:"son_islem"`
}

type BulkDeleteRequest struct {
	IDs []uint `json:"ids"`
}

type TahakkukResponse struct {
	ID               uint   `json:"id"`
	TedarikciFirma   string `json:"tedarikci_firma"`
	Aciklama         string `json:"aciklama"`
	OdemeTarihi      string `json:"odeme_tarihi"`
	GirisTarihi      string `json:"giris_tarihi"`
	Durum            string `json:"durum"`
	OlusturanAd      string `json:"olusturan_ad"`
	GuncelleyenAd    string `json:"guncelleyen_ad"`
	SonIslem         string `json:"son_islem"`
	GuncellemeTarihi string `json:"guncelleme_tarihi"`
}

func toResponse(t models.Tahakkuk) TahakkukResponse {
	resp := TahakkukResponse{
		ID:               t.ID,
		TedarikciFirma:   t.TedarikciFirma,
		Aciklama:         t.Aciklama,
		GirisTarihi:      t.GirisTarihi.Format("2006-01-02"),
		Durum:            string(t.Durum),
		OlusturanAd:      t.OlusturanAd,
		GuncelleyenAd:    t.GuncelleyenAd,
		SonIslem:         t.SonIslem,
		GuncellemeTarihi: t.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if !t.OdemeTarihi.IsZero() {
		resp.OdemeTarihi = t.OdemeTarihi.Format("2006-01-02")
	}
	return resp
}

func durumDogrula(s string) (models.TahakkukDurum, error) {
	switch models.TahakkukDurum(s) {
	case models.TahakkukBeklemede, models.TahakkukOdendi, models.TahakkukBulunamadi:
		return models.TahakkukDurum(s), nil
	}
	return "", fmt.Errorf("durum 'beklemede', 'odendi' veya 'bulunamadi' olmalı")
}

// POST /api/tahakkuklar
// Yeni kayıt her zaman 'beklemede' durumunda açılır.
func CreateTahakkukHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTahakkukRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.TedarikciFirma == "" {
			return fiber.NewError(fiber.StatusBadRequest, "tedarikci_firma zorunlu")
		}

		girisTarihi := time.Now()
		if body.GirisTarihi != "" {
			d, err := time.Parse("2006-01-02", body.GirisTarihi)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "giris_tarihi formatı 'YYYY-MM-DD' olmalı")
			}
			girisTarihi = d
		}

		var odemeTarihi time.Time
		if body.OdemeTarihi != "" {
			d, err := time.Parse("2006-01-02", body.OdemeTarihi)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "odeme_tarihi formatı 'YYYY-MM-DD' olmalı")
			}
			odemeTarihi = d
		}

		userID, userName, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		t := models.Tahakkuk{
			TedarikciFirma: body.TedarikciFirma,
			Aciklama:       body.Aciklama,
			OdemeTarihi:    odemeTarihi,
			GirisTarihi:    girisTarihi,
			Durum:          models.TahakkukBeklemede,
			OlusturanAd:    userName,
			GuncelleyenAd:  userName,
			SonIslem:       "Kayıt oluşturuldu",
		}

		if err := database.DB.Create(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tahakkuk kaydedilemedi")
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "tahakkuk",
			EntityID:    t.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Tahakkuk eklendi: %s", t.TedarikciFirma),
			Before:      nil,
			After:       t,
		}); logErr != nil {
			// Log hatası kritik değil
			fmt.Printf("Audit log yazılamadı: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(t))
	}
}

// GET /api/tahakkuklar?durum=beklemede&tedarikci=...
func ListTahakkuklarHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Tahakkuk{})

		if durumStr := c.Query("durum"); durumStr != "" {
			durum, err := durumDogrula(durumStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			dbq = dbq.Where("durum = ?", durum)
		}
		if tedarikci := c.Query("tedarikci"); tedarikci != "" {
			dbq = dbq.Where("tedarikci_firma ILIKE ?", "%"+tedarikci+"%")
		}

		var rows []models.Tahakkuk
		if err := dbq.Order("giris_tarihi desc, id desc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tahakkuklar listelenemedi")
		}

		resp := make([]TahakkukResponse, 0, len(rows))
		for _, t := range rows {
			resp = append(resp, toResponse(t))
		}
		return c.JSON(resp)
	}
}

// PUT /api/tahakkuklar/:id
// Her mutasyon güncelleyeni ve SonIslem etiketini damgalar. Durum
// geçişleri kısıtsızdır; eşzamanlılık koruması yok, son yazan kazanır.
func UpdateTahakkukHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var t models.Tahakkuk
		if err := database.DB.First(&t, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tahakkuk bulunamadı")
		}
		onceki := t

		var body UpdateTahakkukRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.TedarikciFirma != nil {
			t.TedarikciFirma = *body.TedarikciFirma
		}
		if body.Aciklama != nil {
			t.Aciklama = *body.Aciklama
		}
		if body.OdemeTarihi != nil {
			d, err := time.Parse("2006-01-02", *body.OdemeTarihi)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "odeme_tarihi formatı 'YYYY-MM-DD' olmalı")
			}
			t.OdemeTarihi = d
		}
		if body.Durum != nil {
			durum, err := durumDogrula(*body.Durum)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			t.Durum = durum
		}

		userID, userName, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}
		t.GuncelleyenAd = userName
		if body.SonIslem != "" {
			t.SonIslem = body.SonIslem
		} else {
			t.SonIslem = "Kayıt güncellendi"
		}

		if err := database.DB.Save(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tahakkuk güncellenemedi")
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "tahakkuk",
			EntityID:    t.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Tahakkuk güncellendi: %s (%s)", t.TedarikciFirma, t.SonIslem),
			Before:      onceki,
			After:       t,
		}); logErr != nil {
			fmt.Printf("Audit log yazılamadı: %v\n", logErr)
		}

		return c.JSON(toResponse(t))
	}
}

// POST /api/tahakkuklar/bulk-durum
// Toplu durum güncellemesi tek çağrı olarak atılır; satır bazında
// başarı/başarısızlık muhasebesi yapılmaz — çağrı ya bütünüyle hata
// verir ya da tüm id'ler güncellenmiş sayılır.
func BulkDurumHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body BulkDurumRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if len(body.IDs) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ids boş olamaz")
		}

		durum, err := durumDogrula(body.Durum)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		userID, userName, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		sonIslem := body.SonIslem
		if sonIslem == "" {
			sonIslem = fmt.Sprintf("Toplu durum: %s", durum)
		}

		if err := database.DB.Model(&models.Tahakkuk{}).
			Where("id IN ?", body.IDs).
			Updates(map[string]interface{}{
				"durum":          durum,
				"guncelleyen_ad": userName,
				"son_islem":      sonIslem,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Toplu güncelleme başarısız")
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "tahakkuk",
			EntityID:    0,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Toplu durum güncellemesi: %d kayıt -> %s", len(body.IDs), durum),
			Before:      nil,
			After:       body.IDs,
		}); logErr != nil {
			fmt.Printf("Audit log yazılamadı: %v\n", logErr)
		}

		return c.JSON(fiber.Map{"success": true, "count": len(body.IDs)})
	}
}

// POST /api/tahakkuklar/bulk-delete
func BulkDeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body BulkDeleteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if len(body.IDs) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ids boş olamaz")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		if err := database.DB.Delete(&models.Tahakkuk{}, "id IN ?", body.IDs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Toplu silme başarısız")
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "tahakkuk",
			EntityID:    0,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Toplu silme: %d kayıt", len(body.IDs)),
			Before:      body.IDs,
			After:       nil,
		}); logErr != nil {
			fmt.Printf("Audit log yazılamadı: %v\n", logErr)
		}

		return c.JSON(fiber.Map{"success": true, "count": len(body.IDs)})
	}
}

// DELETE /api/tahakkuklar/:id
func DeleteTahakkukHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var t models.Tahakkuk
		if err := database.DB.First(&t, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tahakkuk bulunamadı")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		if err := database.DB.Delete(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tahakkuk silinemedi")
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "tahakkuk",
			EntityID:    t.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Tahakkuk silindi: %s", t.TedarikciFirma),
			Before:      t,
			After:       nil,
		}); logErr != nil {
			fmt.Printf("Audit log yazılamadı: %v\n", logErr)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
