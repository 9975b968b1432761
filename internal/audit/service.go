package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"evraktakip-backend/internal/database"
	"evraktakip-backend/internal/models"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// PostgreSQL jsonb için boş string yerine "null" JSON string'i kullanmalıyız
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	log := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
		Undone:      false,
		IsUndone:    false,
	}

	if err := database.DB.Create(&log).Error; err != nil {
		return fmt.Errorf("audit log kaydedilemedi: %w", err)
	}

	return nil
}

// UndoLog - Bir audit log'u geri al
func UndoLog(logID uint, userID uint, userName string) error {
	var log models.AuditLog
	if err := database.DB.First(&log, "id = ?", logID).Error; err != nil {
		return fmt.Errorf("log bulunamadı: %w", err)
	}

	if log.IsUndone {
		return fmt.Errorf("bu işlem zaten geri alınmış")
	}

	switch log.Action {
	case models.AuditActionCreate:
		// Create ise entity'yi sil
		if err := deleteEntity(log.EntityType, log.EntityID); err != nil {
			return fmt.Errorf("entity silinemedi: %w", err)
		}

	case models.AuditActionUpdate:
		// Update ise önceki haline geri döndür
		if err := restoreEntity(log.EntityType, log.EntityID, log.BeforeData); err != nil {
			return fmt.Errorf("entity geri yüklenemedi: %w", err)
		}

	case models.AuditActionDelete:
		// Delete ise entity'yi geri oluştur
		if err := recreateEntity(log.EntityType, log.BeforeData); err != nil {
			return fmt.Errorf("entity geri oluşturulamadı: %w", err)
		}

	default:
		return fmt.Errorf("bu işlem türü geri alınamaz")
	}

	now := time.Now()
	log.IsUndone = true
	log.UndoneBy = &userID
	log.UndoneAt = &now

	if err := database.DB.Save(&log).Error; err != nil {
		return fmt.Errorf("log güncellenemedi: %w", err)
	}

	undoLog := models.AuditLog{
		UserID:      userID,
		UserName:    userName,
		EntityType:  log.EntityType,
		EntityID:    log.EntityID,
		Action:      models.AuditActionUndo,
		Description: fmt.Sprintf("Geri alındı: %s", log.Description),
		BeforeData:  log.AfterData,
		AfterData:   log.BeforeData,
		Undone:      true,
		IsUndone:    false,
	}

	if err := database.DB.Create(&undoLog).Error; err != nil {
		return fmt.Errorf("undo log kaydedilemedi: %w", err)
	}

	return nil
}

func deleteEntity(entityType string, entityID uint) error {
	switch entityType {
	case "tahakkuk":
		return database.DB.Delete(&models.Tahakkuk{}, "id = ?", entityID).Error
	case "kargo":
		return database.DB.Delete(&models.KargoKayit{}, "id = ?", entityID).Error
	case "hedef_kargo":
		return database.DB.Delete(&models.HedefKargo{}, "id = ?", entityID).Error
	default:
		return fmt.Errorf("bilinmeyen entity tipi: %s", entityType)
	}
}

func recreateEntity(entityType string, dataJSON string) error {
	switch entityType {
	case "tahakkuk":
		var t models.Tahakkuk
		if err := json.Unmarshal([]byte(dataJSON), &t); err != nil {
			return err
		}
		t.ID = 0 // yeni kayıt olarak oluştur
		return database.DB.Create(&t).Error

	case "kargo":
		var k models.KargoKayit
		if err := json.Unmarshal([]byte(dataJSON), &k); err != nil {
			return err
		}
		k.ID = 0
		return database.DB.Create(&k).Error

	case "hedef_kargo":
		var h models.HedefKargo
		if err := json.Unmarshal([]byte(dataJSON), &h); err != nil {
			return err
		}
		h.ID = 0
		return database.DB.Create(&h).Error

	default:
		return fmt.Errorf("bilinmeyen entity tipi: %s", entityType)
	}
}

func restoreEntity(entityType string, entityID uint, dataJSON string) error {
	switch entityType {
	case "tahakkuk":
		var t models.Tahakkuk
		if err := json.Unmarshal([]byte(dataJSON), &t); err != nil {
			return err
		}
		return database.DB.Model(&models.Tahakkuk{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"tedarikci_firma": t.TedarikciFirma,
			"aciklama":        t.Aciklama,
			"odeme_tarihi":    t.OdemeTarihi,
			"giris_tarihi":    t.GirisTarihi,
			"durum":           t.Durum,
			"guncelleyen_ad":  t.GuncelleyenAd,
			"son_islem":       t.SonIslem,
		}).Error

	case "kargo":
		var k models.KargoKayit
		if err := json.Unmarshal([]byte(dataJSON), &k); err != nil {
			return err
		}
		return database.DB.Model(&models.KargoKayit{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"tarih":              k.Tarih,
			"tasiyici_firma":     k.TasiyiciFirma,
			"takip_no":           k.TakipNo,
			"gonderici_firma":    k.GondericiFirma,
			"irsaliye_adi":       k.IrsaliyeAdi,
			"irsaliye_nolari":    k.IrsaliyeNolari,
			"focal_evrak_nolari": k.FocalEvrakNolari,
			"ek_evrak_sayisi":    k.EkEvrakSayisi,
			"evrak_sayisi":       k.EvrakSayisi,
		}).Error

	case "hedef_kargo":
		var h models.HedefKargo
		if err := json.Unmarshal([]byte(dataJSON), &h); err != nil {
			return err
		}
		return database.DB.Model(&models.HedefKargo{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"tarih":         h.Tarih,
			"gonderen":      h.Gonderen,
			"tedarikci":     h.Tedarikci,
			"teslim_alan":   h.TeslimAlan,
			"teslim_tarihi": h.TeslimTarihi,
		}).Error

	default:
		return fmt.Errorf("bilinmeyen entity tipi: %s", entityType)
	}
}
