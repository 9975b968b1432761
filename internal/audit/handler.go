package audit

import (
	"fmt"

	"evraktakip-backend/internal/auth"
	"evraktakip-backend/internal/database"
	"evraktakip-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AuditLogResponse struct {
	ID          uint               `json:"id"`
	CreatedAt   string             `json:"created_at"`
	UserID      uint               `json:"user_id"`
	UserName    string             `json:"user_name"`
	EntityType  string             `json:"entity_type"`
	EntityID    uint               `json:"entity_id"`
	Action      models.AuditAction `json:"action"`
	Description string             `json:"description"`
	IsUndone    bool               `json:"is_undone"`
	UndoneBy    *uint              `json:"undone_by"`
	UndoneAt    *string            `json:"undone_at"`
}

// GET /api/audit-logs?entity_type=tahakkuk&entity_id=1&user_id=2
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entityType := c.Query("entity_type")
		entityIDStr := c.Query("entity_id")
		userIDStr := c.Query("user_id")

		dbq := database.DB.Model(&models.AuditLog{})

		if entityType != "" {
			dbq = dbq.Where("entity_type = ?", entityType)
		}
		if entityIDStr != "" {
			var eid uint
			if _, err := fmt.Sscan(entityIDStr, &eid); err != nil || eid == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "entity_id geçersiz")
			}
			dbq = dbq.Where("entity_id = ?", eid)
		}
		if userIDStr != "" {
			var uid uint
			if _, err := fmt.Sscan(userIDStr, &uid); err != nil || uid == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "user_id geçersiz")
			}
			dbq = dbq.Where("user_id = ?", uid)
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at desc, id desc").Limit(500).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Loglar listelenemedi")
		}

		resp := make([]AuditLogResponse, 0, len(logs))
		for _, l := range logs {
			item := AuditLogResponse{
				ID:          l.ID,
				CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
				UserID:      l.UserID,
				UserName:    l.UserName,
				EntityType:  l.EntityType,
				EntityID:    l.EntityID,
				Action:      l.Action,
				Description: l.Description,
				IsUndone:    l.IsUndone,
				UndoneBy:    l.UndoneBy,
			}
			if l.UndoneAt != nil {
				s := l.UndoneAt.Format("2006-01-02 15:04:05")
				item.UndoneAt = &s
			}
			resp = append(resp, item)
		}

		return c.JSON(resp)
	}
}

// POST /api/audit-logs/:id/undo
func UndoAuditLogHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var logID uint
		if _, err := fmt.Sscan(c.Params("id"), &logID); err != nil || logID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz log id")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		if err := UndoLog(logID, userID, userName); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(fiber.Map{"success": true})
	}
}
