package main

import (
	"log"
	"strings"

	"evraktakip-backend/internal/admin"
	"evraktakip-backend/internal/audit"
	"evraktakip-backend/internal/auth"
	"evraktakip-backend/internal/config"
	"evraktakip-backend/internal/database"
	"evraktakip-backend/internal/evrak"
	"evraktakip-backend/internal/export"
	"evraktakip-backend/internal/hedefkargo"
	"evraktakip-backend/internal/kargo"
	"evraktakip-backend/internal/models"
	"evraktakip-backend/internal/prefs"
	"evraktakip-backend/internal/tahakkuk"
	"evraktakip-backend/internal/tms"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	// Kullanıcı yönetimi
	adminRoutes.Post("/users", auth.CreateUserHandler())

	// Proje tanımları
	adminRoutes.Post("/projeler", admin.CreateProjeHandler())
	adminRoutes.Put("/projeler/:id", admin.UpdateProjeHandler())
	adminRoutes.Delete("/projeler/:id", admin.DeleteProjeHandler())

	// Lokasyon tanımları
	adminRoutes.Post("/lokasyonlar", admin.CreateLokasyonHandler())
	adminRoutes.Put("/lokasyonlar/:id", admin.UpdateLokasyonHandler())
	adminRoutes.Delete("/lokasyonlar/:id", admin.DeleteLokasyonHandler())

	// Tanım listeleri (tüm kullanıcılar)
	protected.Get("/projeler", admin.ListProjelerHandler())
	protected.Get("/lokasyonlar", admin.ListLokasyonlarHandler())

	// Evraklar
	protected.Post("/evraklar", evrak.CreateEvrakHandler())
	protected.Get("/evraklar", evrak.ListEvraklarHandler())
	protected.Get("/evraklar/export", evrak.ExportEvraklarHandler())
	protected.Get("/evraklar/:id", evrak.GetEvrakHandler())
	protected.Put("/evraklar/:id", evrak.UpdateEvrakHandler())
	protected.Delete("/evraklar/:id", evrak.DeleteEvrakHandler())

	// Raporlar
	protected.Get("/raporlar/ozet", evrak.OzetRaporHandler())
	protected.Get("/raporlar/proje", evrak.ProjeRaporHandler())
	protected.Get("/raporlar/lokasyon", evrak.LokasyonRaporHandler())

	// Tahakkuklar
	protected.Post("/tahakkuklar", tahakkuk.CreateTahakkukHandler())
	protected.Get("/tahakkuklar", tahakkuk.ListTahakkuklarHandler())
	protected.Post("/tahakkuklar/bulk-durum", tahakkuk.BulkDurumHandler())
	protected.Post("/tahakkuklar/bulk-delete", tahakkuk.BulkDeleteHandler())
	protected.Put("/tahakkuklar/:id", tahakkuk.UpdateTahakkukHandler())
	protected.Delete("/tahakkuklar/:id", tahakkuk.DeleteTahakkukHandler())

	// Kargo kayıtları
	protected.Post("/kargolar", kargo.CreateKargoHandler())
	protected.Get("/kargolar", kargo.ListKargolarHandler())
	protected.Get("/kargolar/export", kargo.ExportKargolarHandler())
	protected.Put("/kargolar/:id", kargo.UpdateKargoHandler())
	protected.Delete("/kargolar/:id", kargo.DeleteKargoHandler())

	// Hedef kargolar
	protected.Post("/hedef-kargolar", hedefkargo.CreateHedefKargoHandler())
	protected.Get("/hedef-kargolar", hedefkargo.ListHedefKargolarHandler())
	protected.Put("/hedef-kargolar/:id", hedefkargo.UpdateHedefKargoHandler())
	protected.Delete("/hedef-kargolar/:id", hedefkargo.DeleteHedefKargoHandler())

	// Tutanak üretimi
	protected.Post("/tutanaklar", export.CreateTutanakHandler())
	protected.Post("/tutanaklar/zip", export.CreateTutanakZipHandler())

	// TMS entegrasyonu
	protected.Post("/tms/orders", tms.ProxyOrdersHandler(cfg))
	protected.Get("/tms/orders-report", tms.OrdersReportHandler(cfg))

	// Kullanıcı tercihleri
	protected.Get("/tercihler", prefs.GetAllPreferencesHandler())
	protected.Get("/tercihler/:key", prefs.GetPreferenceHandler())
	protected.Put("/tercihler/:key", prefs.SetPreferenceHandler())
	protected.Delete("/tercihler/:key", prefs.DeletePreferenceHandler())

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())
	protected.Post("/audit-logs/:id/undo", audit.UndoAuditLogHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
