package tms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"evraktakip-backend/internal/config"
)

// Client: Harici lojistik API'sine (TMS) giden çağrıları yapar.
// Bearer token sunucu tarafında eklenir, tarayıcıya hiçbir zaman inmez.
type Client struct {
	BaseURL    string
	Token      string
	UserID     int
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL:    cfg.TMSAPIURL,
		Token:      cfg.TMSAPIToken,
		UserID:     cfg.TMSUserID,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// TripStatusRow: TMS'ten dönen sefer durumu satırı. Yerelde kalıcı
// tutulmaz, yalnızca rapor görünümü süresince yaşar.
type TripStatusRow struct {
	SiparisNo    string `json:"OrderNumber"`
	TedarikciAdi string `json:"SupplierName"`
	MusteriAdi   string `json:"CustomerName"`
	ProjeAdi     string `json:"ProjectName"`
	EvrakNo      string `json:"DocumentNo"`
	PlakaNo      string `json:"VehiclePlate"`
	FaturaNo     string `json:"InvoiceNumber"`
	SurucuAdi    string `json:"DriverName"`
	DurumKodu    int    `json:"OrderStatus"`
}

type ordersResponse struct {
	Data []TripStatusRow `json:"Data"`
}

// FetchOrders: Verilen kapalı tarih aralığı için sipariş/sefer durumu
// satırlarını çeker. filters, istek gövdesine aynen eklenen opsiyonel
// TMS filtre alanlarıdır.
func (c *Client) FetchOrders(start, end time.Time, filters map[string]interface{}) ([]TripStatusRow, error) {
	body := map[string]interface{}{
		"startDate": start.Format("2006-01-02T15:04:05"),
		"endDate":   end.Format("2006-01-02T15:04:05"),
		"userId":    c.UserID,
	}
	for k, v := range filters {
		body[k] = v
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("TMS istek gövdesi oluşturulamadı: %w", err)
	}

	raw, status, err := c.Forward(payload)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("TMS %d döndü: %s", status, string(raw))
	}

	var resp ordersResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("TMS cevabı çözümlenemedi: %w", err)
	}
	return resp.Data, nil
}

// Forward: Gövdeyi olduğu gibi TMS'e iletir ve cevabı olduğu gibi
// döndürür; tek işi bearer token eklemektir.
func (c *Client) Forward(body []byte) ([]byte, int, error) {
	if c.BaseURL == "" || c.Token == "" {
		return nil, 0, fmt.Errorf("TMS yapılandırması eksik (TMS_API_URL / TMS_API_TOKEN)")
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("TMS isteği oluşturulamadı: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("TMS isteği başarısız: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("TMS cevabı okunamadı: %w", err)
	}
	return raw, resp.StatusCode, nil
}
