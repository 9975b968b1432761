package tms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDurumEtiketi(t *testing.T) {
	tests := []struct {
		kod  int
		want string
	}{
		{1, "Beklemede"},
		{7, "Teslim Edildi"},
		{10, "Eksik Evrak"},
		{40, "Orijinal Evrak Geldi"},
		{200, "İptal Edildi"},
		{999, "999"}, // sözlükte olmayan kod ham sayı olarak döner
		{0, "0"},
	}
	for _, tt := range tests {
		if got := DurumEtiketi(tt.kod); got != tt.want {
			t.Errorf("DurumEtiketi(%d) = %q, want %q", tt.kod, got, tt.want)
		}
	}
}

func TestClientFetchOrders(t *testing.T) {
	var aldigi map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("bearer token eklenmedi: %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&aldigi); err != nil {
			t.Fatalf("istek gövdesi çözümlenemedi: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"Data": []map[string]interface{}{
				{"OrderNumber": "SIP-1", "SupplierName": "Yılmaz Nakliyat", "OrderStatus": 7},
			},
		})
	}))
	defer srv.Close()

	client := &Client{
		BaseURL:    srv.URL,
		Token:      "test-token",
		UserID:     42,
		HTTPClient: srv.Client(),
	}

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 7, 23, 59, 59, 0, time.UTC)

	rows, err := client.FetchOrders(start, end, map[string]interface{}{"projectId": 5})
	if err != nil {
		t.Fatalf("FetchOrders() error = %v", err)
	}

	if len(rows) != 1 || rows[0].SiparisNo != "SIP-1" || rows[0].DurumKodu != 7 {
		t.Errorf("rows = %+v", rows)
	}
	if aldigi["startDate"] != "2024-03-01T00:00:00" {
		t.Errorf("startDate = %v", aldigi["startDate"])
	}
	if aldigi["userId"] != float64(42) {
		t.Errorf("userId = %v", aldigi["userId"])
	}
	if aldigi["projectId"] != float64(5) {
		t.Errorf("opsiyonel filtre iletilmedi: %v", aldigi["projectId"])
	}
}

func TestClientForwardMissingConfig(t *testing.T) {
	client := &Client{HTTPClient: http.DefaultClient}
	if _, _, err := client.Forward([]byte(`{}`)); err == nil {
		t.Error("eksik yapılandırma için hata bekleniyordu")
	}
}
