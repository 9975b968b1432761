package report

import (
	"testing"
	"time"
)

func TestChunkDateRange(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		chunkDays int
		wantLen   int
	}{
		{
			name:      "range shorter than chunk returns single chunk",
			start:     gun(2024, 1, 1),
			end:       gun(2024, 1, 3),
			chunkDays: 7,
			wantLen:   1,
		},
		{
			name:      "single day",
			start:     gun(2024, 1, 1),
			end:       gun(2024, 1, 1),
			chunkDays: 7,
			wantLen:   1,
		},
		{
			name:      "exact multiple",
			start:     gun(2024, 1, 1),
			end:       gun(2024, 1, 14),
			chunkDays: 7,
			wantLen:   2,
		},
		{
			name:      "remainder chunk shorter",
			start:     gun(2024, 1, 1),
			end:       gun(2024, 1, 16),
			chunkDays: 7,
			wantLen:   3,
		},
		{
			name:      "month boundary",
			start:     gun(2024, 2, 26),
			end:       gun(2024, 3, 4),
			chunkDays: 5,
			wantLen:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := ChunkDateRange(tt.start, tt.end, tt.chunkDays)
			if len(chunks) != tt.wantLen {
				t.Fatalf("chunk sayısı = %d, want %d (%v)", len(chunks), tt.wantLen, chunks)
			}

			// kapsama: boşluksuz, örtüşmesiz, [start, end] tam kapalı aralık
			if !chunks[0].Start.Equal(tt.start) {
				t.Errorf("ilk chunk %v ile başlıyor, want %v", chunks[0].Start, tt.start)
			}
			if !chunks[len(chunks)-1].End.Equal(tt.end) {
				t.Errorf("son chunk %v ile bitiyor, want %v", chunks[len(chunks)-1].End, tt.end)
			}
			for i, ch := range chunks {
				if ch.End.Before(ch.Start) {
					t.Errorf("chunk %d ters: %v", i, ch)
				}
				gunSayisi := int(ch.End.Sub(ch.Start).Hours()/24) + 1
				if gunSayisi > tt.chunkDays {
					t.Errorf("chunk %d %d gün sürüyor, limit %d", i, gunSayisi, tt.chunkDays)
				}
				if i > 0 {
					beklenen := chunks[i-1].End.AddDate(0, 0, 1)
					if !ch.Start.Equal(beklenen) {
						t.Errorf("chunk %d %v ile başlıyor, önceki chunk'ın ertesi günü (%v) olmalı", i, ch.Start, beklenen)
					}
				}
			}
		})
	}
}

func TestChunkDateRangeInvertedRange(t *testing.T) {
	chunks := ChunkDateRange(gun(2024, 1, 10), gun(2024, 1, 1), 7)
	if len(chunks) != 0 {
		t.Errorf("ters aralık için %d chunk döndü, want 0", len(chunks))
	}
}
