package report

import "time"

// DateChunk: Kapalı [Start, End] gün aralığı.
type DateChunk struct {
	Start time.Time
	End   time.Time
}

// ChunkDateRange: [start, end] kapalı aralığını her biri en fazla
// chunkSizeDays takvim günü süren, bitişik ve örtüşmeyen parçalara
// böler. Harici API geniş aralıklarda sessizce eksik veri döndürdüğü
// için çağıranlar parça başına bir istek atıp sonuçları birleştirir.
// end-start < chunkSizeDays ise tek parça döner; aralıktaki hiçbir gün
// atlanmaz veya iki kez kapsanmaz.
func ChunkDateRange(start, end time.Time, chunkSizeDays int) []DateChunk {
	start = gunBasi(start)
	end = gunBasi(end)
	if end.Before(start) {
		return nil
	}
	if chunkSizeDays < 1 {
		chunkSizeDays = 1
	}

	var chunks []DateChunk
	for cur := start; !cur.After(end); {
		chunkEnd := cur.AddDate(0, 0, chunkSizeDays-1)
		if chunkEnd.After(end) {
			chunkEnd = end
		}
		chunks = append(chunks, DateChunk{Start: cur, End: chunkEnd})
		cur = chunkEnd.AddDate(0, 0, 1)
	}
	return chunks
}

func gunBasi(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
