package kargo

import "strings"

// parcaSay: Tire ile ayrılmış numara listesindeki parça sayısı.
// Boş parçalar ("12--13" gibi yazım hataları) sayılmaz.
func parcaSay(liste string) int {
	adet := 0
	for _, p := range strings.Split(liste, "-") {
		if strings.TrimSpace(p) != "" {
			adet++
		}
	}
	return adet
}

// EvrakSayisiHesapla: Kayıttaki toplam evrak sayısı. İrsaliye ve focal
// evrak numaralarındaki parça sayıları + elle girilen ek evrak sayısı.
// İstemciden gelen değer ne olursa olsun sunucu tarafında bu fonksiyonla
// yeniden hesaplanır.
func EvrakSayisiHesapla(irsaliyeNolari, focalEvrakNolari string, ekEvrak int) int {
	return parcaSay(irsaliyeNolari) + parcaSay(focalEvrakNolari) + ekEvrak
}
