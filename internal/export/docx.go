package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Word çıktısı, paket içinde docx kütüphanesi bulunmadığı için asgari
// bir WordprocessingML paketi olarak stdlib archive/zip ile yazılır.
// Tutanak düz paragraflardan ibaret olduğundan bu kadarı yeterlidir.

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const docxDocumentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const docxDocumentFooter = `</w:body></w:document>`

// BuildTutanakDocx: Tutanak metnini tek sayfalık .docx dosyası olarak
// üretir. Paragraflar RenderTutanakText çıktısındaki boş satırlarla
// ayrılır; başlık ilk paragraf olarak eklenir.
func BuildTutanakDocx(row TutanakRow) ([]byte, error) {
	metin := RenderTutanakText(row)

	var doc strings.Builder
	doc.WriteString(docxDocumentHeader)
	doc.WriteString(paragraf("EVRAK KAYIP / EKSİKLİK TUTANAĞI"))
	for _, p := range strings.Split(metin, "\n\n") {
		doc.WriteString(paragraf(p))
	}
	doc.WriteString(docxDocumentFooter)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parcalar := []struct {
		ad     string
		icerik string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", doc.String()},
	}
	for _, p := range parcalar {
		w, err := zw.Create(p.ad)
		if err != nil {
			return nil, fmt.Errorf("docx parçası oluşturulamadı (%s): %w", p.ad, err)
		}
		if _, err := w.Write([]byte(p.icerik)); err != nil {
			return nil, fmt.Errorf("docx parçası yazılamadı (%s): %w", p.ad, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx kapatılamadı: %w", err)
	}
	return buf.Bytes(), nil
}

func paragraf(metin string) string {
	var esc bytes.Buffer
	_ = xml.EscapeText(&esc, []byte(metin))
	return `<w:p><w:r><w:t xml:space="preserve">` + esc.String() + `</w:t></w:r></w:p>`
}
