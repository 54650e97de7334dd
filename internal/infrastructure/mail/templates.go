package mail

import (
	"bytes"
	"embed"
	"html/template"

	"wheelworks/internal/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type quoteEmailData struct {
	Quote      entities.Quote
	Distance   float64
	HasDist    bool
	WheelCount int
	HasWheels  bool
	PhotoCount int
}

func newQuoteEmailData(q entities.Quote) quoteEmailData {
	data := quoteEmailData{Quote: q, PhotoCount: q.PhotoCount}
	if q.Distance != nil {
		data.Distance = *q.Distance
		data.HasDist = true
	}
	if q.WheelCount != nil {
		data.WheelCount = *q.WheelCount
		data.HasWheels = true
	}
	return data
}

func renderQuoteTemplate(name string, q entities.Quote) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, newQuoteEmailData(q)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
