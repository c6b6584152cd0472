package report

import (
	"fmt"
	"io"
	"text/template"

	"building-navigation-system/internal/building"
)

// TemplateData zawiera dane przekazywane do szablonów raportów
type TemplateData map[string]interface{}

// NewTemplateData tworzy dane szablonu z podstawowymi informacjami o budynku
func NewTemplateData(b building.Navigable) TemplateData {
	data := make(TemplateData)
	data["Name"] = b.Name()
	data["Address"] = b.Address()
	data["Floors"] = b.Floors()
	data["Summary"] = b.String()
	return data
}

// Set ustawia wartość w danych szablonu
func (t TemplateData) Set(key string, value interface{}) TemplateData {
	t[key] = value
	return t
}

var funcMap = template.FuncMap{
	"status": func(available bool) string {
		if available {
			return "Available"
		}
		return "Not Available"
	},
}

var templates = template.Must(template.New("report").Funcs(funcMap).Parse(`
{{- define "options" -}}
Available options at {{ .Name }}:
{{- range .Options }}
 + {{ . }}
{{- end }}
{{ end -}}

{{- define "inventory" -}}
Coffee backstock = {{ .Stock.CoffeeOunces }} ounces
Sugar backstock = {{ .Stock.SugarPackets }} packets
Cream backstock = {{ .Stock.Creams }} servings
Cups backstock = {{ .Stock.Cups }} cups
{{ end -}}

{{- define "collection" -}}
Title			Status
-------------------------------------
{{- range .Collection }}
{{ .Title }}			{{ status .Available }}
{{- end }}
{{ end -}}

{{- define "residents" -}}
{{ .Residents }}
There are {{ len .Residents }} residents living at {{ .Address }}
{{ end -}}
`))

func render(w io.Writer, name string, data TemplateData) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("błąd renderowania raportu %s: %w", name, err)
	}
	return nil
}

// RenderOptions wypisuje menu operacji dostępnych w budynku
func RenderOptions(w io.Writer, b building.Navigable) error {
	return render(w, "options", NewTemplateData(b).Set("Options", b.ShowOptions()))
}

// RenderInventory wypisuje stan magazynu kawiarni
func RenderInventory(w io.Writer, c *building.Cafe) error {
	return render(w, "inventory", NewTemplateData(c).Set("Stock", c.Inventory()))
}

// RenderCollection wypisuje katalog biblioteki wraz z dostępnością
func RenderCollection(w io.Writer, l *building.Library) error {
	return render(w, "collection", NewTemplateData(l).Set("Collection", l.Collection()))
}

// RenderResidents wypisuje listę mieszkańców domu
func RenderResidents(w io.Writer, h *building.House) error {
	return render(w, "residents", NewTemplateData(h).Set("Residents", h.Residents()))
}
