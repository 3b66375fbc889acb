package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter produces a standalone HTML page from the markdown report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(report)
	if err != nil {
		return nil, err
	}
	var body bytes.Buffer
	if err := markdown.Convert(md, &body); err != nil {
		return nil, err
	}

	// goldmark omits raw HTML unless WithUnsafe is set, so the body is safe to embed.
	data := struct {
		Title       string
		TaxYear     string
		GeneratedAt string
		Body        template.HTML
	}{
		Title:       "Household Tax Footprint",
		TaxYear:     report.Footprint.TaxYear,
		GeneratedAt: report.GeneratedAt.Format("2 January 2006 15:04"),
		Body:        template.HTML(body.String()),
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
