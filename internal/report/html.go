package report

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/gomarkdown/markdown"
	mhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed report.tmpl
var reportTmpl string

//go:embed narrative.md
var narrativeMD string

var pageTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"percent": func(v float64) float64 { return v * 100 },
}).Parse(reportTmpl))

type pageData struct {
	Ev        *Evaluation
	Narrative template.HTML
	ChartSrc  string
}

// mdToHTML converts the embedded markdown narrative to HTML.
func mdToHTML(md string) template.HTML {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(md))
	renderer := mhtml.NewRenderer(mhtml.RendererOptions{Flags: mhtml.CommonFlags})
	return template.HTML(markdown.Render(doc, renderer))
}

// RenderHTML produces the report page. chartSrc is the image source
// for the ROC chart: a URL when served, a data URI when written to a
// standalone file.
func RenderHTML(ev *Evaluation, chartSrc string) ([]byte, error) {
	buf := new(bytes.Buffer)
	err := pageTemplate.Execute(buf, pageData{
		Ev:        ev,
		Narrative: mdToHTML(narrativeMD),
		ChartSrc:  chartSrc,
	})
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

// ChartDataURI inlines the chart PNG so the HTML file is
// self-contained.
func ChartDataURI(chartPath string) (string, error) {
	b, err := os.ReadFile(chartPath)
	if err != nil {
		return "", fmt.Errorf("read chart: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b), nil
}

// WriteHTML renders the standalone report file with the chart inlined.
func WriteHTML(path string, ev *Evaluation, chartPath string) error {
	src, err := ChartDataURI(chartPath)
	if err != nil {
		return err
	}
	b, err := RenderHTML(ev, src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
