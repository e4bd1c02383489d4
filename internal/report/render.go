package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart layout constants.
const (
	chartWidth    = "100%"
	chartHeight   = "420px"
	chartTheme    = "dark"
	xAxisRotate   = 60
	barSeriesName = "value"
)

//go:embed report.html
var pageTemplate string

// loadTemplate parses the rendering template once per process. The parsed
// template is read-only and shared across concurrently running reports.
var loadTemplate = sync.OnceValues(func() (*template.Template, error) {
	tpl, err := template.New("report.html").Funcs(template.FuncMap{
		"barWidth": barWidth,
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}

	return tpl, nil
})

// pageData is the template input for one rendered report.
type pageData struct {
	Doc             *Document
	Chart           template.HTML
	TotalLabel      string
	QualifyingLabel string
}

// Render converts a validated report document into the human-readable HTML
// artifact.
func Render(doc *Document) ([]byte, error) {
	tpl, err := loadTemplate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	chart, err := renderChart(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	total := doc.ClassCount()
	qualifying := total

	if doc.Statistics != nil {
		total = doc.Statistics.Total
		qualifying = doc.Statistics.Qualifying
	}

	var buf bytes.Buffer

	execErr := tpl.Execute(&buf, pageData{
		Doc:             doc,
		Chart:           chart,
		TotalLabel:      humanize.Comma(int64(total)),
		QualifyingLabel: humanize.Comma(int64(qualifying)),
	})
	if execErr != nil {
		return nil, fmt.Errorf("%w: render report: %w", ErrProcessing, execErr)
	}

	return buf.Bytes(), nil
}

// renderChart builds the per-class bar chart and returns its div and script
// as an embeddable fragment. Documents with no qualifying values get no
// chart.
func renderChart(doc *Document) (template.HTML, error) {
	var (
		labels []string
		values []opts.BarData
	)

	for _, pkg := range doc.Packages {
		for _, cls := range pkg.Classes {
			value, ok := parseValue(cls.Value)
			if !ok {
				continue
			}

			labels = append(labels, cls.ID)
			values = append(values, opts.BarData{Value: value})
		}
	}

	if len(labels) == 0 {
		return "", nil
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
			Theme:  chartTheme,
		}),
		charts.WithTitleOpts(opts.Title{Title: doc.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, Interval: "0"},
		}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries(barSeriesName, values)

	var buf bytes.Buffer

	renderErr := bar.Render(&buf)
	if renderErr != nil {
		return "", fmt.Errorf("render chart: %w", renderErr)
	}

	return template.HTML(extractChartContent(buf.String())), nil
}

// extractChartContent slices the chart div and script out of the full HTML
// page echarts produces, so the fragment can be embedded in the report
// template.
func extractChartContent(html string) string {
	trimmed := strings.TrimSpace(html)
	if !strings.HasPrefix(trimmed, "<!DOCTYPE") && !strings.HasPrefix(trimmed, "<html") {
		return html
	}

	start := strings.Index(html, `<div class="container">`)
	if start == -1 {
		return html
	}

	end := strings.Index(html, `</body>`)
	if end == -1 {
		return html
	}

	return html[start:end]
}

// barWidth formats a bar indicator as a CSS width.
func barWidth(bar *float64) template.CSS {
	if bar == nil {
		return "0%"
	}

	return template.CSS(fmt.Sprintf("%.1f%%", *bar*percentScale))
}
