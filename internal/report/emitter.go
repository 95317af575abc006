package report

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shenikar/incident_admin/internal/aggregate"
	"github.com/shenikar/incident_admin/internal/models"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

const ContentTypePDF = "application/pdf"

// Document - готовый к отдаче файл отчета
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Emitter рендерит отчеты в HTML и конвертирует их в PDF
type Emitter struct {
	converter Converter
	templates *template.Template
	logger    *logrus.Logger
	now       func() time.Time
}

func NewEmitter(converter Converter, logger *logrus.Logger) (*Emitter, error) {
	tmpl, err := template.New("report").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report templates: %w", err)
	}
	return &Emitter{
		converter: converter,
		templates: tmpl,
		logger:    logger,
		now:       time.Now,
	}, nil
}

type histogramRow struct {
	Label string
	Count int
}

type summaryData struct {
	Report      *aggregate.Report
	GeneratedAt time.Time
	Severity    []histogramRow
	Status      []histogramRow
	Type        []histogramRow
	Buckets     []histogramRow
}

// Summary рендерит сводный отчет
func (e *Emitter) Summary(ctx context.Context, r *aggregate.Report) (*Document, error) {
	now := e.now()
	data := summaryData{
		Report:      r,
		GeneratedAt: now,
		Severity:    histogramRows(r.Histograms.Severity),
		Status:      histogramRows(r.Histograms.Status),
		Type:        histogramRows(r.Histograms.Type),
	}
	for i, label := range r.Series.Labels {
		data.Buckets = append(data.Buckets, histogramRow{Label: label, Count: r.Series.Counts[i]})
	}

	name := fmt.Sprintf("incident-report-%s-%s-%s.pdf", r.Source, r.Window.Period, now.Format("20060102_150405"))
	return e.render(ctx, "summary.html", data, name)
}

type singleData struct {
	Incident    *models.NormalizedIncident
	GeneratedAt time.Time
}

// Single рендерит отчет по одному инциденту
func (e *Emitter) Single(ctx context.Context, n *models.NormalizedIncident) (*Document, error) {
	now := e.now()
	id := n.ID
	if id == "" {
		id = "report"
	}
	name := fmt.Sprintf("incident-%s-%s.pdf", safeFileName(id), now.Format("20060102_150405"))
	return e.render(ctx, "single.html", singleData{Incident: n, GeneratedAt: now}, name)
}

func (e *Emitter) render(ctx context.Context, tmpl string, data any, filename string) (*Document, error) {
	log := e.logger.WithFields(logrus.Fields{
		"component": "report",
		"template":  tmpl,
		"filename":  filename,
	})

	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, tmpl, data); err != nil {
		log.WithError(err).Error("Failed to render report template")
		return nil, fmt.Errorf("failed to render %s: %w", tmpl, err)
	}

	pdf, err := e.converter.Convert(ctx, buf.Bytes())
	if err != nil {
		log.WithError(err).Error("Failed to convert report to pdf")
		return nil, fmt.Errorf("failed to convert %s: %w", tmpl, err)
	}

	log.WithField("size", humanize.Bytes(uint64(len(pdf)))).Info("Report generated")
	return &Document{Filename: filename, ContentType: ContentTypePDF, Data: pdf}, nil
}

// histogramRows сортирует гистограмму по убыванию количества, затем по метке
func histogramRows(h map[string]int) []histogramRow {
	rows := make([]histogramRow, 0, len(h))
	for label, count := range h {
		rows = append(rows, histogramRow{Label: label, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}

func safeFileName(name string) string {
	return strings.NewReplacer("/", "_", "\\", "_", " ", "_", "\"", "_").Replace(name)
}

var funcs = template.FuncMap{
	"label": label,
	"count": func(n int) string { return humanize.Comma(int64(n)) },
	"upper": strings.ToUpper,
	"datetime": func(t *time.Time) string {
		if t == nil {
			return "N/A"
		}
		return t.Format("Jan 02, 2006 15:04")
	},
	"stamp": func(t time.Time) string {
		if t.IsZero() {
			return "N/A"
		}
		return t.Format("Jan 02, 2006 15:04")
	},
	"orNA": func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	},
	"isCCTV": func(source string) bool {
		return strings.EqualFold(source, models.SourceCCTV)
	},
}

// label: "under_review" -> "Under review"
func label(s string) string {
	if s == "" {
		return "N/A"
	}
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}
