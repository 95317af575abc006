package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/incident_admin/internal/aggregate"
	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/period"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConverter struct {
	html []byte
	err  error
}

func (f *fakeConverter) Convert(_ context.Context, html []byte) ([]byte, error) {
	f.html = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func newTestEmitter(t *testing.T, conv Converter) (*Emitter, *bytes.Buffer) {
	t.Helper()
	var logBuffer bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logBuffer)
	logger.SetFormatter(&logrus.JSONFormatter{})

	e, err := NewEmitter(conv, logger)
	require.NoError(t, err)
	e.now = func() time.Time { return time.Date(2024, 3, 15, 14, 30, 5, 0, time.UTC) }
	return e, &logBuffer
}

func TestEmitter_Summary(t *testing.T) {
	conv := &fakeConverter{}
	e, _ := newTestEmitter(t, conv)

	w, err := period.Resolve(period.Week, "2024-03-15", "")
	require.NoError(t, err)
	incidents := []*models.Incident{
		{ID: 1, Source: models.SourceMobile, Type: "fire", Status: "resolved", Severity: "critical", Location: "Baritan Hall", Timestamp: time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC)},
		{ID: 2, Source: models.SourceMobile, Type: "flood", Status: "pending", Severity: "low", Location: "Market", Timestamp: time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)},
	}
	r := aggregate.Build(incidents, models.SourceMobile, w)

	doc, err := e.Summary(context.Background(), r)
	require.NoError(t, err)

	assert.Equal(t, "incident-report-mobile-week-20240315_143005.pdf", doc.Filename)
	assert.Equal(t, ContentTypePDF, doc.ContentType)
	assert.Equal(t, []byte("%PDF-1.4 fake"), doc.Data)

	html := string(conv.html)
	assert.Contains(t, html, "MOBILE Incident Report")
	assert.Contains(t, html, "Baritan Hall")
	assert.Contains(t, html, "By severity")
	assert.Contains(t, html, "2024-03-10")
}

func TestEmitter_Summary_CCTVHasNoSeverity(t *testing.T) {
	conv := &fakeConverter{}
	e, _ := newTestEmitter(t, conv)

	w, err := period.Resolve(period.Year, "2024-03-15", period.YearAll)
	require.NoError(t, err)
	r := aggregate.Build(nil, models.SourceCCTV, w)

	doc, err := e.Summary(context.Background(), r)
	require.NoError(t, err)

	assert.Equal(t, "incident-report-cctv-year-20240315_143005.pdf", doc.Filename)
	html := string(conv.html)
	assert.NotContains(t, html, "By severity")
	assert.Contains(t, html, "No incidents in the selected period.")
}

func TestEmitter_Single(t *testing.T) {
	conv := &fakeConverter{}
	e, _ := newTestEmitter(t, conv)

	ts := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)
	lead := models.Responder{Name: "Juan", ResponderType: "fire"}
	n := &models.NormalizedIncident{
		ID:                   "fb/7",
		Source:               models.SourceMobile,
		Type:                 "road_accident",
		Location:             "Gov. Pascual Ave",
		Status:               "in_progress",
		Timestamp:            &ts,
		Description:          "Two vehicles <collided>",
		Responders:           []models.Responder{lead, {Name: "Maria"}},
		LeadResponder:        &lead,
		AdditionalResponders: []models.Responder{{Name: "Maria"}},
		MapURL:               "https://api.mapbox.com/static/pin.png",
	}

	doc, err := e.Single(context.Background(), n)
	require.NoError(t, err)

	assert.Equal(t, "incident-fb_7-20240315_143005.pdf", doc.Filename)
	html := string(conv.html)
	assert.Contains(t, html, "Road accident")
	assert.Contains(t, html, "In progress")
	assert.Contains(t, html, "Two vehicles &lt;collided&gt;")
	assert.Contains(t, html, "lead responder")
	assert.Contains(t, html, "Maria")
	assert.Contains(t, html, "Location Map")
}

func TestEmitter_ConverterError(t *testing.T) {
	conv := &fakeConverter{err: errors.New("chromium not found")}
	e, logs := newTestEmitter(t, conv)

	_, err := e.Single(context.Background(), &models.NormalizedIncident{ID: "1", Type: "fire", Status: "pending"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chromium not found")
	assert.Contains(t, logs.String(), "Failed to convert report to pdf")
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Under review", label("under_review"))
	assert.Equal(t, "N/A", label(""))
}

func TestHistogramRows(t *testing.T) {
	rows := histogramRows(map[string]int{"fire": 2, "flood": 5, "accident": 2})
	require.Len(t, rows, 3)
	assert.Equal(t, "flood", rows[0].Label)
	assert.Equal(t, "accident", rows[1].Label)
	assert.Equal(t, "fire", rows[2].Label)
}

func TestEmitter_Summary_FormatsCounts(t *testing.T) {
	conv := &fakeConverter{}
	e, logs := newTestEmitter(t, conv)

	w, err := period.Resolve(period.Year, "2024-03-15", period.YearAll)
	require.NoError(t, err)
	r := &aggregate.Report{
		Source: models.SourceCCTV,
		Window: w,
		Total:  1234,
		Series: aggregate.Series{Labels: []string{"2024"}, Counts: []int{1234}},
		Histograms: aggregate.Histograms{
			Status: map[string]int{"open": 1234},
			Type:   map[string]int{"intrusion": 1234},
		},
	}

	_, err = e.Summary(context.Background(), r)
	require.NoError(t, err)

	assert.Contains(t, string(conv.html), "1,234")
	assert.Contains(t, logs.String(), `"size":"13 B"`)
}
