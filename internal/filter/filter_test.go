package filter

import (
	"testing"
	"time"

	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allYears(t *testing.T) period.Window {
	w, err := period.Resolve(period.Year, "2024-01-01", period.YearAll)
	require.NoError(t, err)
	return w
}

func mobileIncident() *models.Incident {
	return &models.Incident{
		ID:           7,
		FirebaseID:   "fbABC",
		Source:       models.SourceMobile,
		Type:         "fire",
		Status:       "pending",
		Location:     "Baritan Street",
		Department:   "BFP",
		ReporterName: "Juan Dela Cruz",
		Description:  "Smoke near the market",
		Timestamp:    time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC),
	}
}

func TestMatch_SourceAndHiddenAlwaysApplied(t *testing.T) {
	inc := mobileIncident()
	p := Build(Criteria{Source: models.SourceMobile, Window: allYears(t)})
	assert.True(t, p.Match(inc))

	p = Build(Criteria{Source: models.SourceCCTV, Window: allYears(t)})
	assert.False(t, p.Match(inc))

	p = Build(Criteria{Source: models.SourceMobile, Hidden: true, Window: allYears(t)})
	assert.False(t, p.Match(inc))

	assert.False(t, p.Match(nil))
}

func TestMatch_ConsistentWithClauses(t *testing.T) {
	inc := mobileIncident()
	day, err := period.Resolve(period.Day, "2024-03-15", "")
	require.NoError(t, err)
	otherDay, err := period.Resolve(period.Day, "2024-03-16", "")
	require.NoError(t, err)

	types := []string{"", "fire", "flood"}
	statuses := []string{"", "pending", "resolved"}
	searches := []string{"", "market", "nothing-matches"}
	windows := []period.Window{day, otherDay}

	for _, typ := range types {
		for _, status := range statuses {
			for _, search := range searches {
				for _, w := range windows {
					c := Criteria{Source: models.SourceMobile, Type: typ, Status: status, Search: search, Window: w}
					expected := (typ == "" || typ == inc.Type) &&
						(status == "" || status == inc.Status) &&
						(search == "" || search == "market") &&
						w.Contains(inc.Timestamp)
					assert.Equal(t, expected, Build(c).Match(inc), "%+v", c)
				}
			}
		}
	}
}

func TestMatch_SearchDateProjections(t *testing.T) {
	inc := mobileIncident()
	for _, needle := range []string{"March", "march", "2024", "15", "March 15, 2024", "2024-03-15 09:30", "bfp", "fbabc"} {
		p := Build(Criteria{Source: models.SourceMobile, Search: needle, Window: allYears(t)})
		assert.True(t, p.Match(inc), needle)
	}

	p := Build(Criteria{Source: models.SourceMobile, Search: "April", Window: allYears(t)})
	assert.False(t, p.Match(inc))
}

func TestMatch_MobileOnlySearchFields(t *testing.T) {
	inc := mobileIncident()
	p := Build(Criteria{Source: models.SourceMobile, Search: "dela cruz", Window: allYears(t)})
	assert.True(t, p.Match(inc))

	inc.Source = models.SourceCCTV
	p = Build(Criteria{Source: models.SourceCCTV, Search: "dela cruz", Window: allYears(t)})
	assert.False(t, p.Match(inc), "reporter name is not searched for cctv incidents")
}

func TestBuild_ReferentiallyTransparent(t *testing.T) {
	c := Criteria{Source: models.SourceMobile, Type: "fire", Search: "Market", Window: allYears(t)}
	a, b := Build(c), Build(c)
	assert.Equal(t, a, b)

	sqlA, argsA := a.SQL(1)
	sqlB, argsB := b.SQL(1)
	assert.Equal(t, sqlA, sqlB)
	assert.Equal(t, argsA, argsB)
}

func TestSQL_Rendering(t *testing.T) {
	w, err := period.Resolve(period.Month, "2024-02-10", "")
	require.NoError(t, err)

	where, args := Build(Criteria{Source: models.SourceCCTV, Status: "resolved", Search: "50%", Window: w}).SQL(3)

	assert.Contains(t, where, "source = $3")
	assert.Contains(t, where, "hidden = $4")
	assert.Contains(t, where, "status = $5")
	assert.Contains(t, where, "COALESCE(firebase_id, '') ILIKE $6")
	assert.NotContains(t, where, "reporter_name")
	assert.Contains(t, where, `COALESCE("timestamp", created_at) BETWEEN $7::timestamp AND $8::timestamp`)
	require.Len(t, args, 6)
	assert.Equal(t, `%50\%%`, args[3])
	assert.Equal(t, "2024-02-01 00:00:00", args[4])
	assert.Equal(t, "2024-02-29 23:59:59.999999", args[5])
}

func TestSQL_YearAndAllYears(t *testing.T) {
	w, err := period.Resolve(period.Year, "2024-02-10", "2022")
	require.NoError(t, err)
	where, args := Build(Criteria{Source: models.SourceMobile, Window: w}).SQL(1)
	assert.Contains(t, where, `EXTRACT(YEAR FROM COALESCE("timestamp", created_at)) = $3`)
	assert.Equal(t, 2022, args[2])

	where, args = Build(Criteria{Source: models.SourceMobile, Window: allYears(t)}).SQL(1)
	assert.Equal(t, "source = $1 AND hidden = $2", where)
	assert.Len(t, args, 2)
}
