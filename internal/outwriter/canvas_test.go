package outwriter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/brdge/sprintplan/core"
	"github.com/brdge/sprintplan/internal/contract"
	"github.com/brdge/sprintplan/schema"
)

func TestRenderCapacityCanvas(t *testing.T) {
	report := fixtureReport(t)
	cfg := &contract.Config{Precision: 1}

	md := RenderCapacityCanvas(report, nil, cfg)

	assert.Contains(t, md, "# Bridge capacity")
	assert.Contains(t, md, "| 100 | 2024-01-08 | 2024-01-21 | 11 |")
	assert.Contains(t, md, "**Sprint 100**")
	assert.Contains(t, md, "- Bea joins on 2024-01-15")
	assert.Contains(t, md, "- Bea is ramping at 50%")
	assert.Contains(t, md, "- scheduled work exceeds capacity by 6.8 points")
}

func TestRenderCapacityCanvasWithGrid(t *testing.T) {
	report := fixtureReport(t)
	cfg := &contract.Config{Precision: 1}
	grids := []core.Grid{
		{
			Window: report.Sprints[0].Window,
			Days:   []time.Time{mustDate(t, "2024-01-08"), mustDate(t, "2024-01-09")},
			Rows: []core.GridRow{
				{Name: "Ada", Cells: []string{core.CellAvail, core.CellL1}},
			},
		},
	}

	md := RenderCapacityCanvas(report, grids, cfg)

	assert.Contains(t, md, "## Sprint 100 calendar")
	assert.Contains(t, md, "| Member | Mo 8 | Tu 9 |")
	assert.Contains(t, md, "| Ada |   | L1 |")
}

func TestRenderAbsencesCanvas(t *testing.T) {
	report := fixtureReport(t)
	cfg := &contract.Config{
		Precision: 1,
		Regions:   []schema.Region{schema.RegionEngland},
	}
	conflicts := map[int][]core.Conflict{
		100: {{Name: "Ada", Date: mustDate(t, "2024-01-10"), Tier: schema.TierL1}},
	}
	holidays := map[schema.Region][]schema.Holiday{
		schema.RegionEngland: {{Date: mustDate(t, "2024-12-25"), Name: "Christmas Day"}},
	}

	md := RenderAbsencesCanvas(report, conflicts, holidays, cfg)

	assert.Contains(t, md, "# Bridge absences")
	assert.Contains(t, md, "## Sprint 100 (2024-01-08 - 2024-01-21)")
	assert.Contains(t, md, "- Ada: 2024-01-10 - 2024-01-11")
	assert.Contains(t, md, "- Company social on 2024-01-18")
	assert.Contains(t, md, "**People of interest**")
	assert.Contains(t, md, "- Mgr Smith: 2024-01-15")
	assert.Contains(t, md, "- Ada is on L1 duty on 2024-01-10 but is absent")
	assert.Contains(t, md, "**England**")
	assert.Contains(t, md, "- 2024-12-25: Christmas Day")
}

func TestRenderSupportCanvas(t *testing.T) {
	report := fixtureReport(t)
	cfg := &contract.Config{Precision: 1}

	md := RenderSupportCanvas(report, nil, cfg)

	assert.Contains(t, md, "# Bridge support")
	assert.Contains(t, md, "- Ada (L1): 2024-01-09")
	assert.Contains(t, md, "- Bea (L2): 2024-01-16 - 2024-01-17")
	assert.NotContains(t, md, "**Warnings**")
}
