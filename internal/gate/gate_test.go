package gate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bizleads/local-leads/internal/model"
)

func makeLeads(n int) []model.Lead {
	leads := make([]model.Lead, n)
	for i := range leads {
		leads[i] = model.Lead{Name: fmt.Sprintf("Biz %d", i), Address: fmt.Sprintf("%d Main St", i)}
	}
	return leads
}

func TestApply_Caps(t *testing.T) {
	caps := DefaultCaps()
	leads := makeLeads(10)

	tests := []struct {
		tier model.AccessTier
		want int
	}{
		{model.TierPublic, 5},
		{model.TierRegistered, 7},
		{model.TierPro, 10},
		{model.TierElite, 10},
	}
	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			got := caps.Apply(leads, tt.tier)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestApply_StrictPrefix(t *testing.T) {
	caps := DefaultCaps()
	for _, n := range []int{0, 1, 5, 6, 20} {
		leads := makeLeads(n)
		for _, tier := range []model.AccessTier{model.TierPublic, model.TierRegistered, model.TierPro, model.TierElite} {
			got := caps.Apply(leads, tier)
			assert.LessOrEqual(t, len(got), len(leads))
			for i := range got {
				assert.Equal(t, leads[i], got[i], "n=%d tier=%s slot=%d", n, tier, i)
			}
		}
	}
}

func TestApply_ShortInputUntouched(t *testing.T) {
	leads := makeLeads(3)
	got := DefaultCaps().Apply(leads, model.TierPublic)
	assert.Len(t, got, 3)
}

func TestApply_ZeroCapMeansUnlimited(t *testing.T) {
	caps := Caps{Public: 0, Registered: 0}
	assert.Len(t, caps.Apply(makeLeads(50), model.TierPublic), 50)
}

func TestExportPermissions(t *testing.T) {
	assert.False(t, CanEmailExport(model.TierPublic))
	assert.True(t, CanEmailExport(model.TierRegistered))
	assert.True(t, CanEmailExport(model.TierPro))
	assert.True(t, CanEmailExport(model.TierElite))

	assert.False(t, CanCSVExport(model.TierPublic))
	assert.False(t, CanCSVExport(model.TierRegistered))
	assert.True(t, CanCSVExport(model.TierPro))
	assert.True(t, CanCSVExport(model.TierElite))
}
