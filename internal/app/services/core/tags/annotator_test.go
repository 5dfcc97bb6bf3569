package tags

import (
	"reservation-center/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotator_Add(t *testing.T) {
	t.Run("Blank Labels Ignored", func(t *testing.T) {
		annotator := NewAnnotator()
		assert.Empty(t, annotator.Add(""))
		assert.Empty(t, annotator.Add("   "))
		assert.Empty(t, annotator.Add("\t\n"))
	})

	t.Run("Duplicate Ignored", func(t *testing.T) {
		annotator := NewAnnotator()
		annotator.Add("vip")
		tags := annotator.Add("vip")
		assert.Equal(t, []models.LocalTag{{Key: "new-0", Label: "vip"}}, tags)
	})

	t.Run("Keys Follow Insertion Order", func(t *testing.T) {
		annotator := NewAnnotator()
		annotator.Add("vip")
		annotator.Add("allergic")
		tags := annotator.Add("night shift")
		assert.Equal(t, []models.LocalTag{
			{Key: "new-0", Label: "vip"},
			{Key: "new-1", Label: "allergic"},
			{Key: "new-2", Label: "night shift"},
		}, tags)
	})

	t.Run("Match Is Exact", func(t *testing.T) {
		annotator := NewAnnotator()
		annotator.Add("vip")
		annotator.Add("VIP")
		tags := annotator.Add(" vip ")
		assert.Len(t, tags, 3)
		assert.Equal(t, " vip ", tags[2].Label)
	})

	t.Run("Returned Slice Is A Copy", func(t *testing.T) {
		annotator := NewAnnotator()
		tags := annotator.Add("vip")
		tags[0].Label = "changed"
		assert.Equal(t, "vip", annotator.Tags()[0].Label)
	})
}

func TestMerge(t *testing.T) {
	server := []models.Tag{{Key: "0", Label: "calm"}}
	local := []models.LocalTag{{Key: "new-0", Label: "calm"}}

	merged := Merge(server, local)

	assert.Equal(t, []models.Tag{{Key: "0", Label: "calm"}, {Key: "new-0", Label: "calm"}}, merged)
	assert.Len(t, server, 1)
	assert.Len(t, local, 1)
	assert.Empty(t, Merge(nil, nil))
}
