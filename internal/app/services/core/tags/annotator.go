// Package tags keeps the labels a user adds to their profile during a session.
// Local tags never leave this service.
package tags

import (
	"fmt"
	"reservation-center/internal/app/models"
	"reservation-center/internal/pkg/constvars"
	"strings"
)

// Annotator is not safe for concurrent use; the dashboard controller owns one
// per session and serialises access.
type Annotator struct {
	local []models.LocalTag
}

func NewAnnotator() *Annotator {
	return &Annotator{local: []models.LocalTag{}}
}

// Add appends label unless it is blank or already present. The label is stored
// as given; only the blank check trims it. Server tags are not consulted.
func (a *Annotator) Add(label string) []models.LocalTag {
	if strings.TrimSpace(label) == "" || a.contains(label) {
		return a.Tags()
	}

	a.local = append(a.local, models.LocalTag{
		Key:   fmt.Sprintf(constvars.LocalTagKeyFormat, len(a.local)),
		Label: label,
	})
	return a.Tags()
}

func (a *Annotator) Tags() []models.LocalTag {
	return append([]models.LocalTag{}, a.local...)
}

func (a *Annotator) contains(label string) bool {
	for _, tag := range a.local {
		if tag.Label == label {
			return true
		}
	}
	return false
}

// Merge returns server tags followed by local tags. Neither input is modified.
func Merge(serverTags []models.Tag, localTags []models.LocalTag) []models.Tag {
	merged := make([]models.Tag, 0, len(serverTags)+len(localTags))
	merged = append(merged, serverTags...)
	return append(merged, localTags...)
}
