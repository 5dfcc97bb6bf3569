package models

// DashboardView is what the rendering surface reads.
type DashboardView struct {
	Loading           bool          `json:"loading"`
	Profile           *UserProfile  `json:"profile"`
	Address           string        `json:"address,omitempty"`
	SelectedTab       Tab           `json:"selected_tab"`
	VisibleCollection interface{}   `json:"visible_collection"`
	LocalTags         []LocalTag    `json:"local_tags"`
	Tags              []Tag         `json:"tags"`
	Notification      *Notification `json:"notification,omitempty"`
}
