package models

// Tag is a server-provided label on the user profile.
type Tag struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// LocalTag is added by the user during a session and never leaves this service.
type LocalTag = Tag
