package models

import "strings"

type UserProfile struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Avatar     string     `json:"avatar"`
	Signature  string     `json:"signature,omitempty"`
	Geographic Geographic `json:"geographic"`
	Tags       []Tag      `json:"tags"`
}

type Geographic struct {
	Province string `json:"province,omitempty"`
	City     string `json:"city,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Display joins the non-empty parts in province, city, address order.
func (g Geographic) Display() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{g.Province, g.City, g.Address} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// Clone returns a deep copy so callers never share the tag slice.
func (u *UserProfile) Clone() *UserProfile {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Tags = append([]Tag(nil), u.Tags...)
	return &clone
}
