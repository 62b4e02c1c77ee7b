package models

import "strings"

// BusinessCriteria carries the optional business search constraints.
// City is held lower-cased; the store matches it against cityLower exactly.
type BusinessCriteria struct {
	Name string   `json:"name"`
	City string   `json:"city"`
	Tags []string `json:"tags" validate:"omitempty,dive,docid"`
}

// PostCriteria carries the optional post search constraints (tags only).
type PostCriteria struct {
	Tags []string `json:"tags" validate:"omitempty,dive,docid"`
}

// ParseBusinessCriteria normalizes raw query parameters: the comma-separated
// tag list is split and the city is lower-cased before any query runs.
func ParseBusinessCriteria(name, city, tags string) BusinessCriteria {
	return BusinessCriteria{
		Name: strings.TrimSpace(name),
		City: strings.ToLower(strings.TrimSpace(city)),
		Tags: SplitTagList(tags),
	}
}

// ParsePostCriteria normalizes a raw comma-separated tag list.
func ParsePostCriteria(tags string) PostCriteria {
	return PostCriteria{Tags: SplitTagList(tags)}
}

// SplitTagList splits a comma-separated tag-id list, dropping empty entries.
func SplitTagList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
