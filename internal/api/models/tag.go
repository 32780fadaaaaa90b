package models

import "strings"

// Tag is the genre assigned to a game. The vocabulary is closed: anything
// outside it is rejected at parse time, never stored.
type Tag string

const (
	TagAction     Tag = "action"
	TagRPG        Tag = "rpg"
	TagAdventure  Tag = "adventure"
	TagStrategy   Tag = "strategy"
	TagShooter    Tag = "shooter"
	TagSimulation Tag = "simulation"
	TagSports     Tag = "sports"
	TagHorror     Tag = "horror"
)

var allTags = []Tag{
	TagAction, TagRPG, TagAdventure, TagStrategy,
	TagShooter, TagSimulation, TagSports, TagHorror,
}

func AllTags() []Tag {
	out := make([]Tag, len(allTags))
	copy(out, allTags)
	return out
}

// ParseTag normalizes a raw tag string (trim, case-fold) and reports
// whether it names a known genre.
func ParseTag(s string) (Tag, bool) {
	t := Tag(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allTags {
		if t == known {
			return t, true
		}
	}
	return "", false
}
