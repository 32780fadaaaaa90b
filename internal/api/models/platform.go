package models

import "strings"

type Platform struct {
	ID   int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name PlatformName `json:"name" gorm:"type:varchar(32);unique;not null"`
}

func (Platform) TableName() string {
	return "platforms"
}

type PlatformName string

const (
	PlatformPC          PlatformName = "pc"
	PlatformPlayStation PlatformName = "playstation"
	PlatformXbox        PlatformName = "xbox"
	PlatformSwitch      PlatformName = "switch"
	PlatformMobile      PlatformName = "mobile"
)

var allPlatforms = []PlatformName{
	PlatformPC, PlatformPlayStation, PlatformXbox, PlatformSwitch, PlatformMobile,
}

func AllPlatformNames() []PlatformName {
	out := make([]PlatformName, len(allPlatforms))
	copy(out, allPlatforms)
	return out
}

func ParsePlatformName(s string) (PlatformName, bool) {
	p := PlatformName(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allPlatforms {
		if p == known {
			return p, true
		}
	}
	return "", false
}
