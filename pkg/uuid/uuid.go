package uuid

import (
	"regexp"

	"github.com/google/uuid"
)

var uuidV7RegExp = regexp.MustCompile("^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$")

//go:generate go run github.com/vektra/mockery/v2 --name Uuid
type Uuid interface {
	// NewV7 returns a time ordered uuid. Ids created later by the same process sort after earlier ones.
	NewV7() uuid.UUID
}

type RealUuid struct{}

func New() Uuid {
	return &RealUuid{}
}

func (u *RealUuid) NewV7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		// only fails if the random source is broken, a v4 id is still unique
		return uuid.New()
	}

	return id
}

// ValidV7 checks if the given string is a valid lowercase UUID v7 string
func ValidV7(id string) bool {
	return uuidV7RegExp.MatchString(id)
}
