package main

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/justtrackio/crudgen/pkg/db-repo"
	"github.com/stretchr/testify/assert"
)

var _ db_repo.Model[HeroCreate, HeroPublic] = &Hero{}

func TestHero_FromPublicKeepsId(t *testing.T) {
	id := uuid.MustParse("01890a5d-ac96-774b-bcce-b302099a8057")
	createdAt := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	hero := &Hero{}
	hero.SetId(id)
	hero.SetCreatedAt(&createdAt)
	hero.FromCreate(HeroCreate{Name: "Clark", SecretName: "Superman"})

	hero.FromPublic(HeroPublic{
		Uuid:       db_repo.Uuid{Id: uuid.Nil},
		HeroCreate: HeroCreate{Name: "Bruce", SecretName: "Batman"},
	})

	assert.Equal(t, HeroPublic{
		Uuid:       db_repo.Uuid{Id: id},
		HeroCreate: HeroCreate{Name: "Bruce", SecretName: "Batman"},
	}, hero.ToPublic())
	assert.Equal(t, &createdAt, hero.GetCreatedAt())
	assert.Equal(t, "hero", hero.TableName())
}
