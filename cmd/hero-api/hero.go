package main

import (
	"github.com/justtrackio/crudgen/pkg/db-repo"
)

type HeroCreate struct {
	Name       string `json:"name"        mod:"trim" binding:"required"`
	SecretName string `json:"secret_name" mod:"trim" binding:"required"`
}

type HeroPublic struct {
	db_repo.Uuid
	HeroCreate
}

type Hero struct {
	HeroPublic
	db_repo.Timestamps
}

func (h *Hero) TableName() string {
	return "hero"
}

func (h *Hero) FromCreate(input HeroCreate) {
	h.HeroCreate = input
}

func (h *Hero) FromPublic(input HeroPublic) {
	h.HeroCreate = input.HeroCreate
}

func (h *Hero) ToPublic() HeroPublic {
	return h.HeroPublic
}
