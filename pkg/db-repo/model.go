package db_repo

import (
	"time"

	"github.com/google/uuid"
)

const (
	ColumnId        = "id"
	ColumnCreatedAt = "created_at"
	ColumnUpdatedAt = "updated_at"
)

// Identifiable is implemented by every shape carrying the primary key, the public shape included.
type Identifiable interface {
	GetId() uuid.UUID
}

type TimeStampable interface {
	SetUpdatedAt(updatedAt *time.Time)
	SetCreatedAt(createdAt *time.Time)
}

type TimestampAware interface {
	GetCreatedAt() *time.Time
	GetUpdatedAt() *time.Time
}

// Model is the table shape of an entity. C is the shape accepted on creation, P the shape
// returned to and accepted back from clients.
type Model[C any, P Identifiable] interface {
	Identifiable
	TimeStampable
	SetId(id uuid.UUID)
	TableName() string
	// FromCreate copies every field of the create shape onto the model.
	FromCreate(input C)
	// FromPublic copies the mutable fields of the public shape onto the model. The id is never touched.
	FromPublic(input P)
	ToPublic() P
}

// ModelPointer binds a table shape T to the pointer type implementing Model, so generic code can
// allocate fresh models with new(T).
type ModelPointer[T any, C any, P Identifiable] interface {
	*T
	Model[C, P]
}

// Uuid is the primary key mixin shared by the public and the table shape of an entity.
type Uuid struct {
	Id uuid.UUID `gorm:"type:varchar(36);primary_key" json:"id" binding:"required"`
}

func (m Uuid) GetId() uuid.UUID {
	return m.Id
}

func (m *Uuid) SetId(id uuid.UUID) {
	m.Id = id
}

type Timestamps struct {
	UpdatedAt *time.Time `json:"-"`
	CreatedAt *time.Time `json:"-"`
}

func (m *Timestamps) SetUpdatedAt(updatedAt *time.Time) {
	m.UpdatedAt = updatedAt
}

func (m *Timestamps) SetCreatedAt(createdAt *time.Time) {
	m.CreatedAt = createdAt
}

func (m *Timestamps) GetUpdatedAt() *time.Time {
	return m.UpdatedAt
}

func (m *Timestamps) GetCreatedAt() *time.Time {
	return m.CreatedAt
}
