package db_repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/justtrackio/crudgen/pkg/clock"
	"github.com/justtrackio/crudgen/pkg/db"
	"github.com/justtrackio/crudgen/pkg/log"
	uuidGen "github.com/justtrackio/crudgen/pkg/uuid"
)

const (
	Create = "create"
	List   = "list"
	Read   = "read"
	Update = "update"
	Delete = "delete"
)

// RecordService is the storage facing half of a crud endpoint. Every method returns the stored
// table shape, callers convert it to the public shape on their own.
//
//go:generate go run github.com/vektra/mockery/v2 --name RecordService
type RecordService[C any, P any, M any] interface {
	Create(ctx context.Context, input C) (M, error)
	List(ctx context.Context) ([]M, error)
	// Get reports a missing record with found = false instead of an error.
	Get(ctx context.Context, id uuid.UUID) (model M, found bool, err error)
	Update(ctx context.Context, input P) (M, error)
	// Delete removes the record and returns its last stored value.
	Delete(ctx context.Context, id uuid.UUID) (M, error)
}

type Service[C any, P Identifiable, T any, M ModelPointer[T, C, P]] struct {
	logger  log.Logger
	clock   clock.Clock
	uuid    uuidGen.Uuid
	orm     *gorm.DB
	modelId string
}

// NewService binds a service to the given session. The service never commits on its own.
func NewService[C any, P Identifiable, T any, M ModelPointer[T, C, P]](logger log.Logger, session Session) *Service[C, P, T, M] {
	return NewServiceWithInterfaces[C, P, T, M](logger, clock.Provider, uuidGen.New(), session.Orm())
}

func NewServiceWithInterfaces[C any, P Identifiable, T any, M ModelPointer[T, C, P]](logger log.Logger, clock clock.Clock, uuidGenerator uuidGen.Uuid, orm *gorm.DB) *Service[C, P, T, M] {
	modelId := M(new(T)).TableName()

	return &Service[C, P, T, M]{
		logger:  logger.WithChannel("db_repo").WithFields(log.Fields{"model": modelId}),
		clock:   clock,
		uuid:    uuidGenerator,
		orm:     orm,
		modelId: modelId,
	}
}

func (s *Service[C, P, T, M]) Create(ctx context.Context, input C) (M, error) {
	model := M(new(T))
	model.FromCreate(input)
	model.SetId(s.uuid.NewV7())

	now := s.clock.Now()
	model.SetCreatedAt(&now)
	model.SetUpdatedAt(&now)

	if err := s.orm.Create(model).Error; err != nil {
		return nil, s.storageError(ctx, Create, model.GetId(), err)
	}

	s.logger.Info(ctx, "created model of type %s with id %s", s.modelId, model.GetId())

	created, found, err := s.Get(ctx, model.GetId())
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, NewRecordNotFoundError(model.GetId(), s.modelId, gorm.ErrRecordNotFound)
	}

	return created, nil
}

func (s *Service[C, P, T, M]) List(ctx context.Context) ([]M, error) {
	rows := make([]T, 0)

	if err := s.orm.Order(ColumnCreatedAt).Order(ColumnId).Find(&rows).Error; err != nil {
		return nil, s.storageError(ctx, List, uuid.Nil, err)
	}

	models := make([]M, len(rows))
	for i := range rows {
		models[i] = M(&rows[i])
	}

	return models, nil
}

func (s *Service[C, P, T, M]) Get(ctx context.Context, id uuid.UUID) (M, bool, error) {
	model := M(new(T))

	err := s.orm.Where(ColumnId+" = ?", id).First(model).Error

	if gorm.IsRecordNotFoundError(err) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, s.storageError(ctx, Read, id, err)
	}

	return model, true, nil
}

func (s *Service[C, P, T, M]) Update(ctx context.Context, input P) (M, error) {
	id := input.GetId()

	model, found, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, NewRecordNotFoundError(id, s.modelId, gorm.ErrRecordNotFound)
	}

	model.FromPublic(input)
	model.SetId(id)

	now := s.clock.Now()
	model.SetUpdatedAt(&now)

	// keeps gorm from replacing updated_at with its own clock
	if err = s.orm.Set("gorm:update_column", true).Save(model).Error; err != nil {
		return nil, s.storageError(ctx, Update, id, err)
	}

	s.logger.Info(ctx, "updated model of type %s with id %s", s.modelId, id)

	return model, nil
}

func (s *Service[C, P, T, M]) Delete(ctx context.Context, id uuid.UUID) (M, error) {
	model, found, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, NewRecordNotFoundError(id, s.modelId, gorm.ErrRecordNotFound)
	}

	if err = s.orm.Delete(model).Error; err != nil {
		return nil, s.storageError(ctx, Delete, id, err)
	}

	s.logger.Info(ctx, "deleted model of type %s with id %s", s.modelId, id)

	return model, nil
}

func (s *Service[C, P, T, M]) storageError(ctx context.Context, op string, id uuid.UUID, err error) error {
	logger := s.logger.WithFields(log.Fields{
		"op":    op,
		"cause": db.Classify(err),
	})

	if db.IsDuplicateEntryError(err) {
		logger.Warn(ctx, "could not %s model of type %s with id %s due to duplicate entry error: %s", op, s.modelId, id, err.Error())

		return NewStorageError(op, s.modelId, &db.DuplicateEntryError{Err: err})
	}

	logger.Warn(ctx, "could not %s model of type %s with id %s: %s", op, s.modelId, id, err.Error())

	return NewStorageError(op, s.modelId, err)
}
