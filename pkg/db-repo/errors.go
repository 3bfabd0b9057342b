package db_repo

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type RecordNotFoundError struct {
	Id      uuid.UUID
	ModelId string
	Err     error
}

func NewRecordNotFoundError(id uuid.UUID, modelId string, err error) RecordNotFoundError {
	return RecordNotFoundError{
		Id:      id,
		ModelId: modelId,
		Err:     err,
	}
}

func (e RecordNotFoundError) Error() string {
	return fmt.Sprintf("could not find model of type %s with id %s: %s", e.ModelId, e.Id, e.Err)
}

func (e RecordNotFoundError) Unwrap() error {
	return e.Err
}

func IsRecordNotFoundError(err error) bool {
	return errors.As(err, &RecordNotFoundError{})
}

// StorageError wraps every failure of the underlying database which is not a missing record.
type StorageError struct {
	Op      string
	ModelId string
	Err     error
}

func NewStorageError(op string, modelId string, err error) StorageError {
	return StorageError{
		Op:      op,
		ModelId: modelId,
		Err:     err,
	}
}

func (e StorageError) Error() string {
	if e.ModelId == "" {
		return fmt.Sprintf("can not %s: %s", e.Op, e.Err)
	}

	return fmt.Sprintf("can not %s model of type %s: %s", e.Op, e.ModelId, e.Err)
}

func (e StorageError) Unwrap() error {
	return e.Err
}

func IsStorageError(err error) bool {
	return errors.As(err, &StorageError{})
}
