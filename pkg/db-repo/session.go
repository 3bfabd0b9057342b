package db_repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/jinzhu/gorm"
	"github.com/justtrackio/crudgen/pkg/cfg"
	"github.com/justtrackio/crudgen/pkg/db"
	"github.com/justtrackio/crudgen/pkg/log"
)

var ErrSessionFinished = errors.New("session is already committed or rolled back")

// Session is a unit of work on the database. All statements issued through Orm run in one
// transaction which ends with Commit or Rollback. Close rolls back a session which was not
// finished yet and is safe to call more than once.
//
//go:generate go run github.com/vektra/mockery/v2 --name Session
type Session interface {
	Orm() *gorm.DB
	Commit() error
	Rollback() error
	Close() error
}

//go:generate go run github.com/vektra/mockery/v2 --name SessionProvider
type SessionProvider interface {
	Begin(ctx context.Context) (Session, error)
}

type ormSessionProvider struct {
	logger log.Logger
	orm    *gorm.DB
}

func NewSessionProvider(ctx context.Context, config cfg.Config, logger log.Logger, name string, options ...db.ConnectionOption) (SessionProvider, error) {
	orm, err := NewOrm(ctx, config, logger, name, options...)
	if err != nil {
		return nil, fmt.Errorf("can not create orm: %w", err)
	}

	return NewSessionProviderWithInterfaces(logger, orm), nil
}

func NewSessionProviderWithInterfaces(logger log.Logger, orm *gorm.DB) SessionProvider {
	return &ormSessionProvider{
		logger: logger.WithChannel("db_session"),
		orm:    orm,
	}
}

func (p *ormSessionProvider) Begin(ctx context.Context) (Session, error) {
	tx := p.orm.BeginTx(ctx, &sql.TxOptions{})
	if tx.Error != nil {
		return nil, NewStorageError("begin session", "", tx.Error)
	}

	return &ormSession{
		ctx:    ctx,
		logger: p.logger,
		tx:     tx,
	}, nil
}

type ormSession struct {
	ctx    context.Context
	logger log.Logger
	tx     *gorm.DB
	done   bool
}

func (s *ormSession) Orm() *gorm.DB {
	return s.tx
}

func (s *ormSession) Commit() error {
	if s.done {
		return ErrSessionFinished
	}

	s.done = true

	if err := s.tx.Commit().Error; err != nil {
		return NewStorageError("commit session", "", err)
	}

	return nil
}

func (s *ormSession) Rollback() error {
	if s.done {
		return ErrSessionFinished
	}

	s.done = true

	if err := s.tx.Rollback().Error; err != nil {
		return NewStorageError("rollback session", "", err)
	}

	return nil
}

func (s *ormSession) Close() error {
	if s.done {
		return nil
	}

	s.logger.Debug(s.ctx, "rolling back unfinished session")

	return s.Rollback()
}

// WithSession runs fn inside a fresh session. The session is committed if fn succeeds and rolled
// back if fn fails or panics. A panic is passed on after the rollback.
func WithSession[R any](ctx context.Context, provider SessionProvider, fn func(session Session) (R, error)) (result R, err error) {
	var zero R
	var session Session

	if session, err = provider.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			err = multierror.Append(err, closeErr)
		}
	}()

	if result, err = fn(session); err != nil {
		return zero, err
	}

	if err = session.Commit(); err != nil {
		return zero, err
	}

	return result, nil
}
