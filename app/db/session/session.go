// Package session implements the unit of work used by the seed script: a
// single exclusively owned connection, a pending-insert list and one atomic
// commit.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/Rakhulsr/contoso-pizza/app/utils/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type State int

const (
	StateOpen State = iota
	StatePending
	StateCommitted
	StateFailed
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StatePending:
		return "pending"
	case StateCommitted:
		return "committed"
	case StateFailed:
		return "failed"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type options struct {
	log           *zap.Logger
	logLevel      string
	slowThreshold time.Duration
}

type Option func(*options)

func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithSQLLogLevel sets the level gorm traces SQL at (debug, info, warn, error).
func WithSQLLogLevel(level string) Option {
	return func(o *options) {
		o.logLevel = level
	}
}

// WithSlowThreshold sets the duration above which a statement is logged as slow.
// Zero disables slow statement logging.
func WithSlowThreshold(threshold time.Duration) Option {
	return func(o *options) {
		o.slowThreshold = threshold
	}
}

type pendingEntity struct {
	value reflect.Value
	key   *schema.Field
}

type Session struct {
	ID uuid.UUID

	db      *gorm.DB
	sqlDB   *sql.DB
	log     *zap.Logger
	schemas sync.Map
	pending []pendingEntity
	state   State
}

// Open connects through dialector and pings the store. The returned session
// holds a single connection until Close.
func Open(ctx context.Context, dialector gorm.Dialector, opts ...Option) (*Session, error) {
	o := options{log: zap.NewNop(), logLevel: "info", slowThreshold: 200 * time.Millisecond}
	for _, opt := range opts {
		opt(&o)
	}

	driver := dialector.Name()
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(o.log, logger.GormLogLevel(o.logLevel),
			logger.WithSlowThreshold(o.slowThreshold),
		),
		DisableAutomaticPing: true,
	})
	if err != nil {
		if db != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
		}
		return nil, &ConnectionError{Driver: driver, Err: err}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, &ConnectionError{Driver: driver, Err: err}
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, &ConnectionError{Driver: driver, Err: err}
	}

	id := uuid.New()
	log := o.log.With(zap.String("session_id", id.String()), zap.String("driver", driver))
	log.Debug("session opened")

	return &Session{
		ID:    id,
		db:    db,
		sqlDB: sqlDB,
		log:   log,
		state: StateOpen,
	}, nil
}

func (s *Session) State() State {
	return s.state
}

// Pending returns the number of entities waiting for Commit.
func (s *Session) Pending() int {
	return len(s.pending)
}

// DB exposes the underlying handle for schema provisioning.
func (s *Session) DB() *gorm.DB {
	return s.db
}

// Register queues a new entity for insertion. It does not touch the store.
// Registering an entity that is already pending is a no-op.
func (s *Session) Register(entity interface{}) error {
	switch s.state {
	case StateClosed:
		return ErrSessionClosed
	case StateCommitted, StateFailed:
		return ErrAlreadyCommitted
	}

	value := reflect.ValueOf(entity)
	if value.Kind() != reflect.Ptr || value.IsNil() || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("register %T: %w", entity, ErrNotModel)
	}

	for _, p := range s.pending {
		if p.value.Pointer() == value.Pointer() && p.value.Type() == value.Type() {
			return nil
		}
	}

	sch, err := schema.Parse(entity, &s.schemas, s.db.NamingStrategy)
	if err != nil {
		return fmt.Errorf("register %T: %w", entity, err)
	}

	key := sch.PrioritizedPrimaryField
	if key != nil {
		if _, zero := key.ValueOf(context.Background(), value); !zero {
			return fmt.Errorf("register %s: %w", sch.Name, ErrAlreadyPersisted)
		}
	}

	s.pending = append(s.pending, pendingEntity{value: value, key: key})
	s.state = StatePending
	return nil
}

// Commit inserts every pending entity in one transaction. On failure nothing
// is written and identifiers assigned during the attempt are cleared.
func (s *Session) Commit(ctx context.Context) error {
	switch s.state {
	case StateClosed:
		return ErrSessionClosed
	case StateCommitted, StateFailed:
		return ErrAlreadyCommitted
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range s.pending {
			if err := tx.Create(p.value.Interface()).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.resetKeys(ctx)
		s.state = StateFailed
		s.log.Error("commit failed", zap.Int("pending", len(s.pending)), zap.Error(err))
		return &PersistenceError{Pending: len(s.pending), Err: err}
	}

	s.log.Info("commit succeeded", zap.Int("inserted", len(s.pending)))
	s.pending = nil
	s.state = StateCommitted
	return nil
}

func (s *Session) resetKeys(ctx context.Context) {
	for _, p := range s.pending {
		if p.key == nil {
			continue
		}
		if err := p.key.Set(ctx, p.value, reflect.Zero(p.key.FieldType).Interface()); err != nil {
			s.log.Warn("reset identifier", zap.String("model", p.value.Elem().Type().Name()), zap.Error(err))
		}
	}
}

// Close releases the connection. Only the first call reaches the store.
func (s *Session) Close() error {
	if s.state == StateClosed {
		return nil
	}
	s.state = StateClosed
	s.pending = nil

	if err := s.sqlDB.Close(); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	s.log.Debug("session closed")
	return nil
}
