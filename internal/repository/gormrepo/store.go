package gormrepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists one entity type without upserting its associations.
// Foreign keys must already be set on the entity. Many-to-many fields named
// through WithReferences still get their join rows written.
type Store[T any] struct {
	db   *gorm.DB
	refs []string
}

type StoreOption func(*storeOptions)

type storeOptions struct {
	refs []string
}

func WithReferences(fields ...string) StoreOption {
	return func(o *storeOptions) {
		o.refs = append(o.refs, fields...)
	}
}

func NewStore[T any](db *gorm.DB, opts ...StoreOption) *Store[T] {
	var options storeOptions
	for _, opt := range opts {
		opt(&options)
	}
	return &Store[T]{db: db, refs: options.refs}
}

func (s *Store[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(new(T)).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type validator interface {
	Validate() error
}

func (s *Store[T]) Save(ctx context.Context, entity *T) error {
	if err := validate(entity); err != nil {
		return err
	}
	return s.session(ctx).Create(entity).Error
}

func (s *Store[T]) SaveAll(ctx context.Context, entities []*T) error {
	if len(entities) == 0 {
		return nil
	}
	for i, entity := range entities {
		if err := validate(entity); err != nil {
			return fmt.Errorf("entity %d: %w", i, err)
		}
	}
	return s.session(ctx).Create(entities).Error
}

// validate runs the entity's own Validate method when it has one.
func validate[T any](entity *T) error {
	if v, ok := any(entity).(validator); ok {
		return v.Validate()
	}
	return nil
}

func (s *Store[T]) session(ctx context.Context) *gorm.DB {
	tx := s.db.WithContext(ctx)
	if len(s.refs) == 0 {
		return tx.Omit(clause.Associations)
	}

	omit := make([]string, 0, len(s.refs))
	for _, ref := range s.refs {
		omit = append(omit, ref+".*")
	}
	return tx.Omit(omit...)
}
