package resource

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	apperrors "miranda/pkg/errors"
	"miranda/pkg/logger"
	"miranda/pkg/validation"
)

// Patch is a partial update of T. Unset fields leave the record unchanged.
type Patch[T any] interface {
	Apply(record *T)
}

// UniqueField is a secondary field that must be unique across records.
type UniqueField[T any] struct {
	Field string
	Value func(record *T) any
}

// Spec describes one resource to the generic Service.
type Spec[T any, K comparable] struct {
	// Name is the singular display name, e.g. "Room".
	Name string
	// KeyField is the document and JSON field holding the identity key.
	KeyField string
	KeyOf    func(record *T) K

	// Prepare fills defaults and normalizes a record before validation.
	// current is nil on create and holds the stored record on update.
	Prepare func(ctx context.Context, record *T, current *T) error

	// Validate returns validation.FieldErrors for schema violations.
	Validate func(record *T) error

	Unique []UniqueField[T]
}

type Service[T any, K comparable] struct {
	repo   Repository[T, K]
	spec   Spec[T, K]
	events EventPublisher
	log    *logger.Logger
}

func NewService[T any, K comparable](repo Repository[T, K], spec Spec[T, K], events EventPublisher, log *logger.Logger) *Service[T, K] {
	if events == nil {
		events = NoopPublisher{}
	}
	return &Service[T, K]{
		repo:   repo,
		spec:   spec,
		events: events,
		log:    log,
	}
}

func (s *Service[T, K]) Name() string {
	return s.spec.Name
}

func (s *Service[T, K]) List(ctx context.Context) ([]*T, int64, error) {
	var count int64
	var records []*T
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.log.Error("Failed to count records", "resource", s.spec.Name, "error", errCount)
			errCount = apperrors.Internal(fmt.Sprintf("Failed to count %s records", s.spec.Name), errCount)
		}
	}()

	go func() {
		defer wg.Done()
		records, errFind = s.repo.FindAll(ctx)
		if errFind != nil {
			s.log.Error("Failed to list records", "resource", s.spec.Name, "error", errFind)
			errFind = apperrors.Internal(fmt.Sprintf("Failed to retrieve %s records", s.spec.Name), errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}
	if records == nil {
		records = []*T{}
	}

	return records, count, nil
}

func (s *Service[T, K]) Get(ctx context.Context, key K) (*T, error) {
	record, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, s.translate(err, key, "retrieve")
	}
	return record, nil
}

func (s *Service[T, K]) Create(ctx context.Context, record *T) (*T, error) {
	if err := s.prepareAndValidate(ctx, record, nil); err != nil {
		s.log.Warn("Create rejected", "resource", s.spec.Name, "error", err)
		return nil, err
	}

	key := s.spec.KeyOf(record)
	if err := s.ensureKeyFree(ctx, key); err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, record, nil); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		s.log.Error("Failed to insert record", "resource", s.spec.Name, "key", key, "error", err)
		return nil, s.translate(err, key, "create")
	}

	s.log.Info("Record created", "resource", s.spec.Name, "key", key)
	s.publish(ctx, ActionCreated, key, record)
	return record, nil
}

func (s *Service[T, K]) Update(ctx context.Context, key K, patch Patch[T]) (*T, error) {
	current, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, s.translate(err, key, "retrieve")
	}

	merged := *current
	patch.Apply(&merged)

	if err := s.prepareAndValidate(ctx, &merged, current); err != nil {
		s.log.Warn("Update rejected", "resource", s.spec.Name, "key", key, "error", err)
		return nil, err
	}
	if s.spec.KeyOf(&merged) != key {
		return nil, apperrors.InvalidInput(fmt.Sprintf("%s %s cannot be changed", s.spec.Name, s.spec.KeyField))
	}
	if err := s.ensureUnique(ctx, &merged, &key); err != nil {
		return nil, err
	}

	if err := s.repo.Replace(ctx, key, &merged); err != nil {
		s.log.Error("Failed to replace record", "resource", s.spec.Name, "key", key, "error", err)
		return nil, s.translate(err, key, "update")
	}

	s.log.Info("Record updated", "resource", s.spec.Name, "key", key)
	s.publish(ctx, ActionUpdated, key, &merged)
	return &merged, nil
}

func (s *Service[T, K]) Delete(ctx context.Context, key K) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		return s.translate(err, key, "delete")
	}

	s.log.Info("Record deleted", "resource", s.spec.Name, "key", key)
	s.publish(ctx, ActionDeleted, key, nil)
	return nil
}

func (s *Service[T, K]) prepareAndValidate(ctx context.Context, record *T, current *T) error {
	if s.spec.Prepare != nil {
		if err := s.spec.Prepare(ctx, record, current); err != nil {
			return validation.AsAppError(s.spec.Name, err)
		}
	}
	if s.spec.Validate != nil {
		if err := s.spec.Validate(record); err != nil {
			return validation.AsAppError(s.spec.Name, err)
		}
	}
	return nil
}

func (s *Service[T, K]) ensureKeyFree(ctx context.Context, key K) error {
	_, err := s.repo.FindByKey(ctx, key)
	switch {
	case err == nil:
		return apperrors.AlreadyExists(s.spec.Name, s.spec.KeyField, key)
	case errors.Is(err, ErrNotFound):
		return nil
	default:
		s.log.Error("Failed to check key", "resource", s.spec.Name, "key", key, "error", err)
		return apperrors.Internal(fmt.Sprintf("Failed to check %s existence", s.spec.Name), err)
	}
}

// ensureUnique checks the secondary unique fields. self is the key of the
// record being updated, which may keep its own values.
func (s *Service[T, K]) ensureUnique(ctx context.Context, record *T, self *K) error {
	for _, u := range s.spec.Unique {
		value := u.Value(record)
		found, err := s.repo.FindOne(ctx, u.Field, value)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			s.log.Error("Failed to check unique field", "resource", s.spec.Name, "field", u.Field, "error", err)
			return apperrors.Internal(fmt.Sprintf("Failed to check %s %s", s.spec.Name, u.Field), err)
		}
		if self != nil && s.spec.KeyOf(found) == *self {
			continue
		}
		return apperrors.AlreadyExists(s.spec.Name, u.Field, value)
	}
	return nil
}

func (s *Service[T, K]) translate(err error, key K, op string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperrors.NotFoundWithID(s.spec.Name, fmt.Sprint(key))
	case errors.Is(err, ErrDuplicateKey):
		return apperrors.Conflict(fmt.Sprintf("%s %v conflicts with an existing record", s.spec.Name, key))
	default:
		return apperrors.Internal(fmt.Sprintf("Failed to %s %s", op, s.spec.Name), err)
	}
}

// publish reports a committed change. The write already happened, so a
// failed publish is logged and not returned.
func (s *Service[T, K]) publish(ctx context.Context, action Action, key K, data *T) {
	event := Event{
		Resource:   strings.ToLower(s.spec.Name),
		Action:     action,
		Key:        fmt.Sprint(key),
		OccurredAt: time.Now().UTC(),
	}
	if data != nil {
		event.Data = data
	}

	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn("Failed to publish change event",
			"resource", event.Resource,
			"action", event.Action,
			"key", event.Key,
			"error", err,
		)
	}
}
