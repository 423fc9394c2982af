package resource_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"miranda/internal/resource"
	"miranda/internal/resource/resourcetest"
	apperrors "miranda/pkg/errors"
	"miranda/pkg/logger"
	"miranda/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Code  string
	Label string
	Tag   string
}

type widgetPatch struct {
	Code  *string
	Label *string
	Tag   *string
}

func (p widgetPatch) Apply(w *widget) {
	if p.Code != nil {
		w.Code = *p.Code
	}
	if p.Label != nil {
		w.Label = *p.Label
	}
	if p.Tag != nil {
		w.Tag = *p.Tag
	}
}

func ptr[V any](v V) *V { return &v }

func widgetSpec() resource.Spec[widget, string] {
	return resource.Spec[widget, string]{
		Name:     "Widget",
		KeyField: "code",
		KeyOf:    func(w *widget) string { return w.Code },
		Prepare: func(_ context.Context, w *widget, _ *widget) error {
			w.Label = strings.TrimSpace(w.Label)
			return nil
		},
		Validate: func(w *widget) error {
			if w.Label == "" {
				return validation.FieldErrors{{Field: "label", Message: "label is required"}}
			}
			return nil
		},
		Unique: []resource.UniqueField[widget]{
			{Field: "tag", Value: func(w *widget) any { return w.Tag }},
		},
	}
}

func newWidgetService(t *testing.T) (*resource.Service[widget, string], *resourcetest.MemoryRepository[widget, string], *resourcetest.RecordingPublisher) {
	t.Helper()
	repo := resourcetest.NewMemoryRepository[widget, string](
		func(w *widget) string { return w.Code },
		map[string]func(*widget) any{"tag": func(w *widget) any { return w.Tag }},
	)
	events := &resourcetest.RecordingPublisher{}
	return resource.NewService[widget, string](repo, widgetSpec(), events, logger.Discard()), repo, events
}

func TestCreate(t *testing.T) {
	svc, _, events := newWidgetService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &widget{Code: "a", Label: "  first  ", Tag: "t1"})
	require.NoError(t, err)
	assert.Equal(t, "first", created.Label)

	got, err := svc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Label)

	require.Len(t, events.Events, 1)
	assert.Equal(t, "widget", events.Events[0].Resource)
	assert.Equal(t, resource.ActionCreated, events.Events[0].Action)
	assert.Equal(t, "a", events.Events[0].Key)
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    widget
		wantCode string
		wantMsg  string
	}{
		{
			name:     "duplicate key",
			input:    widget{Code: "a", Label: "again", Tag: "t9"},
			wantCode: apperrors.CodeConflict,
			wantMsg:  "Widget with code a already exists",
		},
		{
			name:     "duplicate secondary field",
			input:    widget{Code: "b", Label: "other", Tag: "t1"},
			wantCode: apperrors.CodeConflict,
			wantMsg:  "Widget with tag t1 already exists",
		},
		{
			name:     "invalid",
			input:    widget{Code: "c", Label: "   ", Tag: "t3"},
			wantCode: apperrors.CodeValidation,
			wantMsg:  "Widget validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, events := newWidgetService(t)
			ctx := context.Background()
			_, err := svc.Create(ctx, &widget{Code: "a", Label: "first", Tag: "t1"})
			require.NoError(t, err)

			input := tt.input
			_, err = svc.Create(ctx, &input)
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, tt.wantCode), "got %v", err)
			assert.Equal(t, tt.wantMsg, apperrors.AsAppError(err).Message)
			assert.Len(t, events.Events, 1, "failed create must not publish")
		})
	}
}

func TestCreate_ValidationDetailsCarryFieldErrors(t *testing.T) {
	svc, _, _ := newWidgetService(t)

	_, err := svc.Create(context.Background(), &widget{Code: "a"})
	require.Error(t, err)

	details := apperrors.AsAppError(err).Details
	fieldErrs, ok := details["errors"].(validation.FieldErrors)
	require.True(t, ok)
	assert.Equal(t, "label", fieldErrs[0].Field)
}

type racingRepo struct {
	*resourcetest.MemoryRepository[widget, string]
}

func (r racingRepo) Insert(ctx context.Context, w *widget) error {
	return resource.ErrDuplicateKey
}

func TestCreate_StoreDuplicateBecomesConflict(t *testing.T) {
	mem := resourcetest.NewMemoryRepository[widget, string](func(w *widget) string { return w.Code }, nil)
	svc := resource.NewService[widget, string](racingRepo{mem}, widgetSpec(), nil, logger.Discard())

	_, err := svc.Create(context.Background(), &widget{Code: "a", Label: "x"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
	assert.Equal(t, 409, apperrors.AsAppError(err).StatusCode())
}

func TestGet_NotFound(t *testing.T) {
	svc, _, _ := newWidgetService(t)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	assert.Equal(t, "missing", appErr.Details["id"])
}

func TestList(t *testing.T) {
	svc, _, _ := newWidgetService(t)
	ctx := context.Background()

	items, total, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Zero(t, total)

	for _, code := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, &widget{Code: code, Label: code, Tag: "tag-" + code})
		require.NoError(t, err)
	}

	items, total, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.EqualValues(t, 3, total)
}

func TestList_StoreFailure(t *testing.T) {
	svc, repo, _ := newWidgetService(t)
	repo.Err = errors.New("connection reset")

	_, _, err := svc.List(context.Background())
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInternal))
	assert.NotContains(t, apperrors.AsAppError(err).Message, "connection reset")
}

func TestUpdate(t *testing.T) {
	svc, _, events := newWidgetService(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, &widget{Code: "a", Label: "first", Tag: "t1"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "a", widgetPatch{Label: ptr(" renamed ")})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Label)
	assert.Equal(t, "t1", updated.Tag, "untouched field must survive the merge")

	got, err := svc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Label)

	require.Len(t, events.Events, 2)
	assert.Equal(t, resource.ActionUpdated, events.Events[1].Action)
}

func TestUpdate_KeepsOwnUniqueValue(t *testing.T) {
	svc, _, _ := newWidgetService(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, &widget{Code: "a", Label: "first", Tag: "t1"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "a", widgetPatch{Tag: ptr("t1")})
	assert.NoError(t, err)
}

func TestUpdate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		patch    widgetPatch
		wantCode string
	}{
		{name: "missing record", key: "zzz", patch: widgetPatch{Label: ptr("x")}, wantCode: apperrors.CodeNotFound},
		{name: "invalid merge", key: "a", patch: widgetPatch{Label: ptr("")}, wantCode: apperrors.CodeValidation},
		{name: "steals unique value", key: "a", patch: widgetPatch{Tag: ptr("t2")}, wantCode: apperrors.CodeConflict},
		{name: "changes key", key: "a", patch: widgetPatch{Code: ptr("b2")}, wantCode: apperrors.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newWidgetService(t)
			ctx := context.Background()
			_, err := svc.Create(ctx, &widget{Code: "a", Label: "first", Tag: "t1"})
			require.NoError(t, err)
			_, err = svc.Create(ctx, &widget{Code: "b", Label: "second", Tag: "t2"})
			require.NoError(t, err)

			_, err = svc.Update(ctx, tt.key, tt.patch)
			assert.True(t, apperrors.HasCode(err, tt.wantCode), "got %v", err)

			got, err := svc.Get(ctx, "a")
			require.NoError(t, err)
			assert.Equal(t, "first", got.Label, "failed update must not persist")
		})
	}
}

func TestDelete(t *testing.T) {
	svc, _, events := newWidgetService(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, &widget{Code: "a", Label: "first"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "a"))

	_, err = svc.Get(ctx, "a")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))

	err = svc.Delete(ctx, "a")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))

	require.Len(t, events.Events, 2)
	assert.Equal(t, resource.ActionDeleted, events.Events[1].Action)
	assert.Nil(t, events.Events[1].Data)
}

func TestPublishFailureDoesNotFailWrite(t *testing.T) {
	svc, _, events := newWidgetService(t)
	events.Err = errors.New("broker down")

	_, err := svc.Create(context.Background(), &widget{Code: "a", Label: "first"})
	assert.NoError(t, err)
}

func TestNoopPublisher(t *testing.T) {
	err := resource.NoopPublisher{}.Publish(context.Background(), resource.Event{OccurredAt: time.Now()})
	assert.NoError(t, err)
}
