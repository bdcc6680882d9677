package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/model"
)

func strPtr(s string) *string { return &s }

func TestValidate_CreatePayload(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "plain title", title: "Buy milk"},
		{name: "padded title", title: "  Buy milk  "},
		{name: "empty title", title: "", wantErr: true},
		{name: "blank title", title: " \t\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(model.CreateTodoDTO{Title: tt.title})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, "title", fieldErr.Field)
			assert.Equal(t, "notblank", fieldErr.Rule)
		})
	}
}

func TestValidate_UpdatePayload(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(model.UpdateTodoDTO{}))
	assert.NoError(t, v.Validate(model.UpdateTodoDTO{Title: strPtr("Buy oat milk")}))

	err := v.Validate(model.UpdateTodoDTO{Title: strPtr("   ")})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "title", fieldErr.Field)

	err = v.Validate(model.UpdateTodoDTO{Title: strPtr("")})
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "title", fieldErr.Field)
}
