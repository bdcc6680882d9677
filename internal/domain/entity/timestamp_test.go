package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{name: "wire layout", in: "2025-01-31T18:00:00", want: time.Date(2025, 1, 31, 18, 0, 0, 0, time.UTC)},
		{name: "fraction", in: "2025-01-31T18:00:00.25", want: time.Date(2025, 1, 31, 18, 0, 0, 250000000, time.UTC)},
		{name: "space separated", in: "2025-01-31 18:00:00", want: time.Date(2025, 1, 31, 18, 0, 0, 0, time.UTC)},
		{name: "rfc3339 keeps wall clock", in: "2025-01-31T18:00:00-03:00", want: time.Date(2025, 1, 31, 18, 0, 0, 0, time.UTC)},
		{name: "date only", in: "2025-01-31", want: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %s", got)
		})
	}

	_, err := ParseTimestamp("tomorrow")
	assert.Error(t, err)
}

func TestTodo_JSONShape(t *testing.T) {
	text := "two litres"
	priority := int32(1)
	due := NewTimestamp(time.Date(2025, 1, 31, 18, 0, 0, 0, time.UTC))
	created := NewTimestamp(time.Date(2025, 1, 30, 9, 12, 44, 120391000, time.UTC))
	todo := Todo{
		ID:        1,
		Title:     "Buy milk",
		Text:      &text,
		Priority:  &priority,
		DueDate:   &due,
		CreatedAt: created,
		UpdatedAt: created,
		OwnerID:   1,
	}

	body, err := json.Marshal(todo)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"todo_id": 1,
		"title": "Buy milk",
		"todo_text": "two litres",
		"completed": null,
		"priority": 1,
		"due_date": "2025-01-31T18:00:00",
		"created_at": "2025-01-30T09:12:44.120391",
		"updated_at": "2025-01-30T09:12:44.120391",
		"user_id": 1
	}`, string(body))
}

func TestTimestamp_UnmarshalRejectsNonString(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`12345`), &ts))
}

func TestTimePtr(t *testing.T) {
	var nilTs *Timestamp
	assert.Nil(t, nilTs.TimePtr())
	assert.Nil(t, TimestampFromPtr(nil))

	now := time.Date(2025, 2, 1, 8, 30, 0, 0, time.UTC)
	ts := NewTimestamp(now)
	assert.True(t, now.Equal(*ts.TimePtr()))
	assert.True(t, now.Equal(TimestampFromPtr(&now).Time))
}
