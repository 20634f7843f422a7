package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	task := NewTask("Buy milk today", "u1", now)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Buy milk today", task.Title)
	assert.Equal(t, "u1", task.OwnerTag)
	assert.Equal(t, now, task.CreatedAt)
	assert.Nil(t, task.CompletedAt)
	assert.False(t, task.IsCompleted())
}

func TestNewTask_GeneratesUniqueIDs(t *testing.T) {
	now := time.Now()

	first := NewTask("First task", "u1", now)
	second := NewTask("Second task", "u1", now)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestIsValidTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected bool
	}{
		{
			name:     "empty string is invalid",
			title:    "",
			expected: false,
		},
		{
			name:     "length 3 is invalid",
			title:    "abc",
			expected: false,
		},
		{
			name:     "length 4 is valid",
			title:    "abcd",
			expected: true,
		},
		{
			name:     "length 49 is valid",
			title:    strings.Repeat("a", 49),
			expected: true,
		},
		{
			name:     "length 50 is invalid",
			title:    strings.Repeat("a", 50),
			expected: false,
		},
		{
			name:     "typical title is valid",
			title:    "Buy milk",
			expected: true,
		},
		{
			name:     "length counts runes not bytes",
			title:    "café", // 4 runes, 5 bytes
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidTitle(tt.title)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTask_ToggleCompleted(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	task := NewTask("Buy milk", "u1", now)
	require.False(t, task.IsCompleted())

	// Completing records the supplied time
	task.ToggleCompleted(later)
	require.True(t, task.IsCompleted())
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, later, *task.CompletedAt)

	// Toggling back discards the completion timestamp
	task.ToggleCompleted(later.Add(time.Hour))
	assert.False(t, task.IsCompleted())
	assert.Nil(t, task.CompletedAt)
}

func TestTask_ToggleCompletedIsInvolution(t *testing.T) {
	now := time.Now()
	task := NewTask("Buy milk", "u1", now)

	for i := 0; i < 6; i++ {
		task.ToggleCompleted(now)
	}

	// Even number of toggles returns to pending
	assert.Nil(t, task.CompletedAt)
}

func TestTask_IsCompleted(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{
			name:     "nil completedAt means pending",
			task:     Task{CompletedAt: nil},
			expected: false,
		},
		{
			name:     "non-nil completedAt means completed",
			task:     Task{CompletedAt: &now},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsCompleted())
		})
	}
}

func TestTask_String(t *testing.T) {
	task := Task{ID: "1", Title: "Buy milk"}
	assert.Equal(t, "Buy milk", task.String())
}
