package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewToast(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	toast := NewToast(ToastSuccess, "Task added", now, 3*time.Second)

	assert.Equal(t, ToastSuccess, toast.Level)
	assert.Equal(t, "Task added", toast.Message)
	assert.Equal(t, now.Add(3*time.Second), toast.Expires)
}

func TestToast_Expired(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	toast := NewToast(ToastInfo, "hi", now, time.Second)

	assert.False(t, toast.Expired(now))
	assert.False(t, toast.Expired(now.Add(999*time.Millisecond)))
	assert.True(t, toast.Expired(now.Add(time.Second)))
}

func TestPruneToasts(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	toasts := []Toast{
		NewToast(ToastInfo, "old", now, -time.Second),
		NewToast(ToastInfo, "fresh", now, time.Minute),
		NewToast(ToastError, "gone", now, 0),
	}

	kept := PruneToasts(toasts, now)

	assert.Len(t, kept, 1)
	assert.Equal(t, "fresh", kept[0].Message)
	assert.Empty(t, PruneToasts(nil, now))
}

func TestToastLevel_Icon(t *testing.T) {
	assert.Equal(t, "i", ToastInfo.Icon())
	assert.Equal(t, "✓", ToastSuccess.Icon())
	assert.Equal(t, "!", ToastWarning.Icon())
	assert.Equal(t, "✗", ToastError.Icon())
}
