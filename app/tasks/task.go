package tasks

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TaskType string

const (
	TaskTypeSyncContentType TaskType = "sync_content_type"
)

type TaskInterface interface {
	Execute(ctx context.Context) (Report, error)
	GetID() string
	GetType() TaskType
	GetContentType() string
	Start()
	GetDuration() time.Duration
}

type Task struct {
	ID          string
	Type        TaskType
	ContentType string
	StartedAt   *time.Time
}

func (t *Task) GetID() string {
	return t.ID
}

func (t *Task) GetType() TaskType {
	return t.Type
}

func (t *Task) GetContentType() string {
	return t.ContentType
}

func (t *Task) Start() {
	now := time.Now()
	t.StartedAt = &now
}

func (t *Task) GetDuration() time.Duration {
	if t.StartedAt == nil {
		return 0
	}
	return time.Since(*t.StartedAt)
}

func NewTask(taskType TaskType, contentType string) Task {
	return Task{
		ID:          uuid.NewString(),
		Type:        taskType,
		ContentType: contentType,
	}
}
