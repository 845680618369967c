package download

import "time"

// TaskStatus is the lifecycle state of a download
type TaskStatus string

const (
	TaskStatusPending     TaskStatus = "pending"
	TaskStatusDownloading TaskStatus = "downloading"
	TaskStatusCompleted   TaskStatus = "completed"
	TaskStatusStopped     TaskStatus = "stopped"
	TaskStatusError       TaskStatus = "error"
)

// IsFinished reports whether the task will not change any more
func (s TaskStatus) IsFinished() bool {
	return s == TaskStatusCompleted || s == TaskStatusStopped || s == TaskStatusError
}

// Task is a snapshot of one asset download
type Task struct {
	ID         string
	URL        string
	Status     TaskStatus
	OutputPath string
	Bytes      int64
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}
