package download

import "context"

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(Task))
	AddTask(url string) (Task, error)
	GetTask(id string) (Task, bool)
	GetAllTasks() []Task
	StopTask(id string) error
	Wait(ctx context.Context) error
	LocalCopies() map[string]string
	Close()
}
