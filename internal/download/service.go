package download

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wundara/folio-desktop/internal/logger"
)

// Download limits
const (
	DefaultMaxParallel = 4
	DefaultMaxBytes    = 32 << 20
	DefaultRetries     = 1
	DefaultBackoff     = 2 * time.Second
	DefaultTimeout     = 30 * time.Second

	TaskIDPrefix = "fetch-"
)

// ErrTooLarge is returned for assets over the size limit
var ErrTooLarge = errors.New("asset exceeds size limit")

var _ Downloader = (*Service)(nil)

// Option configures a Service
type Option func(*Service)

// WithLogger sets the logger
func WithLogger(l *logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) {
		if c != nil {
			s.client = c
		}
	}
}

// WithMaxBytes caps the size of a single asset
func WithMaxBytes(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBytes = n
		}
	}
}

// WithBackoff sets the delay before the retry
func WithBackoff(d time.Duration) Option {
	return func(s *Service) {
		s.backoff = d
	}
}

// Service downloads remote assets into a cache directory
type Service struct {
	tasks       map[string]*Task
	order       []string
	tasksMutex  sync.RWMutex
	maxParallel int
	activeCount int
	cacheDir    string
	maxBytes    int64
	backoff     time.Duration
	client      *http.Client
	log         *logger.Logger
	onUpdate    func(Task) // callback for progress reporting

	ctx     context.Context
	cancel  context.CancelFunc
	stops   map[string]context.CancelFunc
	pending sync.WaitGroup
}

// NewService creates a new download service writing into cacheDir
func NewService(cacheDir string, maxParallel int, opts ...Option) *Service {
	if maxParallel < 1 {
		maxParallel = DefaultMaxParallel
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Service{
		tasks:       make(map[string]*Task),
		maxParallel: maxParallel,
		cacheDir:    cacheDir,
		maxBytes:    DefaultMaxBytes,
		backoff:     DefaultBackoff,
		client:      &http.Client{Timeout: DefaultTimeout},
		log:         logger.Nop(),
		ctx:         ctx,
		cancel:      cancel,
		stops:       make(map[string]context.CancelFunc),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(Task)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// AddTask queues url for download
func (s *Service) AddTask(rawURL string) (Task, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return Task{}, fmt.Errorf("not an http(s) URL: %q", rawURL)
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	// Check for duplicate URLs
	for _, task := range s.tasks {
		if task.URL == rawURL && !task.Status.IsFinished() {
			return Task{}, fmt.Errorf("task already exists for URL: %s", rawURL)
		}
	}

	task := &Task{
		ID:         TaskIDPrefix + uuid.NewString(),
		URL:        rawURL,
		Status:     TaskStatusPending,
		OutputPath: filepath.Join(s.cacheDir, cacheName(u)),
	}
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	s.pending.Add(1)

	// Try to start task if we have capacity
	if s.activeCount < s.maxParallel {
		s.launchLocked(task)
	}

	return *task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (Task, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return Task{}, false
	}
	return *task, true
}

// GetAllTasks returns all tasks in the order they were added
func (s *Service) GetAllTasks() []Task {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, *s.tasks[id])
	}
	return tasks
}

// StopTask cancels a pending or running task
func (s *Service) StopTask(id string) error {
	s.tasksMutex.Lock()
	task, exists := s.tasks[id]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("task not found: %s", id)
	}
	if task.Status.IsFinished() {
		s.tasksMutex.Unlock()
		return fmt.Errorf("task is not active: %s", task.Status)
	}

	if task.Status == TaskStatusPending {
		s.finishLocked(task, TaskStatusStopped, "")
		snapshot, cb := *task, s.onUpdate
		s.tasksMutex.Unlock()
		notify(cb, snapshot)
		return nil
	}

	stop := s.stops[id]
	s.tasksMutex.Unlock()
	if stop != nil {
		stop()
	}
	return nil
}

// Wait blocks until every task has finished or ctx is done
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LocalCopies maps every completed URL to its cached file
func (s *Service) LocalCopies() map[string]string {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	copies := make(map[string]string)
	for _, task := range s.tasks {
		if task.Status == TaskStatusCompleted {
			copies[task.URL] = task.OutputPath
		}
	}
	return copies
}

// Close cancels every running download
func (s *Service) Close() {
	s.cancel()
}

// launchLocked marks task running and starts it; the caller holds
// tasksMutex. The cancel func is registered before the goroutine starts.
func (s *Service) launchLocked(task *Task) {
	ctx, cancel := context.WithCancel(s.ctx)
	s.activeCount++
	task.Status = TaskStatusDownloading
	s.stops[task.ID] = cancel
	go s.startTask(ctx, cancel, task)
}

// startTask downloads one task and then starts the next pending one
func (s *Service) startTask(ctx context.Context, cancel context.CancelFunc, task *Task) {
	defer cancel()

	s.tasksMutex.Lock()
	task.StartedAt = time.Now()
	snapshot, cb := *task, s.onUpdate
	s.tasksMutex.Unlock()
	notify(cb, snapshot)

	n, err := s.downloadWithRetry(ctx, task)

	s.tasksMutex.Lock()
	delete(s.stops, task.ID)
	s.activeCount--
	switch {
	case err == nil:
		task.Bytes = n
		s.finishLocked(task, TaskStatusCompleted, "")
	case ctx.Err() != nil:
		s.finishLocked(task, TaskStatusStopped, "")
	default:
		s.finishLocked(task, TaskStatusError, err.Error())
		s.log.Warn("asset download failed", "url", task.URL, "error", err.Error())
	}
	snapshot, cb = *task, s.onUpdate
	s.tasksMutex.Unlock()
	notify(cb, snapshot)

	// Try to start next pending task
	s.startNextPendingTask()
}

// finishLocked marks task finished; the caller holds tasksMutex
func (s *Service) finishLocked(task *Task, status TaskStatus, lastError string) {
	task.Status = status
	task.LastError = lastError
	task.FinishedAt = time.Now()
	s.pending.Done()
}

// downloadWithRetry attempts the download with one retry after a backoff
func (s *Service) downloadWithRetry(ctx context.Context, task *Task) (int64, error) {
	var lastErr error

	for attempt := 0; attempt <= DefaultRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(s.backoff):
			case <-ctx.Done():
				return 0, ctx.Err()
			}
			s.log.Debug("retrying asset download", "url", task.URL, "attempt", attempt+1)
		}

		n, err := s.fetch(ctx, task.URL, task.OutputPath)
		if err == nil {
			return n, nil
		}
		lastErr = err

		if ctx.Err() != nil || errors.Is(err, ErrTooLarge) {
			return 0, err
		}
	}

	return 0, lastErr
}

// fetch writes url to dest through a temporary file
func (s *Service) fetch(ctx context.Context, rawURL, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to fetch %s: %s", rawURL, resp.Status)
	}
	if resp.ContentLength > s.maxBytes {
		return 0, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, rawURL, resp.ContentLength)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create cache directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".fetch-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, io.LimitReader(resp.Body, s.maxBytes+1))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", rawURL, err)
	}
	if n > s.maxBytes {
		return 0, fmt.Errorf("%w: %s", ErrTooLarge, rawURL)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return 0, fmt.Errorf("failed to store %s: %w", rawURL, err)
	}
	return n, nil
}

// startNextPendingTask starts the oldest pending task if we have capacity
func (s *Service) startNextPendingTask() {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.activeCount >= s.maxParallel {
		return
	}

	for _, id := range s.order {
		task := s.tasks[id]
		if task.Status == TaskStatusPending {
			s.launchLocked(task)
			return
		}
	}
}

// notify calls the update callback if set
func notify(cb func(Task), task Task) {
	if cb != nil {
		cb(task)
	}
}

// cacheName derives a stable file name from the URL, keeping its extension
func cacheName(u *url.URL) string {
	sum := sha256.Sum256([]byte(u.String()))
	return hex.EncodeToString(sum[:8]) + path.Ext(u.Path)
}

// Prefetch downloads every url with a fresh service and returns the local
// copies that completed before ctx ended
func Prefetch(ctx context.Context, cacheDir string, urls []string, opts ...Option) (map[string]string, error) {
	s := NewService(cacheDir, DefaultMaxParallel, opts...)
	defer s.Close()

	for _, u := range urls {
		if _, err := s.AddTask(u); err != nil {
			s.log.Warn("skipping asset", "url", u, "error", err.Error())
		}
	}
	err := s.Wait(ctx)
	return s.LocalCopies(), err
}
