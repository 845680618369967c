package download

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestPrefetch_StoresLocalCopies(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("image:" + r.URL.Path))
	})
	dir := t.TempDir()

	urls := []string{srv.URL + "/a.png", srv.URL + "/b.jpg"}
	copies, err := Prefetch(context.Background(), dir, urls)
	if err != nil {
		t.Fatalf("Prefetch: %v", err)
	}
	if len(copies) != 2 {
		t.Fatalf("copies = %v", copies)
	}

	local := copies[srv.URL+"/a.png"]
	if !strings.HasPrefix(local, dir) || !strings.HasSuffix(local, ".png") {
		t.Errorf("local path %q should be a .png under %q", local, dir)
	}
	data, err := os.ReadFile(local)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "image:/a.png" {
		t.Errorf("content = %q", data)
	}
}

func TestService_RetriesThenFails(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	})

	s := NewService(t.TempDir(), 2, WithBackoff(0))
	task, err := s.AddTask(srv.URL + "/missing.png")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := s.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}

	got, _ := s.GetTask(task.ID)
	if got.Status != TaskStatusError || got.LastError == "" {
		t.Errorf("task = %+v, want error status", got)
	}
	if hits.Load() != 2 {
		t.Errorf("server hit %d times, want one retry", hits.Load())
	}
	if len(s.LocalCopies()) != 0 {
		t.Error("failed downloads must not be reported as local copies")
	}
}

func TestService_TooLargeIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	})

	s := NewService(t.TempDir(), 1, WithBackoff(0), WithMaxBytes(16))
	task, _ := s.AddTask(srv.URL + "/big.gif")
	_ = s.Wait(context.Background())

	got, _ := s.GetTask(task.ID)
	if got.Status != TaskStatusError || !strings.Contains(got.LastError, ErrTooLarge.Error()) {
		t.Errorf("task = %+v, want size error", got)
	}
	if hits.Load() != 1 {
		t.Errorf("server hit %d times, want no retry", hits.Load())
	}
}

func TestService_AddTaskValidation(t *testing.T) {
	release := make(chan struct{})
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
	})
	s := NewService(t.TempDir(), 1)
	defer func() {
		close(release)
		_ = s.Wait(context.Background())
	}()

	if _, err := s.AddTask("file:///etc/passwd"); err == nil {
		t.Error("non-http URL should be rejected")
	}
	if _, err := s.AddTask(srv.URL + "/a.png"); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := s.AddTask(srv.URL + "/a.png"); err == nil {
		t.Error("duplicate active URL should be rejected")
	}
}

func TestService_ParallelLimitAndStop(t *testing.T) {
	release := make(chan struct{})
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte("ok"))
	})

	var mu sync.Mutex
	var updates []TaskStatus
	s := NewService(t.TempDir(), 1)
	s.SetUpdateCallback(func(task Task) {
		mu.Lock()
		updates = append(updates, task.Status)
		mu.Unlock()
	})

	first, _ := s.AddTask(srv.URL + "/1.png")
	second, _ := s.AddTask(srv.URL + "/2.png")

	if got, _ := s.GetTask(second.ID); got.Status != TaskStatusPending {
		t.Fatalf("second task status = %s, want pending behind the limit", got.Status)
	}
	if err := s.StopTask(second.ID); err != nil {
		t.Fatalf("StopTask: %v", err)
	}
	if err := s.StopTask(second.ID); err == nil {
		t.Error("stopping a finished task should fail")
	}
	if err := s.StopTask("nope"); err == nil {
		t.Error("stopping an unknown task should fail")
	}

	close(release)
	if err := s.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got, _ := s.GetTask(first.ID); got.Status != TaskStatusCompleted || got.Bytes != 2 {
		t.Errorf("first = %+v", got)
	}
	if got, _ := s.GetTask(second.ID); got.Status != TaskStatusStopped {
		t.Errorf("second = %+v", got)
	}

	all := s.GetAllTasks()
	if len(all) != 2 || all[0].ID != first.ID {
		t.Errorf("GetAllTasks order = %v", all)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(updates) == 0 || updates[len(updates)-1] != TaskStatusCompleted {
		t.Errorf("updates = %v", updates)
	}
}

func TestService_StopRightAfterAdd(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	for i := 0; i < 50; i++ {
		s := NewService(t.TempDir(), 1)
		task, err := s.AddTask(srv.URL + "/slow.png")
		if err != nil {
			t.Fatal(err)
		}
		if err := s.StopTask(task.ID); err != nil {
			t.Fatalf("StopTask: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err = s.Wait(ctx)
		cancel()
		if err != nil {
			t.Fatalf("run %d: task kept running after StopTask: %v", i, err)
		}
		if got, _ := s.GetTask(task.ID); got.Status != TaskStatusStopped {
			t.Fatalf("run %d: status = %s, want stopped", i, got.Status)
		}
		s.Close()
	}
}

func TestService_WaitHonoursContext(t *testing.T) {
	release := make(chan struct{})
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})

	s := NewService(t.TempDir(), 1)
	if _, err := s.AddTask(srv.URL + "/slow.png"); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := s.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait = %v, want deadline exceeded", err)
	}

	s.Close()
	close(release)
	if err := s.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := s.GetAllTasks()[0].Status; got != TaskStatusStopped {
		t.Errorf("closed task status = %s, want stopped", got)
	}
}
