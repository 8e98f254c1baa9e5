package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// CleanupManager runs named shutdown tasks once, with a bound on total time
// and recovery from panicking tasks.
type CleanupManager struct {
	mu      sync.Mutex
	tasks   []cleanupTask
	timeout time.Duration
	once    sync.Once
}

type cleanupTask struct {
	name string
	fn   func() error
}

// NewCleanupManager creates a cleanup manager with the specified timeout.
func NewCleanupManager(timeout time.Duration) *CleanupManager {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &CleanupManager{timeout: timeout}
}

// Register adds a named shutdown task. Tasks run in registration order.
func (cm *CleanupManager) Register(name string, fn func() error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.tasks = append(cm.tasks, cleanupTask{name: name, fn: fn})
}

// Execute runs all registered tasks. Only the first call does any work.
func (cm *CleanupManager) Execute() []error {
	var errs []error
	cm.once.Do(func() {
		errs = cm.executeWithTimeout()
	})
	return errs
}

func (cm *CleanupManager) executeWithTimeout() []error {
	cm.mu.Lock()
	tasks := make([]cleanupTask, len(cm.tasks))
	copy(tasks, cm.tasks)
	cm.mu.Unlock()

	if len(tasks) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cm.timeout)
	defer cancel()

	var taskErrs []error
	var mu sync.Mutex
	done := make(chan struct{})

	go func() {
		defer close(done)
		for _, task := range tasks {
			if err := runCleanupTask(task); err != nil {
				mu.Lock()
				taskErrs = append(taskErrs, err)
				mu.Unlock()
			}
		}
	}()

	select {
	case <-done:
		return taskErrs
	case <-ctx.Done():
		log.Printf("cleanup: timeout after %v, some tasks may not have completed", cm.timeout)
		mu.Lock()
		defer mu.Unlock()
		return append(taskErrs, errors.New("cleanup timeout exceeded"))
	}
}

func runCleanupTask(task cleanupTask) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic cleaning up %s: %v", task.name, r)
		}
	}()
	if err := task.fn(); err != nil {
		return fmt.Errorf("cleanup of %s failed: %w", task.name, err)
	}
	return nil
}
