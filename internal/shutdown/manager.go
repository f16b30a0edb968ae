package shutdown

import (
	"context"
	"sync"
	"time"

	"image-labeler/internal/logger"
)

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

// Manager runs registered components once, newest first, on the calling
// goroutine. Later calls to Shutdown are no-ops.
type Manager struct {
	components []named
	logger     logger.Logger
	mu         sync.Mutex
	once       sync.Once
	done       chan struct{}
}

type named struct {
	name      string
	component Shutdownable
}

func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Manager{
		logger: log,
		done:   make(chan struct{}),
	}
}

func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, named{name: name, component: component})
}

// Watch calls onCancel when ctx ends before the manager has shut down.
// onCancel is expected to route into Shutdown on the right goroutine.
func (m *Manager) Watch(ctx context.Context, onCancel func()) {
	go func() {
		select {
		case <-ctx.Done():
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"cause": context.Cause(ctx).Error(),
			})
			onCancel()
		case <-m.done:
		}
	}()
}

func (m *Manager) Shutdown() {
	m.once.Do(func() {
		m.mu.Lock()
		components := make([]named, len(m.components))
		copy(components, m.components)
		m.mu.Unlock()

		m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
			"components": len(components),
		})

		for i := len(components) - 1; i >= 0; i-- {
			start := time.Now()
			components[i].component.Shutdown()
			m.logger.Debug("ShutdownManager", "component shut down", map[string]interface{}{
				"component": components[i].name,
				"duration":  time.Since(start).String(),
			})
		}

		close(m.done)
		m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
	})
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
