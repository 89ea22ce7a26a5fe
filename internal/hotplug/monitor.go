package hotplug

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pilebones/go-udev/netlink"

	"pwquick/internal/logging"
)

// Handler receives debounced sound events.
type Handler func(ctx context.Context, ev Event)

// Monitor listens for udev netlink events from the sound subsystem.
type Monitor struct {
	logger   *slog.Logger
	handler  Handler
	debounce time.Duration
	now      func() time.Time

	mu        sync.Mutex
	conn      *netlink.UEventConn
	quit      chan struct{}
	debouncer *Debouncer
	running   bool
}

// NewMonitor creates a monitor that calls handler after each quiet period of
// length debounce following one or more sound uevents.
func NewMonitor(debounce time.Duration, logger *slog.Logger, handler Handler) *Monitor {
	return &Monitor{
		logger:   logging.NewComponentLogger(logger, "hotplug"),
		handler:  handler,
		debounce: debounce,
		now:      time.Now,
	}
}

// Start connects to the udev netlink socket and begins delivering events.
// Unlike a background daemon, a watcher has nothing to do without events, so
// a failed connection is returned.
func (m *Monitor) Start(ctx context.Context) error {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return nil
	}

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		return fmt.Errorf("connect udev netlink socket: %w", err)
	}

	m.conn = conn
	m.quit = make(chan struct{})
	m.debouncer = m.newDebouncer(ctx)
	m.running = true

	quit := m.quit
	go m.monitorLoop(ctx, conn, quit)

	m.logger.Debug("hotplug monitor started",
		logging.String(logging.FieldEventType, "hotplug_monitor_started"),
		logging.Duration("debounce", m.debounce),
	)
	return nil
}

// Stop shuts down the monitor and drops any pending event.
func (m *Monitor) Stop() {
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	if m.quit != nil {
		close(m.quit)
		m.quit = nil
	}
	if m.debouncer != nil {
		m.debouncer.Stop()
	}
	if m.conn != nil {
		_ = m.conn.Close()
		m.conn = nil
	}
	m.running = false

	m.logger.Debug("hotplug monitor stopped",
		logging.String(logging.FieldEventType, "hotplug_monitor_stopped"),
	)
}

// Running reports whether the monitor is active.
func (m *Monitor) Running() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Monitor) newDebouncer(ctx context.Context) *Debouncer {
	return NewDebouncer(m.debounce, func(ev Event) {
		if m.handler == nil || ctx.Err() != nil {
			return
		}
		m.handler(ctx, ev)
	})
}

func (m *Monitor) monitorLoop(ctx context.Context, conn *netlink.UEventConn, quit <-chan struct{}) {
	queue := make(chan netlink.UEvent)
	errs := make(chan error)
	monitorQuit := conn.Monitor(queue, errs, buildMatcher())

	for {
		select {
		case <-ctx.Done():
			close(monitorQuit)
			return
		case <-quit:
			close(monitorQuit)
			return
		case uevent := <-queue:
			m.handleEvent(uevent)
		case err := <-errs:
			m.logger.Warn("udev monitor error",
				logging.Error(err),
				logging.String(logging.FieldEventType, "hotplug_monitor_error"),
				logging.String(logging.FieldErrorHint, "check kernel netlink subsystem"),
				logging.String(logging.FieldImpact, "card changes may be missed"),
			)
		}
	}
}

// buildMatcher matches add, remove and change events for SUBSYSTEM=sound.
func buildMatcher() netlink.Matcher {
	action := "add|remove|change"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM": "sound",
		},
	})
	return rules
}

func (m *Monitor) handleEvent(uevent netlink.UEvent) {
	ev := eventFromUEvent(uevent, m.now())
	m.logger.Debug("sound uevent",
		logging.String("action", ev.Action),
		logging.String("device", ev.Device()),
		logging.String("devpath", ev.DevPath),
	)

	m.mu.Lock()
	debouncer := m.debouncer
	m.mu.Unlock()
	debouncer.Trigger(ev)
}
