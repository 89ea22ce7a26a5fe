package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pwquick/internal/hotplug"
	"pwquick/internal/logging"
	"pwquick/internal/services"
)

type eventMonitor interface {
	Start(ctx context.Context) error
	Stop()
}

type monitorFactory func(debounce time.Duration, logger *slog.Logger, handler hotplug.Handler) eventMonitor

func defaultMonitorFactory(debounce time.Duration, logger *slog.Logger, handler hotplug.Handler) eventMonitor {
	return hotplug.NewMonitor(debounce, logger, handler)
}

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-print sinks whenever a sound card is added, removed or changed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, stop := signal.NotifyContext(commandScope(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg := ctx.configValue()
			logger := ctx.loggerFor(cmd.Name())
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out, cfg.Display.Color)

			snap, err := ctx.snapshot(scope)
			if err != nil {
				return err
			}
			printSinks(out, snap, colorize)

			var (
				mu        sync.Mutex
				refreshes int
				done      = make(chan struct{})
				closeOnce sync.Once
			)
			handler := func(eventCtx context.Context, ev hotplug.Event) {
				mu.Lock()
				defer mu.Unlock()
				if count > 0 && refreshes >= count {
					return
				}

				logger.Info("sound device event",
					logging.String(logging.FieldEventType, "hotplug_"+ev.Action),
					logging.String("device", ev.Device()),
					logging.Int("coalesced", ev.Coalesced),
				)
				title := fmt.Sprintf("%s %s %s", ev.At.Format(time.TimeOnly), ev.Action, ev.Device())
				for _, line := range renderSectionHeader(title, colorize) {
					fmt.Fprintln(out, line)
				}
				snap, err := ctx.snapshot(eventCtx)
				if err != nil {
					logging.WarnWithContext(logger, "refresh after device event failed", "watch_refresh_failed",
						logging.Error(err),
						logging.String(logging.FieldErrorHint, services.Hint(err)),
					)
					fmt.Fprintln(out, "Error:", err)
				} else {
					printSinks(out, snap, colorize)
				}

				refreshes++
				if count > 0 && refreshes >= count {
					closeOnce.Do(func() { close(done) })
				}
			}

			factory := ctx.monitorFactory
			if factory == nil {
				factory = defaultMonitorFactory
			}
			debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
			monitor := factory(debounce, ctx.baseLogger(), handler)
			if err := monitor.Start(scope); err != nil {
				return services.Wrap(services.ErrExternalTool, "watch", "udev", "start monitor", err)
			}
			defer monitor.Stop()

			select {
			case <-scope.Done():
			case <-done:
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Exit after this many refreshes (0 watches until interrupted)")
	return cmd
}
