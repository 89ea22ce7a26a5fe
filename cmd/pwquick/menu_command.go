package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"pwquick/internal/audiograph"
	"pwquick/internal/config"
	"pwquick/internal/lock"
	"pwquick/internal/logging"
	"pwquick/internal/services"
	"pwquick/internal/services/pipewire"
)

type menuAction int

const (
	menuShowSinks menuAction = iota
	menuShowCards
	menuSetDefault
	menuSetVolume
	menuVolumeUp
	menuVolumeDown
	menuToggleMute
	menuSetProfile
	menuQuit
)

var menuActions = []struct {
	action menuAction
	label  string
}{
	{menuShowSinks, "Show sinks"},
	{menuShowCards, "Show cards"},
	{menuSetDefault, "Set default sink"},
	{menuSetVolume, "Set volume"},
	{menuVolumeUp, "Volume up"},
	{menuVolumeDown, "Volume down"},
	{menuToggleMute, "Toggle mute"},
	{menuSetProfile, "Set card profile"},
	{menuQuit, "Quit"},
}

const menuLockName = "menu.lock"

func newMenuCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive output switcher",
		Long: "Loop over a small menu of actions. The graph is re-read before every\n" +
			"action, so changes made elsewhere show up immediately. Only one menu can\n" +
			"run at a time.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lockPath, err := config.RuntimeFile(menuLockName)
			if err != nil {
				return services.Wrap(services.ErrConfiguration, "menu", "lock", "resolve runtime dir", err)
			}
			held, err := lock.Acquire(lockPath)
			if err != nil {
				return err
			}
			defer func() { _ = held.Release() }()

			p := ctx.prompterOverride
			if p == nil {
				p = terminalPrompter{pageSize: 10}
			}
			m := &menuSession{
				ctx:    ctx,
				cfg:    ctx.configValue(),
				out:    cmd.OutOrStdout(),
				prompt: p,
				// prompts own the terminal; keep info chatter off it
				logger: logging.WithLevelOverride(ctx.loggerFor(cmd.Name()), slog.LevelWarn),
			}
			return m.run(commandScope(cmd))
		},
	}
}

type menuSession struct {
	ctx    *commandContext
	cfg    *config.Config
	out    io.Writer
	prompt prompter
	logger *slog.Logger
}

func (m *menuSession) run(ctx context.Context) error {
	labels := make([]string, len(menuActions))
	for i, entry := range menuActions {
		labels[i] = entry.label
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap, err := m.ctx.snapshot(ctx)
		if err != nil {
			return err
		}
		m.printCurrent(snap)

		choice, err := m.prompt.Select("Choose an action", labels)
		if errors.Is(err, errPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		action := menuActions[choice].action
		if action == menuQuit {
			return nil
		}
		if err := m.dispatch(ctx, snap, action); err != nil {
			if errors.Is(err, errPromptAborted) {
				continue
			}
			if errors.Is(err, services.ErrSourceUnavailable) {
				return err
			}
			fmt.Fprintln(m.out, "Error:", err)
			m.logger.Warn("menu action failed",
				logging.Error(err),
				logging.String(logging.FieldEventType, "menu_action_failed"),
				logging.String(logging.FieldErrorHint, services.Hint(err)),
			)
		}
	}
}

func (m *menuSession) printCurrent(snap *audiograph.Snapshot) {
	id, ok := snap.InitialSelection()
	if !ok {
		fmt.Fprintln(m.out, "No audio outputs")
		return
	}
	sink, _ := snap.Sink(id)
	label := "Current output"
	if !snap.IsDefault(id) {
		label = "First output"
	}
	fmt.Fprintf(m.out, "%s: %s  volume %s  muted %s\n", label, sinkLabel(sink), formatVolume(sink), formatMute(sink))
}

func (m *menuSession) dispatch(ctx context.Context, snap *audiograph.Snapshot, action menuAction) error {
	switch action {
	case menuShowSinks:
		printSinks(m.out, snap, shouldColorize(m.out, m.cfg.Display.Color))
		return nil
	case menuShowCards:
		printCards(m.out, snap.Cards())
		return nil
	}

	sink, err := m.pickSink(snap)
	if err != nil {
		return err
	}
	ctx = services.WithSinkID(ctx, sink.ID)
	controller := m.ctx.controller()

	switch action {
	case menuSetDefault:
		if err := controller.SetDefaultSink(ctx, sink.ID); err != nil {
			return err
		}
		fmt.Fprintln(m.out, "Default output set to "+sinkLabel(sink))
	case menuSetVolume:
		initial := ""
		if pct, ok := sink.VolumePercent(); ok {
			initial = strconv.Itoa(pct) + "%"
		}
		raw, err := m.prompt.Input("Volume (50%, 5%+, 5%-)", initial, func(s string) error {
			_, err := pipewire.ParseVolume(s)
			return err
		})
		if err != nil {
			return err
		}
		spec, err := pipewire.ParseVolume(raw)
		if err != nil {
			return err
		}
		if spec.Direction == pipewire.Increase {
			spec.Limit = m.cfg.Volume.Limit
		}
		return m.applyVolume(ctx, controller, sink, spec)
	case menuVolumeUp, menuVolumeDown:
		spec := pipewire.Step(m.cfg.Volume.Step, action == menuVolumeUp, m.cfg.Volume.Limit)
		return m.applyVolume(ctx, controller, sink, spec)
	case menuToggleMute:
		if err := controller.SetMute(ctx, sink.ID, pipewire.MuteToggle); err != nil {
			return err
		}
		fmt.Fprintln(m.out, muteMessage(sink, pipewire.MuteToggle))
	case menuSetProfile:
		return m.setProfile(ctx, controller, snap, sink)
	}
	return nil
}

func (m *menuSession) pickSink(snap *audiograph.Snapshot) (audiograph.Sink, error) {
	sinks := snap.Sinks()
	if len(sinks) == 0 {
		return audiograph.Sink{}, services.Wrap(services.ErrNotFound, "menu", "sink", "no audio outputs", nil)
	}
	labels := make([]string, len(sinks))
	for i, sink := range sinks {
		marker := " "
		if snap.IsDefault(sink.ID) {
			marker = defaultMarker
		}
		labels[i] = fmt.Sprintf("%s %d  %s  (%s)", marker, sink.ID, sink.Description, formatVolume(sink))
	}
	choice, err := m.prompt.Select("Choose a sink", labels)
	if err != nil {
		return audiograph.Sink{}, err
	}
	return sinks[choice], nil
}

func (m *menuSession) applyVolume(ctx context.Context, controller pipewire.Controller, sink audiograph.Sink, spec pipewire.VolumeSpec) error {
	if err := controller.SetVolume(ctx, sink.ID, spec); err != nil {
		return err
	}
	if sink.Volume != nil {
		fmt.Fprintf(m.out, "Volume of %s: %s -> %d%%\n", sinkLabel(sink), formatVolume(sink), percentOf(spec.Apply(*sink.Volume)))
		return nil
	}
	fmt.Fprintf(m.out, "Volume of %s set to %s\n", sinkLabel(sink), spec)
	return nil
}

func (m *menuSession) setProfile(ctx context.Context, controller pipewire.Controller, snap *audiograph.Snapshot, sink audiograph.Sink) error {
	card, ok := snap.CardFor(sink.ID)
	if !ok {
		fmt.Fprintf(m.out, "%s has no card profiles\n", sinkLabel(sink))
		return nil
	}
	profiles, active := snap.ProfilesFor(sink.ID)
	if !m.cfg.Display.ShowUnavailableProfiles {
		profiles = availableProfiles(profiles)
	}
	if len(profiles) == 0 {
		fmt.Fprintln(m.out, "No profiles available")
		return nil
	}
	labels := make([]string, len(profiles))
	for i, profile := range profiles {
		marker := " "
		if active != nil && *active == profile.Index {
			marker = defaultMarker
		}
		labels[i] = fmt.Sprintf("%s %d  %s", marker, profile.Index, profile.Label())
	}
	choice, err := m.prompt.Select("Choose a profile", labels)
	if err != nil {
		return err
	}
	profile := profiles[choice]
	if err := controller.SetProfile(ctx, card.ID, profile.Index); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Card %d switched to profile %d (%s)\n", card.ID, profile.Index, profile.Label())
	return nil
}
