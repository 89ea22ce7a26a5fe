package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pwquick/internal/audiograph"
	"pwquick/internal/logging"
	"pwquick/internal/services"
	"pwquick/internal/services/pipewire"
)

type mutationResult struct {
	Action  string `json:"action"`
	SinkID  int    `json:"sink_id"`
	CardID  *int   `json:"card_id,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

func emitMutation(cmd *cobra.Command, ctx *commandContext, result mutationResult) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, result)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Message)
	return nil
}

func sinkLabel(sink audiograph.Sink) string {
	return fmt.Sprintf("Sink %d (%s)", sink.ID, sink.Description)
}

func newSetDefaultCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-default <sink>",
		Short: "Make a sink the default audio output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := commandScope(cmd)
			snap, err := ctx.snapshot(scope)
			if err != nil {
				return err
			}
			sink, err := resolveSink(snap, args[0])
			if err != nil {
				return err
			}
			scope = services.WithSinkID(scope, sink.ID)
			if err := ctx.controller().SetDefaultSink(scope, sink.ID); err != nil {
				return err
			}
			logging.WithContext(scope, ctx.loggerFor(cmd.Name())).Info("default sink changed",
				logging.String("description", sink.Description),
			)
			return emitMutation(cmd, ctx, mutationResult{
				Action:  "set-default",
				SinkID:  sink.ID,
				Message: "Default output set to " + sinkLabel(sink),
			})
		},
	}
}

func newSetProfileCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-profile <sink> <profile>",
		Short: "Switch the profile of the card behind a sink",
		Long: "Switch the card that owns <sink> to <profile>. The profile may be given\n" +
			"as its index or its name or description (case-insensitive).",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := commandScope(cmd)
			snap, err := ctx.snapshot(scope)
			if err != nil {
				return err
			}
			sink, err := resolveSink(snap, args[0])
			if err != nil {
				return err
			}
			card, ok := snap.CardFor(sink.ID)
			if !ok {
				return services.Wrap(services.ErrNotFound, "resolve", "card", sinkLabel(sink)+" has no card", nil)
			}
			profiles, _ := snap.ProfilesFor(sink.ID)
			profile, err := resolveProfile(profiles, args[1])
			if err != nil {
				return err
			}
			if profile.Unavailable() {
				logging.WarnWithContext(ctx.loggerFor(cmd.Name()), "selected profile is marked unavailable", "profile_unavailable",
					logging.CardID(card.ID),
					logging.Int("profile_index", profile.Index),
					logging.String(logging.FieldImpact, "the card may produce no sound"),
				)
			}
			scope = services.WithSinkID(scope, sink.ID)
			if err := ctx.controller().SetProfile(scope, card.ID, profile.Index); err != nil {
				return err
			}
			logging.WithContext(scope, ctx.loggerFor(cmd.Name())).Info("card profile changed",
				logging.CardID(card.ID),
				logging.String("profile", profile.Label()),
			)
			cardID := card.ID
			return emitMutation(cmd, ctx, mutationResult{
				Action:  "set-profile",
				SinkID:  sink.ID,
				CardID:  &cardID,
				Value:   fmt.Sprint(profile.Index),
				Message: fmt.Sprintf("Card %d switched to profile %d (%s)", card.ID, profile.Index, profile.Label()),
			})
		},
	}
}

func newVolumeCommand(ctx *commandContext) *cobra.Command {
	var limit float64

	cmd := &cobra.Command{
		Use:   "volume <sink> <value>",
		Short: "Set or step a sink's volume",
		Long: "Set the volume of <sink>. <value> is a fraction (0.8), a percentage (80%),\n" +
			"or a relative step with a trailing sign (5%+, 5%-, 0.05+). A leading sign\n" +
			"also works for increases (+5%); for decreases put it after \"--\" so it is\n" +
			"not read as a flag: pwquick volume default -- -5%",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := pipewire.ParseVolume(args[1])
			if err != nil {
				return err
			}
			if spec.Direction == pipewire.Increase {
				spec.Limit = ctx.configValue().Volume.Limit
				if cmd.Flags().Changed("limit") {
					spec.Limit = limit
				}
			}

			scope := commandScope(cmd)
			snap, err := ctx.snapshot(scope)
			if err != nil {
				return err
			}
			sink, err := resolveSink(snap, args[0])
			if err != nil {
				return err
			}
			scope = services.WithSinkID(scope, sink.ID)
			if err := ctx.controller().SetVolume(scope, sink.ID, spec); err != nil {
				return err
			}
			attrs := []any{logging.String("requested", spec.String())}
			message := fmt.Sprintf("Volume of %s set to %s", sinkLabel(sink), spec)
			if sink.Volume != nil {
				next := spec.Apply(*sink.Volume)
				attrs = append(attrs, logging.Volume(next))
				message = fmt.Sprintf("Volume of %s: %s -> %d%%", sinkLabel(sink), formatVolume(sink), percentOf(next))
			}
			logging.WithContext(scope, ctx.loggerFor(cmd.Name())).Info("volume set", attrs...)

			return emitMutation(cmd, ctx, mutationResult{
				Action:  "volume",
				SinkID:  sink.ID,
				Value:   spec.Arg(),
				Message: message,
			})
		},
	}

	cmd.Flags().Float64VarP(&limit, "limit", "l", 0, "Cap increases at this linear volume (default volume.limit)")
	return cmd
}

func percentOf(linear float64) int {
	return int(linear*100 + 0.5)
}

func newMuteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mute <sink> [on|off|toggle]",
		Short: "Mute, unmute, or toggle a sink",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) == 2 {
				raw = args[1]
			}
			action, err := pipewire.ParseMute(raw)
			if err != nil {
				return err
			}

			scope := commandScope(cmd)
			snap, err := ctx.snapshot(scope)
			if err != nil {
				return err
			}
			sink, err := resolveSink(snap, args[0])
			if err != nil {
				return err
			}
			scope = services.WithSinkID(scope, sink.ID)
			if err := ctx.controller().SetMute(scope, sink.ID, action); err != nil {
				return err
			}
			logging.WithContext(scope, ctx.loggerFor(cmd.Name())).Info("mute changed",
				logging.String("mute", action.String()),
			)
			return emitMutation(cmd, ctx, mutationResult{
				Action:  "mute",
				SinkID:  sink.ID,
				Value:   action.String(),
				Message: muteMessage(sink, action),
			})
		},
	}
}

func muteMessage(sink audiograph.Sink, action pipewire.MuteAction) string {
	switch action {
	case pipewire.MuteOn:
		return sinkLabel(sink) + " muted"
	case pipewire.MuteOff:
		return sinkLabel(sink) + " unmuted"
	default:
		switch {
		case sink.Mute == nil:
			return sinkLabel(sink) + " mute toggled"
		case *sink.Mute:
			return sinkLabel(sink) + " unmuted"
		default:
			return sinkLabel(sink) + " muted"
		}
	}
}
