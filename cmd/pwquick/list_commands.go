package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pwquick/internal/audiograph"
)

const defaultMarker = "*"

type sinksPayload struct {
	DefaultSinkID   *int              `json:"default_sink_id"`
	DefaultSinkName string            `json:"default_sink_name,omitempty"`
	Sinks           []audiograph.Sink `json:"sinks"`
}

type profilesPayload struct {
	SinkID       int                  `json:"sink_id"`
	CardID       *int                 `json:"card_id"`
	ActiveIndex  *int                 `json:"active_index"`
	Profiles     []audiograph.Profile `json:"profiles"`
	Routes       []audiograph.Route   `json:"routes,omitempty"`
	ActiveRoutes []audiograph.Route   `json:"active_routes,omitempty"`
}

func newSinksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "sinks",
		Aliases: []string{"ls", "list"},
		Short:   "List audio outputs and mark the default",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.snapshot(commandScope(cmd))
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, buildSinksPayload(snap))
			}
			out := cmd.OutOrStdout()
			printSinks(out, snap, shouldColorize(out, ctx.configValue().Display.Color))
			return nil
		},
	}
}

func buildSinksPayload(snap *audiograph.Snapshot) sinksPayload {
	payload := sinksPayload{Sinks: snap.Sinks()}
	if payload.Sinks == nil {
		payload.Sinks = []audiograph.Sink{}
	}
	if id, ok := snap.DefaultSinkID(); ok {
		payload.DefaultSinkID = &id
	}
	payload.DefaultSinkName, _ = snap.DefaultSinkName()
	return payload
}

func printSinks(out io.Writer, snap *audiograph.Snapshot, colorize bool) {
	sinks := snap.Sinks()
	if len(sinks) == 0 {
		fmt.Fprintln(out, "No audio sinks found")
		return
	}
	rows := make([][]string, 0, len(sinks))
	for _, sink := range sinks {
		marker := ""
		description := sink.Description
		if snap.IsDefault(sink.ID) {
			marker = defaultMarker
			description = paint(description, ansiGreen, colorize)
		}
		rows = append(rows, []string{
			marker,
			strconv.Itoa(sink.ID),
			description,
			sink.State,
			formatVolume(sink),
			formatMute(sink),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]column{markerColumn, numberColumn("ID"), textColumn("Description"), textColumn("State"), numberColumn("Volume"), textColumn("Muted")},
		rows,
	))
	if name, ok := snap.DefaultSinkName(); ok {
		if _, matched := snap.DefaultSinkID(); !matched {
			fmt.Fprintf(out, "Default sink %q is not among the listed sinks\n", name)
		}
	}
}

func formatVolume(sink audiograph.Sink) string {
	pct, ok := sink.VolumePercent()
	if !ok {
		return "-"
	}
	return strconv.Itoa(pct) + "%"
}

func formatMute(sink audiograph.Sink) string {
	if sink.Mute == nil {
		return "-"
	}
	return yesNo(*sink.Mute)
}

func formatAvailable(value any) string {
	if value == nil {
		return "-"
	}
	s := strings.TrimPrefix(fmt.Sprint(value), "SPA_PARAM_AVAILABILITY_")
	if s == "" {
		return "-"
	}
	return s
}

func newCardsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cards",
		Short: "List audio cards and their active profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.snapshot(commandScope(cmd))
			if err != nil {
				return err
			}
			cards := snap.Cards()
			if ctx.jsonOutput() {
				if cards == nil {
					cards = []audiograph.Card{}
				}
				return writeJSON(cmd, cards)
			}
			printCards(cmd.OutOrStdout(), cards)
			return nil
		},
	}
}

func printCards(out io.Writer, cards []audiograph.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(out, "No audio cards found")
		return
	}
	rows := make([][]string, 0, len(cards))
	for _, card := range cards {
		rows = append(rows, []string{
			strconv.Itoa(card.ID),
			card.Name,
			card.Description,
			card.ActiveProfileDescription,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]column{numberColumn("ID"), textColumn("Name"), textColumn("Description"), textColumn("Active profile")},
		rows,
	))
}

func newProfilesCommand(ctx *commandContext) *cobra.Command {
	var showAll bool
	var showRoutes bool

	cmd := &cobra.Command{
		Use:   "profiles <sink>",
		Short: "List the profiles of the card behind a sink",
		Long: "List the profiles of the card that owns <sink>. The sink may be given as\n" +
			"\"default\", a numeric id, a node name, or part of its description.\n" +
			"Profiles the card reports as unavailable are hidden unless --all is set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.snapshot(commandScope(cmd))
			if err != nil {
				return err
			}
			sink, err := resolveSink(snap, args[0])
			if err != nil {
				return err
			}

			profiles, active := snap.ProfilesFor(sink.ID)
			card, hasCard := snap.CardFor(sink.ID)
			if !showAll && !ctx.configValue().Display.ShowUnavailableProfiles {
				profiles = availableProfiles(profiles)
			}

			payload := profilesPayload{SinkID: sink.ID, ActiveIndex: active, Profiles: profiles}
			if payload.Profiles == nil {
				payload.Profiles = []audiograph.Profile{}
			}
			if hasCard {
				payload.CardID = &card.ID
				if showRoutes {
					payload.Routes = audiograph.ListRoutes(card)
					payload.ActiveRoutes = audiograph.ActiveRoutes(card)
				}
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, payload)
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out, ctx.configValue().Display.Color)
			if !hasCard {
				fmt.Fprintf(out, "Sink %d (%s) has no card profiles\n", sink.ID, sink.Description)
				return nil
			}
			printProfiles(out, card, payload, colorize)
			if showRoutes {
				printRoutes(out, payload.Routes, payload.ActiveRoutes)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Include profiles marked unavailable")
	cmd.Flags().BoolVar(&showRoutes, "routes", false, "Also list the card's output and input routes")
	return cmd
}

func availableProfiles(profiles []audiograph.Profile) []audiograph.Profile {
	out := make([]audiograph.Profile, 0, len(profiles))
	for _, profile := range profiles {
		if !profile.Unavailable() {
			out = append(out, profile)
		}
	}
	return out
}

func printProfiles(out io.Writer, card audiograph.Card, payload profilesPayload, colorize bool) {
	title := fmt.Sprintf("Card %d", card.ID)
	if card.Description != "" {
		title += ": " + card.Description
	}
	for _, line := range renderSectionHeader(title, colorize) {
		fmt.Fprintln(out, line)
	}
	if len(payload.Profiles) == 0 {
		fmt.Fprintln(out, "No profiles available")
		return
	}
	rows := make([][]string, 0, len(payload.Profiles))
	for _, profile := range payload.Profiles {
		marker := ""
		description := profile.Description
		if payload.ActiveIndex != nil && *payload.ActiveIndex == profile.Index {
			marker = defaultMarker
			description = paint(description, ansiGreen, colorize)
		}
		rows = append(rows, []string{
			marker,
			strconv.Itoa(profile.Index),
			profile.Name,
			description,
			formatAvailable(profile.Available),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]column{markerColumn, numberColumn("Index"), textColumn("Name"), textColumn("Description"), textColumn("Available")},
		rows,
	))
}

func printRoutes(out io.Writer, routes, active []audiograph.Route) {
	if len(routes) == 0 {
		fmt.Fprintln(out, "No routes reported")
		return
	}
	isActive := func(route audiograph.Route) bool {
		for _, a := range active {
			if a.Index == route.Index && a.Direction == route.Direction {
				return true
			}
		}
		return false
	}
	rows := make([][]string, 0, len(routes))
	for _, route := range routes {
		marker := ""
		if isActive(route) {
			marker = defaultMarker
		}
		rows = append(rows, []string{
			marker,
			strconv.Itoa(route.Index),
			route.Name,
			route.Description,
			route.Direction,
			formatAvailable(route.Available),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]column{markerColumn, numberColumn("Index"), textColumn("Name"), textColumn("Description"), textColumn("Direction"), textColumn("Available")},
		rows,
	))
}

func newClientsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clients",
		Short: "List applications connected to PipeWire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.snapshot(commandScope(cmd))
			if err != nil {
				return err
			}
			clients := snap.Clients()
			if ctx.jsonOutput() {
				if clients == nil {
					clients = []audiograph.Client{}
				}
				return writeJSON(cmd, clients)
			}
			out := cmd.OutOrStdout()
			if len(clients) == 0 {
				fmt.Fprintln(out, "No clients connected")
				return nil
			}
			rows := make([][]string, 0, len(clients))
			for _, client := range clients {
				rows = append(rows, []string{
					strconv.Itoa(client.ID),
					client.Application,
					client.Binary,
					optionalInt(client.PID),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]column{numberColumn("ID"), textColumn("Application"), textColumn("Binary"), numberColumn("PID")},
				rows,
			))
			return nil
		},
	}
}
