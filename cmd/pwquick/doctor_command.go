package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pwquick/internal/preflight"
	"pwquick/internal/services"
)

type doctorCheck struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that PipeWire and its tools are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			results := preflight.RunAll(commandScope(cmd), cfg, ctx.source())

			if ctx.jsonOutput() {
				checks := make([]doctorCheck, 0, len(results))
				for _, r := range results {
					checks = append(checks, doctorCheck(r))
				}
				if err := writeJSON(cmd, checks); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out, cfg.Display.Color)
				for _, line := range renderSectionHeader("pwquick doctor", colorize) {
					fmt.Fprintln(out, line)
				}
				if ctx.configPath != "" {
					fmt.Fprintln(out, renderStatusLine("Config", checkInfo, ctx.configPath, colorize))
				}
				for _, r := range results {
					state := checkPass
					if !r.Passed {
						state = checkFail
					}
					fmt.Fprintln(out, renderStatusLine(r.Name, state, r.Detail, colorize))
				}
			}

			if !preflight.Passed(results) {
				return services.Wrap(services.ErrSourceUnavailable, "doctor", "", "one or more checks failed", nil)
			}
			return nil
		},
	}
}
