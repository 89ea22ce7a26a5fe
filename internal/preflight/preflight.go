package preflight

import (
	"context"

	"pwquick/internal/config"
	"pwquick/internal/services/pipewire"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every readiness check: tool binaries, the runtime directory,
// the PipeWire socket, and a live dump through source.
func RunAll(ctx context.Context, cfg *config.Config, source pipewire.Source) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	for _, status := range CheckSystemDeps(cfg) {
		result := Result{Name: status.Name, Passed: status.Available || status.Optional, Detail: status.Path}
		if !status.Available {
			result.Detail = status.Detail
		}
		results = append(results, result)
	}

	runtimeDir := RuntimeDir()
	results = append(results, CheckDirectoryAccess("Runtime directory", runtimeDir))
	results = append(results, CheckSocket("PipeWire socket", SocketPath()))

	if source != nil {
		results = append(results, CheckDumpSource(ctx, source))
	}
	return results
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
