package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"pwquick/internal/services/pipewire"
	"pwquick/internal/testsupport"
)

// fixtureDump has an analog card (10) with a default sink (50) on it, a
// Bluetooth sink (51) whose device is not in the dump, a source node, and a
// client.
const fixtureDump = `[
  {"id": 10, "type": "PipeWire:Interface:Device",
   "info": {"props": {"device.name": "alsa_card.pci", "device.description": "Built-in Audio", "media.class": "Audio/Device"},
            "params": {
              "EnumProfile": [
                {"index": 0, "name": "off", "description": "Off", "available": "yes"},
                {"index": 1, "name": "output:analog-stereo", "description": "Analog Stereo Output", "available": "yes"},
                {"index": 3, "name": "output:hdmi-stereo", "description": "Digital Stereo (HDMI) Output", "available": "no"}],
              "Profile": [{"index": 1, "name": "output:analog-stereo", "description": "Analog Stereo Output"}],
              "EnumRoute": [
                {"index": 0, "name": "analog-output-speaker", "description": "Speakers", "direction": "Output", "available": "yes"},
                {"index": 1, "name": "analog-output-headphones", "description": "Headphones", "direction": "Output", "available": "no"}],
              "Route": [{"index": 0, "name": "analog-output-speaker", "direction": "Output", "device": 4}]}}},
  {"id": 50, "type": "PipeWire:Interface:Node",
   "info": {"state": "running",
            "props": {"media.class": "Audio/Sink", "node.name": "alsa_output.pci.analog-stereo",
                      "node.description": "Built-in Audio Analog Stereo", "device.id": 10},
            "params": {"Props": [{"volume": 0.4, "channelVolumes": [0.4, 0.4], "mute": false}]}}},
  {"id": 51, "type": "PipeWire:Interface:Node",
   "info": {"state": "suspended",
            "props": {"media.class": "Audio/Sink", "node.name": "bluez_output.headset",
                      "node.description": "WH-1000XM4", "device.id": 20},
            "params": {"Props": [{"channelVolumes": [0.25, 0.75], "mute": true}]}}},
  {"id": 60, "type": "PipeWire:Interface:Node",
   "info": {"props": {"media.class": "Audio/Source", "node.name": "alsa_input.pci", "node.description": "Internal Mic"}}},
  {"id": 70, "type": "PipeWire:Interface:Client",
   "info": {"props": {"application.name": "Firefox", "application.process.binary": "firefox", "application.process.id": 4242}}},
  {"id": 31, "type": "PipeWire:Interface:Metadata", "props": {"metadata.name": "default"},
   "metadata": [{"subject": 0, "key": "default.audio.sink", "type": "Spa:String:JSON",
                 "value": {"name": "alsa_output.pci.analog-stereo"}}]}
]`

type cliEnv struct {
	dir        string
	dumpPath   string
	configPath string
	controller *stubController
}

// setupCLIEnv isolates XDG directories and writes the fixture dump and a
// config file that points the tools at missing binaries.
func setupCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	base := testsupport.IsolateXDG(t)

	env := &cliEnv{
		dir:        base,
		dumpPath:   filepath.Join(base, "dump.json"),
		configPath: filepath.Join(base, "pwquick-test.toml"),
		controller: &stubController{},
	}
	testsupport.WriteFile(t, env.dumpPath, fixtureDump)
	testsupport.WriteFile(t, env.configPath, "[tools]\npw_dump = \"pwquick-missing-pw-dump\"\nwpctl = \"pwquick-missing-wpctl\"\n\n[display]\ncolor = \"never\"\n")
	return env
}

// run executes the CLI against the fixture dump with the stub controller.
func (e *cliEnv) run(t *testing.T, args []string, opts ...contextOption) (string, string, error) {
	t.Helper()
	flags := []string{"--config", e.configPath, "--dump-file", e.dumpPath, "--log-level", "error"}
	opts = append([]contextOption{withController(e.controller)}, opts...)
	return runCLI(t, append(flags, args...), opts...)
}

func runCLI(t *testing.T, args []string, opts ...contextOption) (string, string, error) {
	t.Helper()
	cmd := newRootCommand(opts...)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	cmd.SetContext(context.Background())
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}

type stubController struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (s *stubController) record(call string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
	return s.err
}

func (s *stubController) SetDefaultSink(_ context.Context, sinkID int) error {
	return s.record(fmt.Sprintf("set-default %d", sinkID))
}

func (s *stubController) SetProfile(_ context.Context, cardID, profileIndex int) error {
	return s.record(fmt.Sprintf("set-profile %d %d", cardID, profileIndex))
}

func (s *stubController) SetVolume(_ context.Context, sinkID int, spec pipewire.VolumeSpec) error {
	return s.record(fmt.Sprintf("set-volume %d %s limit=%g", sinkID, spec.Arg(), spec.Limit))
}

func (s *stubController) SetMute(_ context.Context, sinkID int, action pipewire.MuteAction) error {
	return s.record(fmt.Sprintf("set-mute %d %s", sinkID, action.Arg()))
}

func (s *stubController) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func requireCalls(t *testing.T, controller *stubController, want ...string) {
	t.Helper()
	got := controller.Calls()
	if len(got) != len(want) {
		t.Fatalf("controller calls = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("controller calls = %q, want %q", got, want)
		}
	}
}
