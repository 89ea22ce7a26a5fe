package pipewire

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"pwquick/internal/logging"
	"pwquick/internal/pwdump"
	"pwquick/internal/services"
)

const (
	DefaultDumpBinary  = "pw-dump"
	DefaultWpctlBinary = "wpctl"
)

// Source produces a fresh dump of the graph on every call.
type Source interface {
	Acquire(ctx context.Context) (pwdump.Dump, error)
}

// Controller issues mutations against live object ids.
type Controller interface {
	SetDefaultSink(ctx context.Context, sinkID int) error
	SetProfile(ctx context.Context, cardID, profileIndex int) error
	SetVolume(ctx context.Context, sinkID int, spec VolumeSpec) error
	SetMute(ctx context.Context, sinkID int, action MuteAction) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithLogger attaches a logger for command tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logging.NewComponentLogger(logger, "pipewire")
		}
	}
}

// Client wraps pw-dump and wpctl interactions.
type Client struct {
	dumpBinary  string
	wpctlBinary string
	timeout     time.Duration
	exec        Executor
	logger      *slog.Logger
}

// New constructs a client. Blank binaries fall back to the tool names on PATH;
// a non-positive timeout disables the per-call deadline.
func New(dumpBinary, wpctlBinary string, timeoutSeconds int, opts ...Option) *Client {
	dumpBinary = strings.TrimSpace(dumpBinary)
	if dumpBinary == "" {
		dumpBinary = DefaultDumpBinary
	}
	wpctlBinary = strings.TrimSpace(wpctlBinary)
	if wpctlBinary == "" {
		wpctlBinary = DefaultWpctlBinary
	}
	client := &Client{
		dumpBinary:  dumpBinary,
		wpctlBinary: wpctlBinary,
		timeout:     time.Duration(timeoutSeconds) * time.Second,
		exec:        commandExecutor{},
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Acquire runs pw-dump and decodes its output. Any process or decode failure is
// reported as services.ErrSourceUnavailable.
func (c *Client) Acquire(ctx context.Context) (pwdump.Dump, error) {
	output, err := c.run(ctx, c.dumpBinary, nil)
	if err != nil {
		return nil, services.Wrap(services.ErrSourceUnavailable, c.dumpBinary, "acquire", "run failed", err)
	}
	dump, err := pwdump.Decode(output)
	if err != nil {
		return nil, services.Wrap(services.ErrSourceUnavailable, c.dumpBinary, "acquire", "decode output", err)
	}
	c.logger.Debug("graph acquired",
		logging.Int("objects", len(dump)),
		logging.Int("output_bytes", len(output)),
	)
	return dump, nil
}

// SetDefaultSink makes sinkID the default audio output.
func (c *Client) SetDefaultSink(ctx context.Context, sinkID int) error {
	return c.wpctl(ctx, "set-default", strconv.Itoa(sinkID))
}

// SetProfile switches cardID to the profile with the given index.
func (c *Client) SetProfile(ctx context.Context, cardID, profileIndex int) error {
	return c.wpctl(ctx, "set-profile", strconv.Itoa(cardID), strconv.Itoa(profileIndex))
}

// SetVolume applies an absolute or relative volume change. Increases are
// capped at VolumeSpec.Limit when it is positive.
func (c *Client) SetVolume(ctx context.Context, sinkID int, spec VolumeSpec) error {
	args := []string{"set-volume"}
	if spec.Limit > 0 {
		args = append(args, "-l", formatFloat(spec.Limit))
	}
	args = append(args, strconv.Itoa(sinkID), spec.Arg())
	return c.wpctl(ctx, args...)
}

// SetMute mutes, unmutes or toggles sinkID.
func (c *Client) SetMute(ctx context.Context, sinkID int, action MuteAction) error {
	return c.wpctl(ctx, "set-mute", strconv.Itoa(sinkID), action.Arg())
}

func (c *Client) wpctl(ctx context.Context, args ...string) error {
	if _, err := c.run(ctx, c.wpctlBinary, args); err != nil {
		operation := ""
		if len(args) > 0 {
			operation = args[0]
		}
		return services.Wrap(services.ErrExternalTool, c.wpctlBinary, operation, "", err)
	}
	return nil
}

func (c *Client) run(ctx context.Context, binary string, args []string) ([]byte, error) {
	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	logger := logging.WithContext(ctx, c.logger)
	started := time.Now()
	logger.Debug("running command",
		logging.String("tool", binary),
		logging.String("args", strings.Join(args, " ")),
	)
	output, err := c.exec.Run(runCtx, binary, args)
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return output, fmt.Errorf("%w after %s: %w", services.ErrTimeout, c.timeout, err)
		}
		return output, err
	}
	logger.Debug("command finished",
		logging.String("tool", binary),
		logging.Duration("elapsed", time.Since(started)),
	)
	return output, nil
}
