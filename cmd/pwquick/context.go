package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"pwquick/internal/audiograph"
	"pwquick/internal/config"
	"pwquick/internal/logging"
	"pwquick/internal/services"
	"pwquick/internal/services/pipewire"
)

type rootFlags struct {
	config   string
	dumpFile string
	json     bool
	logLevel string
}

type commandContext struct {
	flags *rootFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	sessionID  string

	clientOnce sync.Once
	client     *pipewire.Client

	sourceOverride     pipewire.Source
	controllerOverride pipewire.Controller
	prompterOverride   prompter
	monitorFactory     monitorFactory
}

type contextOption func(*commandContext)

// withSource replaces pw-dump as the graph source.
func withSource(source pipewire.Source) contextOption {
	return func(c *commandContext) { c.sourceOverride = source }
}

// withController replaces wpctl as the mutation target.
func withController(controller pipewire.Controller) contextOption {
	return func(c *commandContext) { c.controllerOverride = controller }
}

func withPrompter(p prompter) contextOption {
	return func(c *commandContext) { c.prompterOverride = p }
}

func withMonitorFactory(f monitorFactory) contextOption {
	return func(c *commandContext) { c.monitorFactory = f }
}

func newCommandContext(flags *rootFlags, opts ...contextOption) *commandContext {
	ctx := &commandContext{
		flags:     flags,
		sessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := strings.TrimSpace(c.flags.config)
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "load", "", err)
			return
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
			if err := cfg.Validate(); err != nil {
				c.configErr = services.Wrap(services.ErrConfiguration, "config", "--log-level", "", err)
				return
			}
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

// configValue returns the loaded config or repository defaults when loading
// was skipped for the running command.
func (c *commandContext) configValue() *config.Config {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		def := config.Default()
		return &def
	}
	return cfg
}

func (c *commandContext) baseLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		logger, err := logging.NewFromConfig(c.configValue(), c.sessionID)
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) loggerFor(command string) *slog.Logger {
	return logging.NewComponentLogger(c.baseLogger(), "cli").With(logging.String(logging.FieldCommand, command))
}

func (c *commandContext) pipewireClient() *pipewire.Client {
	c.clientOnce.Do(func() {
		cfg := c.configValue()
		c.client = pipewire.New(cfg.Tools.PwDump, cfg.Tools.Wpctl, cfg.Tools.TimeoutSeconds, pipewire.WithLogger(c.baseLogger()))
	})
	return c.client
}

func (c *commandContext) source() pipewire.Source {
	if c.sourceOverride != nil {
		return c.sourceOverride
	}
	if path := strings.TrimSpace(c.flags.dumpFile); path != "" {
		if expanded, err := config.ExpandPath(path); err == nil {
			path = expanded
		}
		return pipewire.FileSource{Path: path}
	}
	return c.pipewireClient()
}

func (c *commandContext) controller() pipewire.Controller {
	if c.controllerOverride != nil {
		return c.controllerOverride
	}
	return c.pipewireClient()
}

// snapshot acquires a fresh graph and builds a snapshot from it.
func (c *commandContext) snapshot(ctx context.Context) (*audiograph.Snapshot, error) {
	dump, err := c.source().Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return audiograph.Build(dump), nil
}

func (c *commandContext) jsonOutput() bool {
	return c.flags != nil && c.flags.json
}

func commandScope(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return services.WithCommand(ctx, cmd.Name())
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func optionalInt(value *int) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprint(*value)
}
