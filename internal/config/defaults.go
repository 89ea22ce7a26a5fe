package config

const (
	defaultPwDumpBinary   = "pw-dump"
	defaultWpctlBinary    = "wpctl"
	defaultTimeoutSeconds = 5
	defaultVolumeLimit    = 1.0
	defaultVolumeStep     = 0.05
	defaultColorMode      = ColorAuto
	defaultDebounceMS     = 250
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Color modes accepted by display.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			PwDump:         defaultPwDumpBinary,
			Wpctl:          defaultWpctlBinary,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Volume: Volume{
			Limit: defaultVolumeLimit,
			Step:  defaultVolumeStep,
		},
		Display: Display{
			ShowUnavailableProfiles: false,
			Color:                   defaultColorMode,
		},
		Watch: Watch{
			DebounceMS: defaultDebounceMS,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
