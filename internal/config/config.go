package config

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/atomicstack/tmux-tab-switcher/internal/app"
	"github.com/atomicstack/tmux-tab-switcher/internal/ui/state"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSocketPath = "TMUX_TAB_SWITCHER_SOCKET"
	envWidth      = "TMUX_TAB_SWITCHER_WIDTH"
	envHeight     = "TMUX_TAB_SWITCHER_HEIGHT"
	envShowFooter = "TMUX_TAB_SWITCHER_FOOTER"
	envTrace      = "TMUX_TAB_SWITCHER_TRACE"
	envLogFile    = "TMUX_TAB_SWITCHER_LOG_FILE"
	envConfigFile = "TMUX_TAB_SWITCHER_CONFIG"
	envIgnoreCase = "TMUX_TAB_SWITCHER_IGNORE_CASE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tmux-tab-switcher", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "show a key hint footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	configFile := fs.String("config", envOrDefault(env, envConfigFile, ""), "path to a YAML file of switcher options")
	overrides := optionFlag{}
	fs.Var(overrides, "option", "switcher option as key=value (repeatable)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	options, err := loadOptions(*configFile, env, overrides)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			SocketPath: *socket,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Options:    options,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"socket":  *socket,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
			"config":  *configFile,
			"option":  overrides.String(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// loadOptions merges switcher options. Later sources win: the YAML file, then
// the environment, then --option flags.
func loadOptions(path string, env map[string]string, overrides map[string]string) (map[string]string, error) {
	options := map[string]string{}
	if strings.TrimSpace(path) != "" {
		fromFile, err := LoadOptionsFile(path)
		if err != nil {
			return nil, err
		}
		maps.Copy(options, fromFile)
	}
	if v, ok := env[envIgnoreCase]; ok && strings.TrimSpace(v) != "" {
		options[state.OptionIgnoreCase] = v
	}
	maps.Copy(options, overrides)
	return options, nil
}

// LoadOptionsFile reads a flat YAML mapping of option names to scalar values.
func LoadOptionsFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	options := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			continue
		case map[string]interface{}, map[interface{}]interface{}, []interface{}:
			return nil, fmt.Errorf("option %q in %s must be a scalar", key, path)
		default:
			options[key] = fmt.Sprint(v)
		}
	}
	return options, nil
}

// optionFlag collects repeated --option key=value arguments.
type optionFlag map[string]string

func (o optionFlag) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+o[k])
	}
	return strings.Join(parts, ",")
}

func (o optionFlag) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("option %q must be key=value", value)
	}
	o[key] = val
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 || cfg.App.Height < 0 {
		return fmt.Errorf("viewport size must be >= 0 (got %dx%d)", cfg.App.Width, cfg.App.Height)
	}
	return nil
}
