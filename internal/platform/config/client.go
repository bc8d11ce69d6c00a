package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/acta-build/acta-go/pkg/acta"
	dErrors "github.com/acta-build/acta-go/pkg/domain-errors"
)

const (
	envPrefix = "ACTA_"
	delimiter = "."
)

// Flag names shared by every actactl command.
const (
	FlagConfigFile = "config"
	FlagBaseURL    = "base-url"
	FlagAPIKey     = "api-key"
	FlagTimeout    = "timeout"
	FlagVerbosity  = "verbosity"
)

const defaultClientTimeout = 30 * time.Second

// Client has the actactl settings.
type Client struct {
	ConfigFile string        `koanf:"config"`
	BaseURL    string        `koanf:"base-url"`
	APIKey     string        `koanf:"api-key"`
	Timeout    time.Duration `koanf:"timeout"`
	Verbosity  string        `koanf:"verbosity"`
}

// DefaultClient returns the settings used when nothing else is configured.
func DefaultClient() Client {
	return Client{
		BaseURL:   acta.TestNetURL,
		Timeout:   defaultClientTimeout,
		Verbosity: "warn",
	}
}

// ClientFlagSet returns the persistent flags of actactl.
func ClientFlagSet() *pflag.FlagSet {
	defaults := DefaultClient()
	flagSet := pflag.NewFlagSet("actactl", pflag.ContinueOnError)
	flagSet.String(FlagConfigFile, "", "Path to a YAML config file.")
	flagSet.String(FlagBaseURL, defaults.BaseURL, "ACTA API base URL. URLs containing 'mainnet' target mainnet, anything else testnet.")
	flagSet.String(FlagAPIKey, "", "API key sent in the X-API-Key header.")
	flagSet.Duration(FlagTimeout, defaults.Timeout, "Deadline for each API call.")
	flagSet.String(FlagVerbosity, defaults.Verbosity, "Log level: debug, info, warn or error.")
	return flagSet
}

// LoadClient resolves the CLI settings. Precedence, lowest first: defaults,
// config file, ACTA_* environment variables, explicitly set flags.
func LoadClient(flags *pflag.FlagSet) (Client, error) {
	k := koanf.New(delimiter)

	if err := k.Load(structs.Provider(DefaultClient(), "koanf"), nil); err != nil {
		return Client{}, dErrors.Wrap(err, dErrors.CodeConfiguration, "failed to load defaults")
	}

	if err := loadFromFile(k, configFilePath(flags)); err != nil {
		return Client{}, err
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, delimiter, envKey), nil); err != nil {
		return Client{}, dErrors.Wrap(err, dErrors.CodeConfiguration, "failed to load environment")
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, delimiter, k), nil); err != nil {
			return Client{}, dErrors.Wrap(err, dErrors.CodeConfiguration, "failed to load flags")
		}
	}

	var cfg Client
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Client{}, dErrors.Wrap(err, dErrors.CodeConfiguration, "invalid configuration")
	}
	if cfg.Timeout <= 0 {
		return Client{}, dErrors.New(dErrors.CodeConfiguration, "timeout must be positive")
	}
	return cfg, nil
}

func configFilePath(flags *pflag.FlagSet) string {
	if flags != nil {
		if path, err := flags.GetString(FlagConfigFile); err == nil && path != "" {
			return path
		}
	}
	return os.Getenv(envPrefix + "CONFIG")
}

func loadFromFile(k *koanf.Koanf, path string) error {
	if path == "" {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return dErrors.Wrap(err, dErrors.CodeConfiguration, "config file not found: "+path)
		}
		return dErrors.Wrap(err, dErrors.CodeConfiguration, "failed to parse config file")
	}
	return nil
}

// envKey maps ACTA_BASE_URL to base-url.
func envKey(rawKey, rawValue string) (string, any) {
	key := strings.ToLower(strings.TrimPrefix(rawKey, envPrefix))
	return strings.ReplaceAll(key, "_", "-"), rawValue
}
