package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/pyspan/pyspan/internal/core"
)

// ConfigFileName is the name of the pyspan configuration file.
const ConfigFileName = ".pyspan.yaml"

// DefaultHost is the interpreter version assumed to have produced AST
// dumps when neither the config file nor the --host flag says otherwise.
const DefaultHost = "3.13"

// Config is the main configuration structure for pyspan.
type Config struct {
	// Host is the version of the interpreter that parsed the analyzed
	// sources. It provides the default ceiling of reported spans.
	Host string `yaml:"host,omitempty"`

	// Format is the default output format: "text" or "json".
	Format string `yaml:"format,omitempty"`

	// Theme selects the prompt theme for interactive sessions.
	Theme string `yaml:"theme,omitempty"`

	// Paths lists the roots scanned for AST dumps when a command is run
	// without file arguments.
	Paths []string `yaml:"paths,omitempty"`
}

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// FileWriter abstracts file writing operations for testability.
type FileWriter interface {
	WriteFile(file *os.File, data []byte) (int, error)
}

// ConfigSaver handles configuration saving with injected dependencies.
type ConfigSaver struct {
	marshaler  core.Marshaler
	fileOpener FileOpener
	fileWriter FileWriter
}

// osFileOpener is the production implementation of FileOpener.
type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// osFileWriter is the production implementation of FileWriter.
type osFileWriter struct{}

func (w *osFileWriter) WriteFile(file *os.File, data []byte) (int, error) {
	return file.Write(data)
}

// yamlMarshaler is the production implementation of core.Marshaler using YAML.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// NewConfigSaver creates a ConfigSaver with the given dependencies.
// If any dependency is nil, the production default is used.
func NewConfigSaver(marshaler core.Marshaler, opener FileOpener, writer FileWriter) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if opener == nil {
		opener = &osFileOpener{}
	}
	if writer == nil {
		writer = &osFileWriter{}
	}
	return &ConfigSaver{
		marshaler:  marshaler,
		fileOpener: opener,
		fileWriter: writer,
	}
}

// Save saves the configuration to the default config file.
func (s *ConfigSaver) Save(cfg *Config) error {
	return s.SaveTo(cfg, ConfigFileName)
}

// SaveTo saves the configuration to the specified file path.
func (s *ConfigSaver) SaveTo(cfg *Config, configFile string) error {
	file, err := s.fileOpener.OpenFile(configFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, core.PermOwnerRW)
	if err != nil {
		return fmt.Errorf("failed to open config file %q: %w", configFile, err)
	}
	defer file.Close()

	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	if _, err := s.fileWriter.WriteFile(file, data); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}

// defaultConfigSaver is the default ConfigSaver instance.
var defaultConfigSaver = NewConfigSaver(nil, nil, nil)

// LoadConfigFn and SaveConfigFn are function variables so commands and
// tests can substitute loading and saving behavior.
var (
	LoadConfigFn = loadConfig
	SaveConfigFn = func(cfg *Config) error {
		return defaultConfigSaver.Save(cfg)
	}
)

func loadConfig() (*Config, error) {
	data, err := os.ReadFile(ConfigFileName)
	if err != nil {
		if os.IsNotExist(err) {
			return applyDefaults(&Config{}), nil
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	return applyDefaults(&cfg), nil
}

// applyDefaults fills unset fields. The PYSPAN_HOST environment variable
// takes priority over both the file and the built-in default.
func applyDefaults(cfg *Config) *Config {
	if envHost := os.Getenv("PYSPAN_HOST"); envHost != "" {
		cfg.Host = envHost
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	return cfg
}
