package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the application configuration.
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Business BusinessConfig `toml:"business"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig holds data locations.
type DataConfig struct {
	DataDir        string `toml:"data_dir"`
	CSVPath        string `toml:"csv_path"`         // optional seed file imported on startup
	RefreshOnStart bool   `toml:"refresh_on_start"` // build the first snapshot at boot
}

// BusinessConfig holds the domain settings: the fixed starting year of the
// all-time window, the three disjoint nop code sets, and the invoice-company
// id-to-name labels. Company ids are stored as strings because TOML only
// allows string map keys; CompanyNames converts them back.
type BusinessConfig struct {
	StartingYear   int               `toml:"starting_year"`
	SaleNops       []string          `toml:"sale_nops"`
	TrousseauNops  []string          `toml:"trousseau_nops"`
	SubsidizedNops []string          `toml:"subsidized_nops"`
	Companies      map[string]string `toml:"companies"`
}

// DefaultConfig is the configuration used when config.toml is absent.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20805,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:        "data",
			RefreshOnStart: true,
		},
		Business: BusinessConfig{
			StartingYear:   2022,
			SaleNops:       []string{"6.102", "6.404", "VENDA"},
			TrousseauNops:  []string{"ENXOVAL"},
			SubsidizedNops: []string{"BONIFICADO"},
			Companies: map[string]string{
				"1": "KAMI CO",
				"2": "KAMI RJ",
				"3": "KAMI SP",
			},
		},
	}
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig reads config.toml next to the executable, falling back to
// defaults when the file is missing. Environment variables override the
// supplier paths for local runs.
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(config)
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	applyEnvOverrides(config)
	return config, nil
}

func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("SALESDASH_CSV_PATH"); v != "" {
		config.Data.CSVPath = v
	}
	if v := os.Getenv("SALESDASH_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
}

// SaveConfig writes the configuration back to config.toml.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir creates the data directory and its subdirectories next to
// the executable and returns its path.
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	for _, subdir := range []string{"uploads", "exports"} {
		if err := os.MkdirAll(filepath.Join(dataDir, subdir), 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}

// CodeSetLists returns the configured nop code lists in classifier order:
// sale, trousseau, subsidized.
func (b BusinessConfig) CodeSetLists() ([]string, []string, []string) {
	return b.SaleNops, b.TrousseauNops, b.SubsidizedNops
}

// CompanyNames converts the configured company labels into the int-keyed map
// the option builder consumes. Non-numeric ids are dropped.
func (b BusinessConfig) CompanyNames() map[int]string {
	names := make(map[int]string, len(b.Companies))
	for key, name := range b.Companies {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		names[id] = name
	}
	return names
}
