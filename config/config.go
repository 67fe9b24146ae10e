package config

import (
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SystemConfig struct {
	Workdir  string `yaml:"workdir" json:"workdir"`
	Location string `yaml:"location" json:"location"`
}

type WebConfig struct {
	Listen string `yaml:"listen" json:"listen"`
	Debug  bool   `yaml:"debug" json:"debug"`
}

type DatabaseConfig struct {
	Type    string `yaml:"type" json:"type"`
	DSN     string `yaml:"dsn" json:"dsn"`
	MaxConn int    `yaml:"max_conn" json:"max_conn"`
	Debug   bool   `yaml:"debug" json:"debug"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SystemConfig   `yaml:"system" json:"system"`
	Web      WebConfig      `yaml:"web" json:"web"`
	Database DatabaseConfig `yaml:"database" json:"database"`
	Logger   LoggerConfig   `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = AppConfig{
	System: SystemConfig{
		Workdir:  "/var/catalogd",
		Location: "Local",
	},
	Web: WebConfig{
		Listen: ":8080",
	},
	Database: DatabaseConfig{
		Type:    "postgres",
		DSN:     "host=127.0.0.1 user=postgres password=postgres dbname=catalogd port=5432 sslmode=disable",
		MaxConn: 100,
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "catalogd.log",
	},
}

// LoadConfig reads the YAML configuration file at path, falling back to the
// defaults for anything not set, and finally applies CATALOGD_* environment
// overrides. A missing file is not an error; the defaults apply.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultAppConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, err
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	setEnvString(&cfg.System.Workdir, "CATALOGD_SYSTEM_WORKDIR")
	setEnvString(&cfg.Web.Listen, "CATALOGD_WEB_LISTEN")
	setEnvBool(&cfg.Web.Debug, "CATALOGD_WEB_DEBUG")
	setEnvString(&cfg.Database.Type, "CATALOGD_DB_TYPE")
	setEnvString(&cfg.Database.DSN, "CATALOGD_DB_DSN")
	setEnvInt(&cfg.Database.MaxConn, "CATALOGD_DB_MAX_CONN")
	setEnvBool(&cfg.Database.Debug, "CATALOGD_DB_DEBUG")
	setEnvString(&cfg.Logger.Mode, "CATALOGD_LOGGER_MODE")
	setEnvBool(&cfg.Logger.FileEnable, "CATALOGD_LOGGER_FILE_ENABLE")
	setEnvString(&cfg.Logger.Filename, "CATALOGD_LOGGER_FILENAME")
}

func setEnvString(target *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*target = v
	}
}

func setEnvBool(target *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*target = cast.ToBool(v)
	}
}

func setEnvInt(target *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*target = cast.ToInt(v)
	}
}
