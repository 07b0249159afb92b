package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultLogLevel  = "info"
	defaultConfigDir = ".fichero"
	dataFilename     = "fichero.db"
	exportDirname    = "exports"
)

type Config struct {
	Env       string `mapstructure:"app_env"`
	LogLevel  string `mapstructure:"log_level"`
	ConfigDir string `mapstructure:"config_dir"`
	DataPath  string `mapstructure:"data_path"`
	ExportDir string `mapstructure:"export_dir"`
}

// MustLoad reads the environment (plus an optional .env file) and resolves the
// data paths under the user's home directory.
func MustLoad() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("No se pudo cargar el archivo .env: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		fmt.Printf("No se pudo crear el directorio de configuración: %v\n", err)
	}

	exportDir := viper.GetString("EXPORT_DIR")
	if exportDir == "" {
		exportDir = filepath.Join(configDir, exportDirname)
	}

	config := &Config{
		Env:       viper.GetString("APP_ENV"),
		LogLevel:  viper.GetString("LOG_LEVEL"),
		ConfigDir: configDir,
		DataPath:  filepath.Join(configDir, dataFilename),
		ExportDir: exportDir,
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("Error de configuración: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("data_path no puede estar vacío")
	}
	if c.ExportDir == "" {
		return fmt.Errorf("export_dir no puede estar vacío")
	}
	return nil
}

func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
