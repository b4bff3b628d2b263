package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/vladislavmarkov/data-registry/internal/gen"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyDataDir      = "data_dir"
	cfgKeyColor        = "color"
	cfgKeyGenPackage   = "gen.package"
	cfgKeyGenValueType = "gen.value_type"
	cfgKeyGenOutDir    = "gen.out_dir"
)

// configFile is the structure written to config.yaml by init.
type configFile struct {
	DataDir string    `yaml:"data_dir,omitempty"`
	Color   string    `yaml:"color"`
	Gen     genConfig `yaml:"gen"`
}

type genConfig struct {
	Package   string `yaml:"package"`
	ValueType string `yaml:"value_type"`
	OutDir    string `yaml:"out_dir"`
}

func defaultConfig() configFile {
	return configFile{
		Color: "auto",
		Gen: genConfig{
			Package:   gen.DefaultPackage,
			ValueType: gen.DefaultValueType,
			OutDir:    ".",
		},
	}
}

// loadConfig reads config.yaml from configDir. A missing file is not an
// error; the defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	def := defaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyColor, def.Color)
	v.SetDefault(cfgKeyGenPackage, def.Gen.Package)
	v.SetDefault(cfgKeyGenValueType, def.Gen.ValueType)
	v.SetDefault(cfgKeyGenOutDir, def.Gen.OutDir)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
