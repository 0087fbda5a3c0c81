// Package settings loads the CLI's YAML/env configuration into a Raw
// value (which the CLI then translates into the watermark codec's
// Config), using spf13/viper the same way the retrieval
// pack's DMR gateway project loads its server configuration.
package settings

import (
	"fmt"

	"github.com/spf13/viper"
)

// Raw is the on-disk/environment shape of the codec's tunable
// parameters, unmarshaled by viper before translation into the root
// package's immutable Config.
type Raw struct {
	K             int     `mapstructure:"k"`
	Delta         float64 `mapstructure:"delta"`
	Alpha         float64 `mapstructure:"alpha"`
	DCTPairRow    int     `mapstructure:"dct_pair_row"`
	DCTPairCol    int     `mapstructure:"dct_pair_col"`
	SyncFrequency float64 `mapstructure:"sync_frequency"`
	SyncAngle     float64 `mapstructure:"sync_angle"`
	SyncStrength  float64 `mapstructure:"sync_strength"`
	SyncPatch     int     `mapstructure:"sync_patch_radius"`
	ORBFeatures   int     `mapstructure:"orb_nfeatures"`
	ORBScale      float64 `mapstructure:"orb_scale_factor"`
	ORBLevels     int     `mapstructure:"orb_nlevels"`
	LogLevel      string  `mapstructure:"log_level"`
}

// Load reads configFile when it is non-empty (a missing file is an
// error); otherwise it reads a "config.yaml" from the current directory
// or /etc/blindmark if one exists. It layers BLINDMARK_-prefixed
// environment variables on top, and returns the merged Raw settings.
func Load(configFile string) (Raw, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/blindmark")
	}

	v.SetEnvPrefix("BLINDMARK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Raw{}, fmt.Errorf("settings: read config: %w", err)
		}
	}

	var raw Raw
	if err := v.Unmarshal(&raw); err != nil {
		return Raw{}, fmt.Errorf("settings: unmarshal: %w", err)
	}
	return raw, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("k", 30)
	v.SetDefault("delta", 10.0)
	v.SetDefault("alpha", 1.0)
	v.SetDefault("dct_pair_row", 3)
	v.SetDefault("dct_pair_col", 1)
	v.SetDefault("sync_frequency", 0.25)
	v.SetDefault("sync_angle", 15.0)
	v.SetDefault("sync_strength", 2.0)
	v.SetDefault("sync_patch_radius", 2)
	v.SetDefault("orb_nfeatures", 5000)
	v.SetDefault("orb_scale_factor", 1.2)
	v.SetDefault("orb_nlevels", 8)
	v.SetDefault("log_level", "info")
}
