package cli

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/matjam/scalableview/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scalableview")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$HOME/.config/scalableview")
		viper.AddConfigPath("/etc/xdg/scalableview")
	}

	config.SetDefaults(viper.GetViper())

	viper.AutomaticEnv() // read environment variables that match

	// running without a config file is fine, the defaults cover everything
	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		log.Debug("No config file found, using defaults")
		return
	}
	cobra.CheckErr(err)
}
