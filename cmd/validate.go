package cmd

import (
	"github.com/fiffeek/setdisplayresolution/internal/config"
	"github.com/fiffeek/setdisplayresolution/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long:  `Validate the configuration file for syntax errors and invalid values.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logrus.WithField("config_path", configPath).Debug("Validating configuration")

		cfg, err := config.NewConfig(configPath, cmd.Flags().Changed("config"))
		if err != nil {
			utils.PrettyPrintError(cmd.ErrOrStderr(), err)
			logrus.Fatal("Configuration validation failed")
			return
		}

		logrus.WithField("config_path", cfg.ConfigPath()).Info("Configuration is valid")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
