package cmd

import (
	"context"
	"fmt"

	"github.com/fiffeek/setdisplayresolution/internal/display"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the current mode of the primary display",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		platform, err := openPlatform(cfg, false)
		if err != nil {
			return err
		}
		controller := display.NewController(platform)
		defer func() {
			if err := controller.Close(); err != nil {
				logrus.WithError(err).Warn("Cant close the display backend")
			}
		}()

		current, err := controller.CurrentMode(context.Background())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), current.String())
		return err
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
}
