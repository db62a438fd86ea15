package cmd

import (
	"context"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fiffeek/setdisplayresolution/internal/display"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var noColor bool

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the display modes of the primary display",
	Long:  `List every mode the primary display supports in enumeration order. The current mode is marked with *.`,
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

		ctx := context.Background()
		current, err := controller.CurrentMode(ctx)
		if err != nil {
			return err
		}
		return renderModes(cmd.OutOrStdout(), current, controller.AvailableModes(ctx), noColor)
	},
}

func renderModes(w io.Writer, current display.Mode, modes iter.Seq2[display.Mode, error], noColor bool) error {
	renderer := lipgloss.NewRenderer(w)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	headerStyle := renderer.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := renderer.NewStyle().Padding(0, 1)
	currentStyle := cellStyle.Foreground(lipgloss.Color("10")).Bold(true)

	rows := [][]string{}
	currentRow := -1
	for mode, err := range modes {
		if err != nil {
			return fmt.Errorf("cant list modes: %w", err)
		}
		marker := ""
		if currentRow < 0 && mode.Equal(current) {
			marker = "*"
			currentRow = len(rows)
		}
		rows = append(rows, []string{
			marker,
			strconv.Itoa(len(rows)),
			mode.Resolution(),
			strconv.Itoa(mode.RefreshRate) + "Hz",
			strconv.Itoa(mode.BitsPerPixel),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(renderer.NewStyle().Faint(true)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return headerStyle
			case currentRow:
				return currentStyle
			default:
				return cellStyle
			}
		}).
		Headers("", "#", "RESOLUTION", "REFRESH", "BPP").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func init() {
	rootCmd.AddCommand(modesCmd)
	modesCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colors in the output")
}
