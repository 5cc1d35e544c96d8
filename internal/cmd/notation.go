package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/younwookim/fightstick/internal/domain/input"
	"github.com/younwookim/fightstick/internal/domain/motion"
	"github.com/younwookim/fightstick/internal/domain/notation"
)

var parseCmd = &cobra.Command{
	Use:   "parse <notation>...",
	Short: "Parse numpad notation into inputs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var expandCmd = &cobra.Command{
	Use:   "expand <notation>",
	Short: "Print a frame sequence that performs the notation",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpand,
}

func init() {
	expandCmd.Flags().Int("hold", 2, "Frames per motion step")
	expandCmd.Flags().String("facing", "right", "Side the character faces: left or right")
}

func runParse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, text := range args {
		in, err := notation.ParseAll(text)
		if err != nil {
			slog.Error("invalid notation", "text", text, "error", err)
			failed++
			continue
		}
		fmt.Fprintf(out, "%s\t%v\n", text, in)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d notations invalid", failed, len(args))
	}
	return nil
}

func runExpand(cmd *cobra.Command, args []string) error {
	hold, _ := cmd.Flags().GetInt("hold")
	facingName, _ := cmd.Flags().GetString("facing")

	facing, err := motion.ParseFacing(facingName)
	if err != nil {
		return err
	}
	in, err := notation.ParseAll(args[0])
	if err != nil {
		return err
	}

	frames := notation.ExpandFacing(in, hold, facing)
	slog.Debug("expanded", "input", in, "frames", len(frames), "facing", facing)

	out := cmd.OutOrStdout()
	for i, f := range frames {
		fmt.Fprintf(out, "%3d  %s\n", i, frameLabel(f))
	}
	return nil
}

// frameLabel renders a frame as its numpad digit followed by the buttons pressed on it
func frameLabel(f input.Frame) string {
	return string(f.Axis.Numpad()) + f.JustPressed().String()
}

// formatInputs renders recognized inputs in notation, highest priority first
func formatInputs(inputs []motion.Input) string {
	parts := make([]string, 0, len(inputs))
	for _, in := range inputs {
		parts = append(parts, notation.Format(in))
	}
	return strings.Join(parts, " ")
}
