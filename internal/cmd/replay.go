package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/younwookim/fightstick/internal/application/replay"
	"github.com/younwookim/fightstick/internal/domain/input"
	"github.com/younwookim/fightstick/internal/domain/motion"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Run a recorded session through the interpreter",
	Long: `Feeds every recorded frame through the frame history and the motion
interpreter, printing the frames where something other than idle was recognized.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().Int("buffer", 8, "Frames to look back for a button press")
	replayCmd.Flags().Int("grace", 3, "Frames over which presses merge")
	replayCmd.Flags().Int("motion", 8, "Max frames per motion step")
	replayCmd.Flags().Int("capacity", 32, "Frame history capacity")
	replayCmd.Flags().Bool("all", false, "Print every frame, including idle ones")
}

func runReplay(cmd *cobra.Command, args []string) error {
	buffer, _ := cmd.Flags().GetInt("buffer")
	grace, _ := cmd.Flags().GetInt("grace")
	motionSize, _ := cmd.Flags().GetInt("motion")
	capacity, _ := cmd.Flags().GetInt("capacity")
	all, _ := cmd.Flags().GetBool("all")

	interpreter, err := motion.NewInterpreter(motion.Config{
		BufferSize:  buffer,
		GracePeriod: grace,
		MotionSize:  motionSize,
	})
	if err != nil {
		return err
	}

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}
	facing := motion.FacingRight
	if data.FacingLeft {
		facing = motion.FacingLeft
	}
	slog.Info("replaying session", "id", data.ID, "character", data.Character, "facing", facing, "frames", len(data.Frames))

	history := input.NewHistory(capacity)
	replayer := replay.NewReplayer(*data)
	out := cmd.OutOrStdout()
	recognized := 0
	for {
		raw, ok := replayer.GetInput()
		if !ok {
			break
		}
		f := history.Push(raw)
		inputs := interpreter.Interpret(facing, history.Frames())
		if len(inputs) == 0 {
			continue
		}
		if _, idle := inputs[0].(motion.Idle); idle && !all {
			continue
		}
		recognized++
		fmt.Fprintf(out, "%5d  %-4s %s\n", replayer.CurrentFrame()-1, frameLabel(f), formatInputs(inputs))
	}

	slog.Debug("replay done", "recognized", recognized)
	return nil
}
