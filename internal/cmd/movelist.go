package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/younwookim/fightstick/internal/domain/motion"
	"github.com/younwookim/fightstick/internal/domain/notation"
	"github.com/younwookim/fightstick/internal/infrastructure/config"
)

var movelistCmd = &cobra.Command{
	Use:   "movelist <file>",
	Short: "Check a move list file and print its compiled moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runMoveList,
}

func runMoveList(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read move list: %w", err)
	}
	cfg, err := config.ParseMoveList(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d moves)\n", cfg.Character, len(cfg.Moves))

	failed := 0
	first := make(map[motion.Input]string)
	for _, mv := range cfg.Moves {
		in, err := notation.ParseAll(mv.Input)
		if err != nil {
			slog.Error("invalid move input", "move", mv.Name, "input", mv.Input, "error", err)
			failed++
			continue
		}
		// Earlier entries win on the same input
		if prev, ok := first[in]; ok {
			slog.Warn("move is shadowed by an earlier entry", "move", mv.Name, "by", prev, "input", notation.Format(in))
		} else {
			first[in] = mv.Name
		}
		fmt.Fprintf(out, "  %-24s %-6s %v\n", mv.Name, notation.Format(in), in)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d moves invalid", failed, len(cfg.Moves))
	}
	return nil
}
