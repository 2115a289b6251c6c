package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/on-the-ground/recipes_go/seqs"
	"github.com/on-the-ground/recipes_go/shared/logctx"
)

// followCommand runs the one live recipe: tail a growing file until the
// command's context is canceled.
func (c *CLI) followCommand() *cobra.Command {
	var every time.Duration
	cmd := &cobra.Command{
		Use:   "follow <file>",
		Short: "Print lines as they are appended to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logctx.WithLogger(cmd.Context(), c.logger)
			for line, err := range seqs.Follow(ctx, args[0], every) {
				if err != nil {
					return err
				}
				c.println(line)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&every, "every", 500*time.Millisecond, "poll interval between read attempts")
	return cmd
}
