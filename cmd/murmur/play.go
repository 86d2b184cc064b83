// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <sound-id>...",
	Short: "Play sounds",
	Long: `Start the given sounds and play them until interrupted.

Free users can play three sounds at once; extra sounds are reported as
limit-reached and skipped.

Example:
  # Rain and ocean for an hour, fading out after 45 minutes
  murmur play 1 2 --for 1h --timer 45m`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		timer, _ := cmd.Flags().GetDuration("timer")
		d, _ := cmd.Flags().GetDuration("for")

		for _, arg := range args {
			id, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("sound id %q: %w", arg, err)
			}
			out, err := cur.app.Toggle(ctx, id)
			printOutcome(arg, out, err)
		}
		if len(cur.app.Active()) == 0 {
			return nil
		}

		if timer > 0 {
			if err := cur.app.StartTimerFor(timer); err != nil {
				return err
			}
			fmt.Printf("sleep timer set for %s\n", timer)
		}
		return listen(ctx, d)
	},
}

func init() {
	playCmd.Flags().Duration("timer", 0, "stop everything after this long")
	playCmd.Flags().Duration("for", 0, "exit after this long (0 plays until interrupted)")
}
