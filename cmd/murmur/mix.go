// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/murmur/store"
)

var mixCmd = &cobra.Command{
	Use:   "mix",
	Short: "Manage saved mixes",
}

var mixSaveCmd = &cobra.Command{
	Use:   "save <name> <sound-id>...",
	Short: "Save a mix of sounds",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		for _, arg := range args[1:] {
			id, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("sound id %q: %w", arg, err)
			}
			out, err := cur.app.Toggle(ctx, id)
			printOutcome(arg, out, err)
		}

		m, err := cur.app.SaveMix(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("saved %q as %s\n", m.Name, m.ID)
		return nil
	},
}

var mixListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved mixes, most recently used first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		favOnly, _ := cmd.Flags().GetBool("fav")

		var (
			mixes []store.Mix
			err   error
		)
		if favOnly {
			mixes, err = cur.app.FavoriteMixes(cmd.Context())
		} else {
			mixes, err = cur.app.Mixes(cmd.Context())
		}
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		defer w.Flush()
		fmt.Fprintln(w, "ID\tNAME\tSOUNDS\tFAV\tLAST USED")
		for _, m := range mixes {
			fav := ""
			if m.Favorite {
				fav = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				m.ID, m.Name, store.FormatSoundIDs(m.SoundIDs), fav, m.LastUsed.Local().Format(time.DateTime))
		}
		return nil
	},
}

var mixPlayCmd = &cobra.Command{
	Use:   "play <mix-id>",
	Short: "Play a saved mix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		timer, _ := cmd.Flags().GetDuration("timer")
		d, _ := cmd.Flags().GetDuration("for")

		results, err := cur.app.PlayMix(ctx, args[0])
		if err != nil {
			return err
		}
		for _, r := range results {
			printOutcome(strconv.Itoa(r.ID), r.Outcome, r.Err)
		}
		if len(cur.app.Active()) == 0 {
			return nil
		}

		if timer > 0 {
			if err := cur.app.StartTimerFor(timer); err != nil {
				return err
			}
		}
		return listen(ctx, d)
	},
}

var mixFavCmd = &cobra.Command{
	Use:   "fav <mix-id>",
	Short: "Toggle the favorite mark of a mix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := cur.app.ToggleFavorite(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s favorite: %v\n", m.Name, m.Favorite)
		return nil
	},
}

var mixDeleteCmd = &cobra.Command{
	Use:   "delete <mix-id>",
	Short: "Delete a mix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cur.app.DeleteMix(cmd.Context(), args[0])
	},
}

func init() {
	mixListCmd.Flags().Bool("fav", false, "favorites only")
	mixPlayCmd.Flags().Duration("timer", 0, "stop everything after this long")
	mixPlayCmd.Flags().Duration("for", 0, "exit after this long (0 plays until interrupted)")

	mixCmd.AddCommand(mixSaveCmd, mixListCmd, mixPlayCmd, mixFavCmd, mixDeleteCmd)
}
