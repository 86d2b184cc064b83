// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ik5/murmur/catalog"
)

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "List the sound library",
	Long: `List the sounds available to your tier.

With --all, premium sounds are listed too and marked with a star.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		all, _ := cmd.Flags().GetBool("all")

		tracks := cur.tracks
		if all {
			var err error
			if tracks, err = cur.app.Catalog().All(cmd.Context()); err != nil {
				return err
			}
		}
		printTracks(tracks)
		return nil
	},
}

func init() {
	soundsCmd.Flags().Bool("all", false, "include premium sounds")
}

func printTracks(tracks []catalog.Track) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tDESCRIPTION")
	for _, t := range tracks {
		name := t.Name
		if t.Premium {
			name += " *"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, name, t.Category, t.Description)
	}
}
