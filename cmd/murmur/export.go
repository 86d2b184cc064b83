// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <mix-id> <out.wav>",
	Short: "Render a saved mix to a mono WAV file",
	Long: `Render a saved mix to a mono 16-bit WAV file. Requires premium.

The mix is rendered offline; nothing is played on the device.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, _ := cmd.Flags().GetDuration("for")
		rate, _ := cmd.Flags().GetInt("out-rate")

		results, err := cur.app.PlayMix(ctx, args[0])
		if err != nil {
			return err
		}
		for _, r := range results {
			printOutcome(strconv.Itoa(r.ID), r.Outcome, r.Err)
		}
		cur.app.Wait()

		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		if err := cur.app.ExportMix(ctx, f, cur.bus, d, rate); err != nil {
			_ = f.Close()
			_ = os.Remove(args[1])
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", args[1])
		return nil
	},
}

func init() {
	exportCmd.Flags().Duration("for", 30*time.Second, "length of the render")
	exportCmd.Flags().Int("out-rate", 0, "output sample rate (0 keeps the mix rate)")
}
