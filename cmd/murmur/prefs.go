// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the preferences in effect",
	Args:  cobra.NoArgs,
	Run: func(*cobra.Command, []string) {
		p := cur.app.Preferences()
		fmt.Printf("premium:        %v\n", cur.app.Premium())
		fmt.Printf("ads:            %v\n", p.AdsEnabled)
		fmt.Printf("default volume: %.2f\n", p.DefaultVolume)
		fmt.Printf("sleep timer:    %s\n", p.TimerDuration())
		fmt.Printf("toggle fade:    %s\n", p.ToggleFade())
		fmt.Printf("remove fade:    %s\n", p.RemoveFade())
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p := cur.app.Preferences()
		f := cmd.Flags()
		if f.Changed("volume") {
			p.DefaultVolume, _ = f.GetFloat64("volume")
		}
		if f.Changed("timer") {
			p.DefaultTimerMinutes, _ = f.GetInt("timer")
		}
		if f.Changed("toggle-fade") {
			d, _ := f.GetDuration("toggle-fade")
			p.ToggleFadeMillis = int(d.Milliseconds())
		}
		if f.Changed("remove-fade") {
			d, _ := f.GetDuration("remove-fade")
			p.RemoveFadeMillis = int(d.Milliseconds())
		}
		return cur.app.SavePreferences(cmd.Context(), p)
	},
}

var prefsUnlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock premium",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cur.app.UnlockPremium(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("premium unlocked")
		return nil
	},
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default preferences; premium is kept",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cur.app.ResetPreferences(cmd.Context())
	},
}

func init() {
	f := prefsSetCmd.Flags()
	f.Float64("volume", 0, "volume new sounds fade in to, 0 to 1")
	f.Int("timer", 0, "default sleep timer in minutes")
	f.Duration("toggle-fade", 0, "fade when toggling a sound")
	f.Duration("remove-fade", 0, "fade when removing a sound")

	prefsCmd.AddCommand(prefsShowCmd, prefsSetCmd, prefsUnlockCmd, prefsResetCmd)
}
