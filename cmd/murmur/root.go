// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/murmur/config"
	"github.com/ik5/murmur/session"
	"github.com/ik5/murmur/speaker"
)

var version = "dev"

var (
	cfg = config.Load()
	cur *env
)

var rootCmd = &cobra.Command{
	Use:           "murmur",
	Short:         "Ambient sound mixer",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd == versionCmd {
			return nil
		}
		e, err := newEnv(cfg)
		if err != nil {
			return err
		}
		cur = e
		if cur.tracks, err = cur.app.Load(cmd.Context()); err != nil {
			return fmt.Errorf("loading: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("murmur", version)
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfg.AssetsDir, "assets", cfg.AssetsDir, "asset directory")
	f.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "catalog file inside the asset directory")
	f.StringVar(&cfg.Store, "store", cfg.Store, "store backend: badger, gdata or memory")
	f.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "badger data directory")
	f.IntVar(&cfg.SampleRate, "rate", cfg.SampleRate, "mix sample rate")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	f.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "also log to this rotated file")

	rootCmd.AddCommand(versionCmd, soundsCmd, playCmd, mixCmd, exportCmd, prefsCmd)
}

// listen plays the live mix on the device until ctx ends, d passes (when
// positive) or the sleep timer fires.
func listen(ctx context.Context, d time.Duration) error {
	spk, err := speaker.Open(cur.bus,
		speaker.WithBufferSize(cur.cfg.BufferSize),
		speaker.WithLogger(cur.logger.Named("speaker")),
	)
	if err != nil {
		return err
	}
	defer func() {
		if err := spk.Close(); err != nil {
			cur.logger.Warn("closing speaker", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	if d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	select {
	case <-ctx.Done():
	case <-cur.sleep:
		fmt.Println("sleep timer: all sounds stopped")
	}
	return nil
}

func printOutcome(name string, out session.Outcome, err error) {
	switch {
	case err != nil:
		fmt.Printf("%-16s %s (%v)\n", name, out, err)
	default:
		fmt.Printf("%-16s %s\n", name, out)
	}
}
