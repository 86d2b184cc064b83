// SPDX-License-Identifier: EPL-2.0

package murmur

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/murmur/analytics"
	"github.com/ik5/murmur/audio"
	"github.com/ik5/murmur/engine"
	"github.com/ik5/murmur/formats/wav"
	"github.com/ik5/murmur/store"
	"github.com/ik5/murmur/utils"
)

const exportBufSize = 4096

// RenderMono16 reads src until io.EOF, resamples it to targetRate when the
// rates differ, averages the channels and returns 16-bit samples. src must
// end on its own; wrap endless sources with audio.Limit. src is not closed.
func RenderMono16(ctx context.Context, src audio.Source, targetRate, bufSize int) ([]int16, error) {
	if targetRate <= 0 {
		targetRate = src.SampleRate()
	}
	if bufSize <= 0 {
		bufSize = exportBufSize
	}

	var s audio.Source = src
	if targetRate != src.SampleRate() {
		s = audio.NewResampler(s, targetRate)
	}
	mono := audio.NewMonoMixer(s)

	pcm16 := make([]int16, 0, targetRate*2)
	buf := make([]float32, bufSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := mono.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(x))
		}
		if errors.Is(err, io.EOF) {
			return pcm16, nil
		}
		if err != nil {
			return nil, fmt.Errorf("rendering: %w", err)
		}
	}
}

// ExportMix renders d of bus as a mono WAV file at rate (0 keeps the bus
// rate). Export is a premium feature.
//
// The render reads the bus directly, so whatever is playing on it is what
// gets written. A bus feeding a speaker at the same time loses those
// samples from the device.
func (a *App) ExportMix(ctx context.Context, w io.Writer, bus *engine.Bus, d time.Duration, rate int) error {
	if !a.session.Premium() {
		return ErrPremiumRequired
	}
	if d <= 0 {
		return ErrInvalidExport
	}
	if rate <= 0 {
		rate = bus.SampleRate()
	}

	frames := int(d.Seconds() * float64(bus.SampleRate()))
	samples, err := RenderMono16(ctx, audio.Limit(bus, frames), rate, exportBufSize)
	if err != nil {
		return err
	}
	if err := wav.WriteWAV16(w, rate, 1, samples); err != nil {
		return fmt.Errorf("writing wav: %w", err)
	}

	a.logger.Info("mix exported",
		zap.Duration("duration", d),
		zap.Int("sample_rate", rate),
		zap.Int("samples", len(samples)),
	)
	a.tracker.Track(analytics.MixExported, map[string]string{
		"duration": d.String(),
		"sounds":   store.FormatSoundIDs(a.session.Active()),
	})
	return nil
}
