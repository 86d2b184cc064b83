package murmur

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ik5/murmur/analytics"
	"github.com/ik5/murmur/formats/wav"
	"github.com/ik5/murmur/internal/audiotest"
	"github.com/ik5/murmur/utils"
)

func TestRenderMono16(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 2, 1000, 0.25)
	got, err := RenderMono16(context.Background(), src, 0, 256)
	if err != nil {
		t.Fatalf("RenderMono16() error = %v", err)
	}
	if len(got) != 1000 {
		t.Fatalf("len = %d, want 1000", len(got))
	}
	want := utils.Float32ToInt16(0.25)
	for i, s := range got {
		if s != want {
			t.Fatalf("sample %d = %d, want %d", i, s, want)
		}
	}
}

func TestRenderMono16_Resample(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(16000, 1, 1600, 0.5)
	got, err := RenderMono16(context.Background(), src, 8000, 0)
	if err != nil {
		t.Fatalf("RenderMono16() error = %v", err)
	}
	if n := len(got); n < 790 || n > 810 {
		t.Errorf("len = %d, want about 800", n)
	}
}

func TestRenderMono16_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := audiotest.NewConstantSource(8000, 1, 100, 0)
	if _, err := RenderMono16(ctx, src, 0, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("RenderMono16() error = %v, want context.Canceled", err)
	}
}

func TestApp_ExportMix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := newTestApp(t, nil, nil)

	var buf bytes.Buffer
	if err := a.ExportMix(ctx, &buf, a.bus, time.Second, 0); !errors.Is(err, ErrPremiumRequired) {
		t.Fatalf("free ExportMix() error = %v, want ErrPremiumRequired", err)
	}

	if err := a.UnlockPremium(ctx); err != nil {
		t.Fatalf("UnlockPremium() error = %v", err)
	}
	if err := a.ExportMix(ctx, &buf, a.bus, 0, 0); !errors.Is(err, ErrInvalidExport) {
		t.Errorf("ExportMix(0) error = %v, want ErrInvalidExport", err)
	}

	_, _ = a.Toggle(ctx, 1)
	a.Wait()

	if err := a.ExportMix(ctx, &buf, a.bus, 100*time.Millisecond, 0); err != nil {
		t.Fatalf("ExportMix() error = %v", err)
	}

	src, err := wav.Decoder{}.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if src.SampleRate() != testRate || src.Channels() != 1 {
		t.Fatalf("export is %d Hz, %d channels", src.SampleRate(), src.Channels())
	}

	samples := make([]float32, testRate)
	n, _ := src.ReadSamples(samples)
	if n != testRate/10 {
		t.Errorf("export has %d samples, want %d", n, testRate/10)
	}

	// fixture level 0.5 at the default volume 0.7
	for i, s := range samples[:n] {
		if math.Abs(float64(s)-0.35) > 0.01 {
			t.Fatalf("sample %d = %v, want about 0.35", i, s)
		}
	}

	if a.eventCount(analytics.MixExported) != 1 {
		t.Error("no mix_exported event")
	}
}

func TestApp_ExportMixResampled(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := newTestApp(t, nil, nil)
	if err := a.UnlockPremium(ctx); err != nil {
		t.Fatalf("UnlockPremium() error = %v", err)
	}

	var buf bytes.Buffer
	if err := a.ExportMix(ctx, &buf, a.bus, 50*time.Millisecond, 16000); err != nil {
		t.Fatalf("ExportMix() error = %v", err)
	}
	src, err := wav.Decoder{}.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if src.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", src.SampleRate())
	}

	samples := make([]float32, 2000)
	n, _ := src.ReadSamples(samples)
	if n < 790 || n > 810 {
		t.Errorf("export has %d samples, want about 800", n)
	}
}
