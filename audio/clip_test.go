package audio

import (
	"errors"
	"io"
	"testing"
)

func TestNewClip_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		samples  []float32
		wantErr  error
	}{
		{"ok", 2, []float32{0, 0, 1, 1}, nil},
		{"odd stereo", 2, []float32{0, 0, 1}, ErrUnsupportedChannels},
		{"no channels", 0, []float32{0}, ErrUnsupportedChannels},
		{"empty", 1, nil, ErrEmptyClip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewClip(44100, tt.channels, tt.samples)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewClip() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadClip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		srcRate      int
		srcChannels  int
		dstChannels  int
		wantChannels int
	}{
		{"stereo passthrough", 44100, 2, 2, 2},
		{"mono to stereo", 44100, 1, 2, 2},
		{"stereo to mono", 44100, 2, 1, 1},
		{"surround to stereo", 44100, 6, 2, 2},
		{"resampled", 22050, 2, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newSynth(tt.srcRate, tt.srcChannels, tt.srcRate/10, constant(0.5))
			clip, err := LoadClip(src, 44100, tt.dstChannels)
			if err != nil {
				t.Fatalf("LoadClip() error = %v", err)
			}
			if !src.closed {
				t.Error("LoadClip() did not close the source")
			}
			if clip.Channels() != tt.wantChannels || clip.SampleRate() != 44100 {
				t.Errorf("clip = %dch@%d, want %dch@44100", clip.Channels(), clip.SampleRate(), tt.wantChannels)
			}
			if f := clip.Frames(); f < 4300 || f > 4420 {
				t.Errorf("Frames() = %d, want about 4410", f)
			}
		})
	}
}

func TestLoadClip_Errors(t *testing.T) {
	t.Parallel()

	if _, err := LoadClip(newSynth(44100, 2, 10, constant(0)), 44100, 3); !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("3 channels: error = %v, want ErrUnsupportedChannels", err)
	}
	if _, err := LoadClip(newSynth(44100, 2, 0, constant(0)), 44100, 2); !errors.Is(err, ErrEmptyClip) {
		t.Errorf("empty source: error = %v, want ErrEmptyClip", err)
	}
}

func TestLoop_Wraps(t *testing.T) {
	t.Parallel()

	clip, err := NewClip(8000, 2, []float32{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}

	l := clip.Loop()
	buf := make([]float32, 10)
	n, err := l.ReadSamples(buf)
	if n != 10 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v; want 10, nil", n, err)
	}

	want := []float32{1, 2, 3, 4, 5, 6, 1, 2, 3, 4}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}

	// position carries over between reads
	n, _ = l.ReadSamples(buf[:2])
	if n != 2 || buf[0] != 5 || buf[1] != 6 {
		t.Errorf("second read = %v, want [5 6]", buf[:2])
	}
}

func TestLoop_IndependentPositions(t *testing.T) {
	t.Parallel()

	clip, _ := NewClip(8000, 1, []float32{1, 2, 3})
	a, b := clip.Loop(), clip.Loop()

	buf := make([]float32, 2)
	_, _ = a.ReadSamples(buf)
	_, _ = b.ReadSamples(buf[:1])
	if buf[0] != 1 {
		t.Errorf("second loop started at %v, want 1", buf[0])
	}
}

func TestLoop_InvalidDst(t *testing.T) {
	t.Parallel()

	clip, _ := NewClip(8000, 2, []float32{1, 2})
	if _, err := clip.Loop().ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("error = %v, want ErrInvalidDstSize", err)
	}
}

func TestStereo(t *testing.T) {
	t.Parallel()

	s := NewStereo(newSynth(8000, 1, 5, ramp))
	if s.Channels() != 2 {
		t.Fatalf("Channels() = %d, want 2", s.Channels())
	}

	got, err := drain(s, 4)
	if err != nil {
		t.Fatalf("drain() error = %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("got %d samples, want 10", len(got))
	}
	for f := range 5 {
		if got[2*f] != float32(f*10) || got[2*f+1] != float32(f*10) {
			t.Errorf("frame %d = (%v, %v), want both %d", f, got[2*f], got[2*f+1], f*10)
		}
	}

	if _, err := s.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("odd dst error = %v, want ErrInvalidDstSize", err)
	}
}

func TestLimit(t *testing.T) {
	t.Parallel()

	clip, _ := NewClip(8000, 2, []float32{0.1, 0.2})
	l := Limit(clip.Loop(), 7)

	got, err := drain(l, 4)
	if err != nil {
		t.Fatalf("drain() error = %v", err)
	}
	if len(got) != 14 {
		t.Errorf("got %d samples, want 14", len(got))
	}

	n, err := l.ReadSamples(make([]float32, 4))
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("read past limit = %d, %v; want 0, io.EOF", n, err)
	}
}
