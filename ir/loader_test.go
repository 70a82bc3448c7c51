// SPDX-License-Identifier: EPL-2.0

package ir

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audfx/internal/audiotest"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func newQuietLoader(dir string) (*Loader, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return &Loader{Dir: dir, Logger: logger}, hook
}

func TestLoader_Load_Mono(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "plate.wav", audiotest.WAV(22050, 1, []int16{16384, -16384, 0, 8192}))

	l, _ := newQuietLoader(dir)
	buf, err := l.Load("plate")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if buf.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", buf.SampleRate)
	}

	want := []float64{0.5, -0.5, 0, 0.25}
	if ok, i := audiotest.AlmostEqual(buf.Samples, want, 1e-9); !ok {
		t.Errorf("Samples = %v, want %v (index %d)", buf.Samples, want, i)
	}
}

func TestLoader_Load_StereoIsAveraged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "hall.wav", audiotest.WAV(44100, 2, []int16{16384, 0, -16384, -16384}))

	l, _ := newQuietLoader(dir)
	buf, err := l.Load("hall")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []float64{0.25, -0.5}
	if len(buf.Samples) != len(want) {
		t.Fatalf("len = %d, want %d", len(buf.Samples), len(want))
	}
	for i := range want {
		if math.Abs(buf.Samples[i]-want[i]) > 1e-9 {
			t.Errorf("Samples[%d] = %v, want %v", i, buf.Samples[i], want[i])
		}
	}
}

func TestLoader_Load_Missing(t *testing.T) {
	t.Parallel()

	l, hook := newQuietLoader(t.TempDir())
	_, err := l.Load("cathedral")

	if !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("Load() error = %v, want ErrMissingAsset", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want to wrap fs.ErrNotExist", err)
	}

	var missing *MissingAssetError
	if !errors.As(err, &missing) {
		t.Fatalf("error %T is not *MissingAssetError", err)
	}
	if missing.Name != "cathedral" || missing.Path != l.Path("cathedral") {
		t.Errorf("MissingAssetError = %+v", missing)
	}

	if e := hook.LastEntry(); e == nil || e.Level != logrus.ErrorLevel {
		t.Errorf("last log entry = %v, want an error", e)
	}
}

func TestLoader_Load_InvalidName(t *testing.T) {
	t.Parallel()

	l, _ := newQuietLoader(t.TempDir())
	for _, name := range []string{"", "../etc/passwd", "sub/room", ".hidden"} {
		if _, err := l.Load(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Load(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestLoader_Load_NotWav(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "broken.wav", []byte("this is not audio"))

	l, _ := newQuietLoader(dir)
	_, err := l.Load("broken")
	if err == nil {
		t.Fatal("Load() error = nil, want decode error")
	}
	if errors.Is(err, ErrMissingAsset) {
		t.Errorf("Load() error = %v, should not be ErrMissingAsset", err)
	}
}

func TestLoader_Names(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	wav := audiotest.WAV(8000, 1, []int16{0})
	writeFile(t, dir, "spring.wav", wav)
	writeFile(t, dir, "church.wav", wav)
	writeFile(t, dir, "notes.txt", []byte("ignore me"))
	if err := os.Mkdir(filepath.Join(dir, "nested.wav"), 0o755); err != nil {
		t.Fatal(err)
	}

	l, _ := newQuietLoader(dir)
	names, err := l.Names()
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}

	want := []string{"church", "spring"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestLoader_Names_MissingDir(t *testing.T) {
	t.Parallel()

	l, _ := newQuietLoader(filepath.Join(t.TempDir(), "nope"))
	names, err := l.Names()
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Names() = %v, want empty", names)
	}
}

func TestNewLoader_DefaultsDir(t *testing.T) {
	t.Setenv("AUDFX_IR_DIR", "")

	if l := NewLoader(""); l.Dir != "ir" {
		t.Errorf("Dir = %q, want %q", l.Dir, "ir")
	}
	if l := NewLoader("/tmp/x"); l.Dir != "/tmp/x" {
		t.Errorf("Dir = %q, want /tmp/x", l.Dir)
	}
}
