// SPDX-License-Identifier: EPL-2.0

package ir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/formats/wav"
	"github.com/ik5/audfx/internal/config"
	"github.com/sirupsen/logrus"
)

// Loader reads impulse responses from a directory of WAV files. Every call
// to Load goes back to disk.
type Loader struct {
	Dir    string
	Logger logrus.FieldLogger
}

// NewLoader returns a Loader for dir. An empty dir uses config.IRDir().
func NewLoader(dir string) *Loader {
	if dir == "" {
		dir = config.IRDir()
	}

	return &Loader{Dir: dir, Logger: logrus.StandardLogger()}
}

func (l *Loader) logger() logrus.FieldLogger {
	if l.Logger == nil {
		return logrus.StandardLogger()
	}

	return l.Logger
}

// Path returns where the asset called name is expected to live.
func (l *Loader) Path(name string) string {
	return filepath.Join(l.Dir, name+config.ImpulseResponseExt)
}

// Load decodes the named impulse response and mixes it down to mono.
func (l *Loader) Load(name string) (*audio.Buffer, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	path := l.Path(name)
	log := l.logger().WithFields(logrus.Fields{
		"impulse_response": name,
		"path":             path,
	})

	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).Error("Impulse response not available")
		return nil, &MissingAssetError{Name: name, Path: path, Err: err}
	}

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decoding impulse response %q: %w", name, err)
	}
	defer src.Close()

	channels := src.Channels()
	buf, err := audio.ReadAll(src, config.ReadBufferSize)
	if err != nil {
		return nil, fmt.Errorf("reading impulse response %q: %w", name, err)
	}

	log.WithFields(logrus.Fields{
		"samples":     buf.Len(),
		"sample_rate": buf.SampleRate,
		"channels":    channels,
	}).Debug("Loaded impulse response")

	return buf, nil
}

// Names lists the available impulse responses without their extension, in
// lexical order. A missing directory yields an empty list.
func (l *Loader) Names() ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing impulse responses: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		n := e.Name()
		if filepath.Ext(n) == config.ImpulseResponseExt {
			names = append(names, strings.TrimSuffix(n, config.ImpulseResponseExt))
		}
	}

	slices.Sort(names)

	return names, nil
}
