// Package cli holds the flag and output plumbing shared by the generator
// commands.
package cli

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strconv"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"github.com/Jajcus/vulkanplay/rng"
)

// Seed is a flag.Value for an optional int64 seed. An unset seed is replaced
// by a fresh entropy seed on first use so it can still be logged and reused.
type Seed struct {
	value int64
	set   bool
}

// String implements flag.Value.
func (s *Seed) String() string {
	if s == nil || !s.set {
		return ""
	}

	return strconv.FormatInt(s.value, 10)
}

// Set implements flag.Value; decimal, 0x hex and 0o octal are accepted.
func (s *Seed) Set(v string) error {
	n, err := strconv.ParseInt(v, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid seed %q: %w", v, err)
	}
	s.value, s.set = n, true

	return nil
}

// IsSet reports whether the seed came from the command line.
func (s *Seed) IsSet() bool { return s.set }

// Source returns a generator for the seed, drawing the seed from entropy
// first when none was given, and the seed actually used.
func (s *Seed) Source() (*rng.PCG, int64) {
	if !s.set {
		s.value, s.set = int64(rng.NewEntropy().Uint64()), true
	}

	return rng.NewOptional(&s.value), s.value
}

// Output splits a command-line path into an OS filesystem rooted at its
// directory and the file name inside it.
func Output(path string) (billy.Filesystem, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", err
	}

	return osfs.New(filepath.Dir(abs)), filepath.Base(abs), nil
}

// Logger returns a logger prefixed with the command name. When verbose is
// false Debugf output is dropped.
func Logger(w io.Writer, name string, verbose bool) *Log {
	l := &Log{Logger: log.New(w, name+": ", 0)}
	if verbose {
		l.debug = l.Logger
	}

	return l
}

// Log is a log.Logger with an optional debug level.
type Log struct {
	*log.Logger
	debug *log.Logger
}

// Debugf logs only in verbose mode.
func (l *Log) Debugf(format string, args ...interface{}) {
	if l.debug != nil {
		l.debug.Printf(format, args...)
	}
}
