package ui

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"

	"fyne.io/fyne/v2/data/binding"

	"github.com/edward-ap/knotslider/internal/slider"
)

// rejectingFloat is a binding whose writes always fail.
type rejectingFloat struct {
	binding.Float
}

func (rejectingFloat) Set(float64) error { return errors.New("read-only source") }

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestKnotSliderTracesBindingWriteErrors(t *testing.T) {
	out := &syncBuffer{}
	orig := log.Writer()
	log.SetOutput(out)
	slider.SetTraceLoggingEnabled(true)
	t.Cleanup(func() {
		slider.SetTraceLoggingEnabled(false)
		log.SetOutput(orig)
	})

	s := newTestKnotSlider(t, slider.Config{Min: 0, Max: 100, Step: 10})
	s.Bind(rejectingFloat{Float: binding.NewFloat()})
	s.SetValue(30)

	waitFor(t, "binding error trace", func() bool {
		return strings.Contains(out.String(), "ui: bound value write 30 failed: read-only source")
	})
}
