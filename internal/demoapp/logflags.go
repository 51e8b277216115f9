package demoapp

import "github.com/edward-ap/knotslider/internal/slider"

// SetTraceLogEnabled toggles verbose slider engine logging. Call this before
// creating the App so construction is traced too.
func SetTraceLogEnabled(b bool) { slider.SetTraceLoggingEnabled(b) }
