package main

import (
	"flag"

	demoapp "github.com/edward-ap/knotslider/internal/demoapp"
)

func main() {
	trace := flag.Bool("traceLog", false, "enable verbose slider engine logging")
	presets := flag.String("presets", "", "TOML or JSON file with extra bank presets")
	watch := flag.Bool("watch", true, "reload the config file when it changes on disk")
	flag.Parse()
	demoapp.SetTraceLogEnabled(*trace)

	app := demoapp.NewApp(demoapp.Options{PresetsFile: *presets, Watch: *watch})
	app.Run()
}
