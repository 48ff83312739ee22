// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command gpuprobe lists the GPU adapters gpubridge discovers and can
// open a window to check that a surface configures on the selected one.
//
//	gpuprobe -driver native -power low-power
//	gpuprobe -window -present mailbox
//
// The window needs cgo, and the native driver links into cgo binaries only
// on Windows. Elsewhere build with -tags rust:
//
//	go build -tags rust ./cmd/gpuprobe
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/gogpu/gpubridge"
	"github.com/gogpu/gpubridge/driver"
	_ "github.com/gogpu/gpubridge/driver/rust"
	"github.com/gogpu/gpubridge/window"
)

func init() {
	// GLFW must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath  = flag.String("config", "", "TOML configuration file")
		drv         = flag.String("driver", "", "driver name (default: best available)")
		power       = flag.String("power", "", "power preference: none, low-power, high-performance")
		fallback    = flag.Bool("fallback", false, "only software adapters")
		openWindow  = flag.Bool("window", false, "open a window and configure a surface")
		presentMode = flag.String("present", "", "present mode: fifo, fifo-relaxed, immediate, mailbox")
		frames      = flag.Int("frames", 0, "close the window after this many frames (0: until closed)")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	gpubridge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := gpubridge.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = gpubridge.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *drv != "" {
		cfg.Driver = *drv
	}
	if *power != "" {
		cfg.PowerPreference = *power
	}
	if *fallback {
		cfg.ForceFallbackAdapter = true
	}
	if *presentMode != "" {
		cfg.Surface.PresentMode = *presentMode
	}

	if err := run(cfg, *openWindow, *frames, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg gpubridge.Config, openWindow bool, frames int, out io.Writer) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	// The window outlives the instance, which owns the surface.
	var win *window.GLFW
	if openWindow {
		win, err = window.Open(window.Config{Title: "gpuprobe", Width: 800, Height: 600, Resizable: true})
		if err != nil {
			return err
		}
		defer win.Close()
	}

	inst, err := gpubridge.New(opts...)
	if err != nil {
		return fmt.Errorf("%w (registered: %v)", err, driver.Available())
	}
	defer inst.Destroy()

	if win != nil {
		// The surface makes discovery keep only adapters that can present to it.
		if _, err := inst.CreateSurfaceForWindow(win); err != nil {
			return err
		}
	}

	if err := inst.DiscoverDefaultAdapters(); err != nil {
		return err
	}
	printAdapters(out, inst.Driver().Name(), inst.Adapters())

	if win == nil {
		return nil
	}
	return present(inst, win, cfg.Surface, frames)
}

func printAdapters(out io.Writer, driverName string, adapters []gpubridge.AdapterInfo) {
	fmt.Fprintf(out, "driver: %s\n", driverName)
	if len(adapters) == 0 {
		fmt.Fprintln(out, "no adapters")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tTYPE\tBACKEND\tVENDOR\tDRIVER")
	for i, a := range adapters {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", i, a.Name,
			driver.DeviceTypeName(a.DeviceType), driver.BackendName(a.Backend), a.Vendor, a.Driver)
	}
	tw.Flush()
}

// present configures the current surface on a device of the selected
// adapter and keeps it sized to the window until the window closes.
func present(inst *gpubridge.Instance, win *window.GLFW, sc gpubridge.SurfaceConfig, frames int) error {
	dev, err := inst.CreateDevice(nil)
	if err != nil {
		return err
	}
	defer dev.Release()

	surface := inst.Surface()
	configure := func() error {
		size := win.Size()
		if size.X == 0 || size.Y == 0 {
			return nil // minimized
		}
		cfg := &driver.SurfaceConfiguration{
			Device: dev.Raw(),
			Width:  uint32(size.X),
			Height: uint32(size.Y),
		}
		if err := sc.Apply(cfg); err != nil {
			return err
		}
		return inst.ConfigureSurface(surface, cfg)
	}
	if err := configure(); err != nil {
		return err
	}
	defer surface.Unconfigure()

	resized := false
	win.OnResize(func(size image.Point) {
		resized = true
		gpubridge.Logger().Debug("gpuprobe: resize", "width", size.X, "height", size.Y)
	})

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	for n := 0; win.PollEvents(); n++ {
		if frames > 0 && n >= frames {
			break
		}
		if resized {
			resized = false
			if err := configure(); err != nil {
				return err
			}
		}
		dev.Raw().Poll(false)
		<-ticker.C
	}
	return nil
}
