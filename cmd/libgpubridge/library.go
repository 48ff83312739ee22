// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpubridge"
	"github.com/gogpu/gpubridge/driver"
	_ "github.com/gogpu/gpubridge/driver/rust"
	"github.com/gogpu/gpubridge/window"
)

var (
	// errInvalidHandle is reported for 0, stale or mistyped handles.
	errInvalidHandle = errors.New("libgpubridge: invalid handle")

	// errNoInstance is reported by the instance-less calls when no
	// instance is current.
	errNoInstance = errors.New("libgpubridge: no current instance")
)

// surfaceParams is a surface configuration as it arrives from C.
// An empty format selects the configured default.
type surfaceParams struct {
	device      uintptr
	format      string
	usage       uint32
	width       uint32
	height      uint32
	presentMode driver.PresentMode
	alphaMode   driver.AlphaMode
}

// library is the process-wide state behind the exported functions.
// Every method records its failure as the last error.
type library struct {
	mu sync.Mutex

	getenv    func(string) string
	extra     []gpubridge.Option
	setupOnce sync.Once
	settings  settings
	setupErr  error

	handles *handleTable
	owner   map[any]*gpubridge.Instance
	current *gpubridge.Instance

	lastErr string
}

// newLibrary returns a library reading its settings through getenv.
// extra options are applied after the configured ones.
func newLibrary(getenv func(string) string, extra ...gpubridge.Option) *library {
	return &library{
		getenv:  getenv,
		extra:   extra,
		handles: newHandleTable(),
		owner:   make(map[any]*gpubridge.Instance),
	}
}

// setup reads the environment once per library.
func (l *library) setup() error {
	l.setupOnce.Do(func() {
		l.settings, l.setupErr = loadSettings(l.getenv)
	})
	return l.setupErr
}

// fail records err as the last error, logs it and returns it.
// Caller must hold l.mu.
func (l *library) fail(op string, err error) error {
	gpubridge.Logger().Warn("libgpubridge: "+op, "err", err)
	l.lastErr = op + ": " + err.Error()
	return err
}

// handOut returns the handle of obj, recording inst as its owner.
// Caller must hold l.mu.
func (l *library) handOut(inst *gpubridge.Instance, obj any) uintptr {
	if obj == nil {
		return 0
	}
	if _, ok := l.owner[obj]; !ok {
		l.owner[obj] = inst
	}
	return l.handles.handle(obj)
}

// forget drops the handles of the objects owned by inst that match.
// Caller must hold l.mu.
func (l *library) forget(inst *gpubridge.Instance, match func(obj any) bool) {
	l.handles.dropIf(func(obj any) bool {
		if l.owner[obj] != inst || !match(obj) {
			return false
		}
		delete(l.owner, obj)
		return true
	})
}

func (l *library) instance(h uintptr) (*gpubridge.Instance, error) {
	inst, ok := l.handles.lookup(h).(*gpubridge.Instance)
	if !ok {
		return nil, errInvalidHandle
	}
	return inst, nil
}

func (l *library) surface(h uintptr) (driver.Surface, error) {
	s, ok := l.handles.lookup(h).(driver.Surface)
	if !ok {
		return nil, errInvalidHandle
	}
	return s, nil
}

func (l *library) device(h uintptr) (*gpubridge.Device, error) {
	d, ok := l.handles.lookup(h).(*gpubridge.Device)
	if !ok {
		return nil, errInvalidHandle
	}
	return d, nil
}

func isAdapter(obj any) bool {
	_, ok := obj.(driver.Adapter)
	return ok
}

func isNotDevice(obj any) bool {
	_, ok := obj.(*gpubridge.Device)
	return !ok
}

// create makes a new instance the current one.
func (l *library) create() (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.setup(); err != nil {
		return 0, l.fail("create", err)
	}
	opts := append(append([]gpubridge.Option(nil), l.settings.options...), l.extra...)
	inst, err := gpubridge.New(opts...)
	if err != nil {
		return 0, l.fail("create", err)
	}
	l.current = inst
	return l.handOut(inst, inst), nil
}

// destroy destroys the instance behind h and invalidates the handles of
// everything it owned except devices, which stay caller-owned.
func (l *library) destroy(h uintptr) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	inst, err := l.instance(h)
	if err != nil {
		return l.fail("destroy", err)
	}
	inst.Destroy()
	l.forget(inst, isNotDevice)
	if l.current == inst {
		l.current = nil
	}
	return nil
}

// rawInstance returns the handle of the driver-level instance wrapped by h.
func (l *library) rawInstance(h uintptr) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	inst, err := l.instance(h)
	if err != nil {
		return 0, l.fail("get instance", err)
	}
	raw := inst.Raw()
	if raw == nil {
		return 0, nil
	}
	return l.handOut(inst, raw), nil
}

func (l *library) discover(h uintptr) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	inst, err := l.instance(h)
	if err != nil {
		return l.fail("discover adapters", err)
	}
	if err := inst.DiscoverDefaultAdapters(); err != nil {
		return l.fail("discover adapters", err)
	}
	// The previous adapters are released.
	l.forget(inst, isAdapter)
	return nil
}

// setSurface makes the surface behind s current on the current instance;
// 0 clears it.
func (l *library) setSurface(s uintptr) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return l.fail("set surface", errNoInstance)
	}
	if s == 0 {
		l.current.SetSurface(nil)
		return nil
	}
	surface, err := l.surface(s)
	if err != nil {
		return l.fail("set surface", err)
	}
	l.current.SetSurface(surface)
	return nil
}

func (l *library) currentSurface() uintptr {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return 0
	}
	return l.handOut(l.current, l.current.Surface())
}

// createSurface creates a surface for w on the instance behind h and makes
// it current. A nil w reports window.ErrNoHandle.
func (l *library) createSurface(h uintptr, w driver.Window) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	inst, err := l.instance(h)
	if err != nil {
		return 0, l.fail("create surface", err)
	}
	if w == nil {
		return 0, l.fail("create surface", window.ErrNoHandle)
	}
	s, err := inst.CreateSurfaceForWindow(w)
	if err != nil {
		return 0, l.fail("create surface", err)
	}
	return l.handOut(inst, s), nil
}

// adapter returns the first adapter of the current instance, or 0.
func (l *library) adapter() uintptr {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return 0
	}
	a := l.current.Adapter()
	if a == nil {
		return 0
	}
	return l.handOut(l.current, a)
}

// createDevice creates a device on the first adapter of the current
// instance. desc may be nil.
func (l *library) createDevice(desc *driver.DeviceDescriptor) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return 0, l.fail("create device", errNoInstance)
	}
	dev, err := l.current.CreateDevice(desc)
	if err != nil {
		return 0, l.fail("create device", err)
	}
	return l.handOut(l.current, dev), nil
}

func (l *library) releaseDevice(h uintptr) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	dev, err := l.device(h)
	if err != nil {
		return l.fail("release device", err)
	}
	dev.Release()
	l.handles.drop(dev)
	delete(l.owner, dev)
	return nil
}

func (l *library) configureSurface(s uintptr, p *surfaceParams) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	surface, err := l.surface(s)
	if err != nil {
		return l.fail("configure surface", err)
	}
	if p == nil {
		return l.fail("configure surface", driver.ErrInvalidConfiguration)
	}
	dev, err := l.device(p.device)
	if err != nil {
		return l.fail("configure surface", err)
	}
	inst := l.owner[dev]
	if inst == nil {
		return l.fail("configure surface", errInvalidHandle)
	}

	cfg, err := p.configuration(dev, l.settings.surface)
	if err != nil {
		return l.fail("configure surface", err)
	}
	if err := inst.ConfigureSurface(surface, cfg); err != nil {
		return l.fail("configure surface", err)
	}
	return nil
}

// configuration converts p, falling back to the configured default format.
func (p *surfaceParams) configuration(dev *gpubridge.Device, defaults gpubridge.SurfaceConfig) (*driver.SurfaceConfiguration, error) {
	cfg := &driver.SurfaceConfiguration{
		Device:      dev.Raw(),
		Usage:       gputypes.TextureUsage(p.usage),
		Width:       p.width,
		Height:      p.height,
		PresentMode: p.presentMode,
		AlphaMode:   p.alphaMode,
	}
	if err := (gpubridge.SurfaceConfig{Format: defaults.Format}).Apply(cfg); err != nil {
		return nil, err
	}
	if p.format != "" {
		f, err := gpubridge.ParseTextureFormat(p.format)
		if err != nil {
			return nil, err
		}
		cfg.Format = f
	}
	return cfg, nil
}

func (l *library) driverName(h uintptr) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	inst, err := l.instance(h)
	if err != nil {
		return "", l.fail("driver name", err)
	}
	return inst.Driver().Name(), nil
}

// lastError returns the message of the last failed call, or "".
func (l *library) lastError() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

func main() {}
