// Package js provides the script host for the helpers. It uses the goja
// JavaScript engine (pure Go ES5.1+ implementation) and exposes a window,
// navigator, document and the VanillaUtils global to scripts.
package js

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/dop251/goja"

	"github.com/chrisuehlinger/vanillautils/dom"
	"github.com/chrisuehlinger/vanillautils/vanilla"
)

// Runtime wraps a goja JavaScript runtime with a window and document.
type Runtime struct {
	vm      *goja.Runtime
	window  *dom.Window
	model   vanilla.EventModel
	binder  *Binder
	console io.Writer
	logger  *slog.Logger
	mu      sync.Mutex // serializes script execution
	errMu   sync.Mutex
	errors  []error
	onError func(error)
}

// Option configures NewRuntime.
type Option func(*Runtime)

// WithEventModel selects which registration API element objects expose to
// scripts. The default is the W3C model.
func WithEventModel(model vanilla.EventModel) Option {
	return func(r *Runtime) {
		if model != "" && model != vanilla.ModelAuto {
			r.model = model
		}
	}
}

// WithLogger sets the logger for script errors and console output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithConsole sets where console.log output is written.
func WithConsole(w io.Writer) Option {
	return func(r *Runtime) {
		r.console = w
	}
}

// NewRuntime creates a runtime whose globals reflect win.
func NewRuntime(win *dom.Window, opts ...Option) *Runtime {
	r := &Runtime{
		vm:      goja.New(),
		window:  win,
		model:   vanilla.ModelW3C,
		console: io.Discard,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.binder = newBinder(r)

	r.setupConsole()
	r.setupWindow()
	r.setupEventConstructor()
	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime {
	return r.vm
}

// Binder returns the node binder of this runtime.
func (r *Runtime) Binder() *Binder {
	return r.binder
}

// EventModel returns the registration API exposed to scripts.
func (r *Runtime) EventModel() vanilla.EventModel {
	return r.model
}

// SetOnError sets a callback for JavaScript errors.
func (r *Runtime) SetOnError(handler func(error)) {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	r.onError = handler
}

// Execute runs JavaScript code and returns the result.
func (r *Runtime) Execute(code string) (result goja.Value, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Recover from panics in the goja parser/runtime
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script execution panic: %v", p)
			r.recordError(err)
		}
	}()

	result, err = r.vm.RunString(code)
	if err != nil {
		r.recordError(err)
	}
	return result, err
}

// ExecuteScript compiles and runs the code of a named script. Scripts run
// in sloppy mode unless they carry a "use strict" directive.
func (r *Runtime) ExecuteScript(code, src string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script compilation panic in %s: %v", src, p)
			r.recordError(err)
		}
	}()

	program, err := goja.Compile(src, code, false)
	if err != nil {
		err = fmt.Errorf("compile %s: %w", src, err)
		r.recordError(err)
		return err
	}
	if _, err = r.vm.RunProgram(program); err != nil {
		err = fmt.Errorf("run %s: %w", src, err)
		r.recordError(err)
		return err
	}
	return nil
}

// Errors returns all errors recorded so far.
func (r *Runtime) Errors() []error {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	out := make([]error, len(r.errors))
	copy(out, r.errors)
	return out
}

// ClearErrors clears the recorded errors.
func (r *Runtime) ClearErrors() {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	r.errors = nil
}

func (r *Runtime) recordError(err error) {
	r.errMu.Lock()
	r.errors = append(r.errors, err)
	onError := r.onError
	r.errMu.Unlock()

	r.logger.LogAttrs(context.Background(), slog.LevelError, "script error", slog.String("error", err.Error()))
	if onError != nil {
		onError(err)
	}
}

// reportListenerError records an exception thrown by an event listener.
func (r *Runtime) reportListenerError(err error) {
	r.recordError(fmt.Errorf("event listener: %w", err))
}

func (r *Runtime) setupConsole() {
	console := r.vm.NewObject()
	levels := map[string]slog.Level{
		"log":   slog.LevelInfo,
		"info":  slog.LevelInfo,
		"debug": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, level := range levels {
		name, level := name, level
		console.Set(name, func(call goja.FunctionCall) goja.Value {
			msg := formatArgs(call.Arguments)
			fmt.Fprintln(r.console, msg)
			r.logger.LogAttrs(context.Background(), level, "console."+name, slog.String("message", msg))
			return goja.Undefined()
		})
	}
	r.vm.Set("console", console)
}

func (r *Runtime) setupWindow() {
	global := r.vm.GlobalObject()
	r.vm.Set("window", global)
	r.vm.Set("self", global)

	navigator := r.vm.NewObject()
	navigator.Set("userAgent", r.window.Navigator().UserAgent)
	r.vm.Set("navigator", navigator)

	if doc := r.window.Document(); doc != nil {
		r.vm.Set("document", r.binder.BindNode(doc.AsNode()))
	}

	global.DefineAccessorProperty("event", r.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		e := r.window.Event()
		if e == nil {
			return goja.Undefined()
		}
		return r.binder.bindEvent(e)
	}), nil, goja.FLAG_TRUE, goja.FLAG_FALSE)
}

// formatArgs joins console arguments with spaces.
func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		if arg == nil {
			parts[i] = "undefined"
			continue
		}
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
