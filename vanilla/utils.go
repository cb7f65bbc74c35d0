package vanilla

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/chrisuehlinger/vanillautils/dom"
)

// legacyMarker identifies legacy Internet Explorer user agents.
const legacyMarker = "MSIE"

// Utils carries the environment-dependent helpers. It holds no mutable
// state after New returns.
type Utils struct {
	userAgent string
	ambient   AmbientEventFunc
	registrar registrar
	logger    *slog.Logger
}

// Option configures New.
type Option func(*Utils)

// WithLogger sets the logger used for debug output. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(u *Utils) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// New resolves the environment's event model and returns the helpers bound
// to it.
func New(env Environment, opts ...Option) *Utils {
	u := &Utils{
		userAgent: env.UserAgent,
		ambient:   env.Ambient,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(u)
	}

	model := env.EventModel
	if model == "" || model == ModelAuto {
		model = DetectEventModel(env.Probe)
	}
	u.registrar = newRegistrar(model, env.LegacyHandlerParity)

	u.logger.LogAttrs(context.Background(), slog.LevelDebug, "event model selected",
		slog.String("model", string(u.registrar.model())),
		slog.Bool("legacy_handler_parity", env.LegacyHandlerParity),
		slog.String("user_agent", env.UserAgent))
	return u
}

// EventModel returns the registration strategy chosen by New.
func (u *Utils) EventModel() EventModel {
	return u.registrar.model()
}

// AddEvent registers l on target for eventType. The optional capture flag
// defaults to false and only takes effect under the W3C model.
func (u *Utils) AddEvent(target any, eventType string, l *dom.Listener, capture ...bool) error {
	return u.registrar.add(target, eventType, l, captureFlag(capture))
}

// RemoveEvent undoes AddEvent with the same arguments.
func (u *Utils) RemoveEvent(target any, eventType string, l *dom.Listener, capture ...bool) error {
	return u.registrar.remove(target, eventType, l, captureFlag(capture))
}

func captureFlag(capture []bool) bool {
	return len(capture) > 0 && capture[0]
}

// StopDefault suppresses the default action of e. Without an event it falls
// back to clearing the return value of the ambient event, if there is one
// and its return value is still set.
func (u *Utils) StopDefault(e DefaultPreventer) {
	if ev, ok := e.(*dom.Event); ok && ev == nil {
		e = nil
	}
	if e != nil {
		e.PreventDefault()
		return
	}
	if u.ambient == nil {
		return
	}
	if ambient := u.ambient(); ambient != nil && ambient.ReturnValue() {
		ambient.SetReturnValue(false)
	}
}

// IsIE reports whether the user agent carries the legacy IE marker.
func (u *Utils) IsIE() bool {
	return strings.Contains(u.userAgent, legacyMarker)
}

// Trim forwards to the package-level Trim.
func (u *Utils) Trim(s string) string { return Trim(s) }

// HasClass forwards to the package-level HasClass.
func (u *Utils) HasClass(elm ClassReader, cName string) bool { return HasClass(elm, cName) }

// AddClass forwards to the package-level AddClass.
func (u *Utils) AddClass(elm ClassNamer, cName string) { AddClass(elm, cName) }

// RemoveClass forwards to the package-level RemoveClass.
func (u *Utils) RemoveClass(elm ClassNamer, cName string) { RemoveClass(elm, cName) }

// HasParent forwards to the package-level HasParent.
func (u *Utils) HasParent(n *dom.Node, id string) bool { return HasParent(n, id) }
