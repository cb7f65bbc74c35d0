// Package vanilla provides cross-environment DOM helpers: event
// registration, default-action suppression, legacy browser detection,
// string trimming, class-token set operations and ancestor lookup.
//
// The stateless helpers (Trim, HasClass, AddClass, RemoveClass, HasParent)
// are plain functions. The helpers that depend on the host environment
// hang off a Utils value, which picks its event registration strategy once
// when it is built instead of probing the target on every call:
//
//	u := vanilla.New(vanilla.FromWindow(win))
//	l := dom.NewListener(func(e *dom.Event) { u.StopDefault(e) })
//	if err := u.AddEvent(link, "click", l); err != nil {
//		return err
//	}
package vanilla
