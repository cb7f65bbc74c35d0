package js

import (
	"testing"

	"github.com/chrisuehlinger/vanillautils/vanilla"
)

func TestVanillaUtilsEvents(t *testing.T) {
	tests := []struct {
		name  string
		model vanilla.EventModel
		ua    string
	}{
		{"w3c", vanilla.ModelW3C, modernUA},
		{"legacy", vanilla.ModelLegacy, ie8UA},
		{"property", vanilla.ModelProperty, ie8UA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRuntime(t, tt.model, tt.ua)
			result, err := r.Execute(`
				var count = 0;
				var parent = document.getElementById('parent');
				function handler() { count++; }
				VanillaUtils.addEvent(parent, 'click', handler);
				document.getElementById('child').click();
				VanillaUtils.removeEvent(parent, 'click', handler);
				document.getElementById('child').click();
				count;
			`)
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if result.ToInteger() != 1 {
				t.Errorf("Expected 1 call, got %d", result.ToInteger())
			}
		})
	}
}

func TestVanillaUtilsUseCapture(t *testing.T) {
	r, _ := newTestRuntime(t, vanilla.ModelW3C, modernUA)

	result, err := r.Execute(`
		var order = [];
		var parent = document.getElementById('parent');
		var child = document.getElementById('child');
		VanillaUtils.addEvent(child, 'click', function() { order.push('target'); });
		VanillaUtils.addEvent(parent, 'click', function() { order.push('capture'); }, true);
		VanillaUtils.addEvent(parent, 'click', function() { order.push('bubble'); }, 'yes');
		child.click();
		order.join(',');
	`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if want := "capture,target,bubble"; result.String() != want {
		t.Errorf("Expected %q, got %q (only a literal true selects capture)", want, result.String())
	}
}

func TestVanillaUtilsStopDefault(t *testing.T) {
	tests := []struct {
		name  string
		model vanilla.EventModel
		ua    string
		call  string
	}{
		{"w3c with event", vanilla.ModelW3C, modernUA, "VanillaUtils.stopDefault(e)"},
		{"legacy with event", vanilla.ModelLegacy, ie8UA, "VanillaUtils.stopDefault(e)"},
		{"legacy without event", vanilla.ModelLegacy, ie8UA, "VanillaUtils.stopDefault()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, doc := newTestRuntime(t, tt.model, tt.ua)
			_, err := r.Execute(`
				VanillaUtils.addEvent(document.getElementById('link'), 'click', function(e) {
					` + tt.call + `;
				});
			`)
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if doc.GetElementById("link").Click() {
				t.Error("Expected default action to be prevented")
			}
		})
	}
}

func TestVanillaUtilsIsIE(t *testing.T) {
	for ua, want := range map[string]bool{modernUA: false, ie8UA: true} {
		r, _ := newTestRuntime(t, vanilla.ModelW3C, ua)
		result, err := r.Execute("VanillaUtils.isIE()")
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if result.ToBoolean() != want {
			t.Errorf("isIE() for %q = %v, want %v", ua, result.ToBoolean(), want)
		}
	}
}

func TestVanillaUtilsTrim(t *testing.T) {
	r, _ := newTestRuntime(t, vanilla.ModelW3C, modernUA)

	result, err := r.Execute(`
		var s = ' \t Hello this is some text \n';
		VanillaUtils.trim(s) === s.trim() && VanillaUtils.trim(VanillaUtils.trim(s)) === 'Hello this is some text';
	`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !result.ToBoolean() {
		t.Error("Expected trim to match String.prototype.trim")
	}
}

func TestVanillaUtilsClassScenario(t *testing.T) {
	r, doc := newTestRuntime(t, vanilla.ModelW3C, modernUA)

	result, err := r.Execute(`
		var el = document.getElementById('child');
		var steps = [];
		VanillaUtils.addClass(el, 'a'); steps.push(el.className);
		VanillaUtils.addClass(el, 'b'); steps.push(el.className);
		VanillaUtils.addClass(el, 'b'); steps.push(el.className);
		steps.push(VanillaUtils.hasClass(el, 'a'));
		VanillaUtils.removeClass(el, 'a'); steps.push(el.className);
		steps.push(VanillaUtils.hasClass(el, 'a'));
		steps.join('|');
	`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if want := "a|a b|a b|true|b|false"; result.String() != want {
		t.Errorf("Expected %q, got %q", want, result.String())
	}
	if got := doc.GetElementById("child").ClassName(); got != "b" {
		t.Errorf("Expected Go-side className 'b', got %q", got)
	}

	if _, err := r.Execute(`VanillaUtils.addClass(document, 'x')`); err == nil {
		t.Error("Expected TypeError for a non-element")
	}
}

func TestVanillaUtilsHasParent(t *testing.T) {
	r, _ := newTestRuntime(t, vanilla.ModelW3C, modernUA)

	result, err := r.Execute(`
		var child = document.getElementById('child');
		[
			VanillaUtils.hasParent(child, 'child'),
			VanillaUtils.hasParent(child, 'parent'),
			VanillaUtils.hasParent(child, 'missing'),
			VanillaUtils.hasParent(null, 'parent')
		].join(',');
	`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if want := "true,true,false,false"; result.String() != want {
		t.Errorf("Expected %q, got %q", want, result.String())
	}
}

func TestVanillaUtilsStopDefaultRethrows(t *testing.T) {
	r, _ := newTestRuntime(t, vanilla.ModelW3C, modernUA)

	_, err := r.Execute(`
		var threw = false;
		try {
			VanillaUtils.stopDefault({preventDefault: function() { throw new Error("boom"); }});
		} catch (e) {
			threw = e.message === "boom";
		}
	`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !r.VM().Get("threw").ToBoolean() {
		t.Error("Expected the preventDefault exception to reach the caller")
	}
}

func TestVanillaUtilsRemoveEventReleasesHandles(t *testing.T) {
	tests := []struct {
		name  string
		model vanilla.EventModel
		ua    string
	}{
		{"w3c", vanilla.ModelW3C, modernUA},
		{"legacy", vanilla.ModelLegacy, ie8UA},
		{"property", vanilla.ModelProperty, ie8UA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRuntime(t, tt.model, tt.ua)
			_, err := r.Execute(`
				var parent = document.getElementById('parent');
				for (var i = 0; i < 5000; i++) {
					var fn = function() {};
					VanillaUtils.addEvent(parent, 'click', fn);
					VanillaUtils.removeEvent(parent, 'click', fn);
					VanillaUtils.removeEvent(parent, 'click', function() {});
				}
			`)
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if n := r.Binder().HandleCount(); n != 0 {
				t.Errorf("Expected no retained handles, got %d", n)
			}

			_, err = r.Execute(`
				function kept() {}
				VanillaUtils.addEvent(parent, 'click', kept);
				VanillaUtils.addEvent(document.getElementById('child'), 'click', kept);
				VanillaUtils.removeEvent(parent, 'click', kept);
			`)
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if n := r.Binder().HandleCount(); n != 1 {
				t.Errorf("Expected the handle still on #child to be kept, got %d", n)
			}
		})
	}
}
