package ui

import "testing"

func TestHeadlessManager_Force(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("IsHeadless() = false after ForceHeadless(true)")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("IsHeadless() = true after ForceHeadless(false)")
	}
	hm.ClearForce()
	if hm.forced != nil {
		t.Error("ClearForce() kept the override")
	}
}

func TestHeadlessManager_Defaults(t *testing.T) {
	hm := NewHeadlessManager()
	if _, ok := hm.GetDefault(DefaultKeyType); ok {
		t.Error("GetDefault() on empty manager reported a value")
	}

	hm.SetDefaults(map[string]string{DefaultKeyType: "node", DefaultKeyName: ""})
	if v, ok := hm.GetDefault(DefaultKeyType); !ok || v != "node" {
		t.Errorf("GetDefault(type) = %q, %v", v, ok)
	}
	if _, ok := hm.GetDefault(DefaultKeyName); ok {
		t.Error("empty default should not be stored")
	}

	copied := hm.Defaults()
	copied[DefaultKeyType] = "angular"
	if v, _ := hm.GetDefault(DefaultKeyType); v != "node" {
		t.Error("Defaults() returned the internal map")
	}

	hm.SetDefaults(nil)
	if _, ok := hm.GetDefault(DefaultKeyType); ok {
		t.Error("SetDefaults(nil) kept old values")
	}
}
