package prompt

import (
	"strings"
	"testing"
)

func TestLoadGuideRendersModel(t *testing.T) {
	text, err := Load(Guide, Vars{Model: "gpt-test"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.Contains(text, "=== App Guide ===") {
		t.Fatalf("missing app guide section: %q", text)
	}
	if !strings.Contains(text, "with gpt-test") {
		t.Fatalf("model was not rendered: %q", text)
	}
	if strings.Contains(text, "{{model}}") {
		t.Fatalf("placeholder left in prompt")
	}
}

func TestLoadDefaultsToGuide(t *testing.T) {
	blank, err := Load("  ", Vars{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	guide, err := Load(Guide, Vars{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if blank != guide {
		t.Fatalf("blank preset should fall back to %s", Guide)
	}
}

func TestLoadPersonaIsCaseInsensitive(t *testing.T) {
	text, err := Load("Persona", Vars{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.HasPrefix(text, "You are a helpful") {
		t.Fatalf("unexpected persona: %q", text)
	}
}

func TestLoadUnknownPreset(t *testing.T) {
	_, err := Load("pirate", Vars{})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "guide, persona") {
		t.Fatalf("error should list presets: %v", err)
	}
}
