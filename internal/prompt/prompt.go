// Package prompt holds the system prompts the console can send ahead of
// every user message.
package prompt

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed guide.md
//go:embed persona.md
var presetFS embed.FS

const (
	Guide   = "guide"
	Persona = "persona"

	DefaultPreset = Guide
)

var presetFiles = map[string]string{
	Guide:   "guide.md",
	Persona: "persona.md",
}

// Vars are substituted into a preset. Unknown placeholders are left as-is.
type Vars struct {
	Model string
}

func Load(name string, vars Vars) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultPreset
	}
	path, ok := presetFiles[name]
	if !ok {
		return "", fmt.Errorf("unknown prompt preset %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	data, err := presetFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt preset %s: %w", path, err)
	}
	return render(strings.TrimSpace(string(data)), vars), nil
}

func Names() []string {
	names := make([]string, 0, len(presetFiles))
	for name := range presetFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func render(template string, vars Vars) string {
	replacer := strings.NewReplacer(
		"{{model}}", vars.Model,
	)
	return replacer.Replace(template)
}
