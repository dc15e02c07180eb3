package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const scriptsDir = "internal/scripts"

const tmpl = `package scripts

import (
	"lounge/internal/engine"
	"lounge/internal/input"
	"lounge/internal/locale"
)

// {{.Name}} reacts when the player presses its key nearby.
type {{.Name}} struct {
	prop
}

func (s *{{.Name}}) Start() {
	s.checkPlayer()
}

func (s *{{.Name}}) Update(deltaTime float32) {
	if s.triggered() {
		s.log.Infof("{{.Name}} used")
	}
}

func (s *{{.Name}}) Prompt() (string, bool) {
	if !s.inRange() {
		return "", false
	}
	return locale.T("[%s] Use {{.Name}}", s.Key), true
}

func init() {
	engine.RegisterScriptWithApplier("{{.Name}}", {{.Lower}}Factory, {{.Lower}}Serializer, {{.Lower}}Applier)
}

func {{.Lower}}Factory(ctx engine.ScriptContext, props map[string]any) engine.Component {
	return &{{.Name}}{
		prop: newProp(ctx, "{{.Name}}", props, 2.0, input.KeyE),
	}
}

func {{.Lower}}Serializer(c engine.Component) map[string]any {
	s, ok := c.(*{{.Name}})
	if !ok {
		return nil
	}
	return s.zoneProps(map[string]any{})
}

func {{.Lower}}Applier(c engine.Component, propName string, value any) bool {
	s, ok := c.(*{{.Name}})
	if !ok {
		return false
	}
	return s.applyZone(propName, value)
}
`

// render fills the template for a script type name.
func render(name string) (string, error) {
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return "", errors.New("script name must start with an uppercase letter")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return "", fmt.Errorf("script name %q must be a Go identifier", name)
		}
	}
	lower := string(unicode.ToLower(rune(name[0]))) + name[1:]

	content := strings.ReplaceAll(tmpl, "{{.Name}}", name)
	content = strings.ReplaceAll(content, "{{.Lower}}", lower)
	return content, nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: go run ./cmd/newscript <ScriptName>\n")
		fmt.Fprintf(os.Stderr, "Example: go run ./cmd/newscript Jukebox\n")
		os.Exit(1)
	}

	name := os.Args[1]
	content, err := render(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(scriptsDir, toSnakeCase(name)+".go")
	if _, err := os.Stat(outPath); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", outPath)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s\n", outPath)
	fmt.Printf("Script \"%s\" registered. Add it to a scene object:\n\n", name)
	fmt.Printf("  {\n")
	fmt.Printf("    \"type\": \"Script\",\n")
	fmt.Printf("    \"name\": \"%s\",\n", name)
	fmt.Printf("    \"props\": { \"radius\": 2.0, \"key\": \"E\" }\n")
	fmt.Printf("  }\n")
}

func toSnakeCase(s string) string {
	var result []rune
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			result = append(result, '_')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}
