// Package locale translates the user-facing strings shown on panels and in
// diagnostics. Without a loaded catalogue every lookup returns the English
// msgid, formatted with its arguments.
package locale

import (
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
)

const domain = "lounge"

// Init loads the catalogue for lang from dir (dir/<lang>/LC_MESSAGES/lounge.po).
// A missing catalogue is not an error; strings stay in English.
func Init(dir, lang string) bool {
	if dir == "" || lang == "" {
		return false
	}
	po := filepath.Join(dir, lang, "LC_MESSAGES", domain+".po")
	if _, err := os.Stat(po); err != nil {
		return false
	}
	gotext.Configure(dir, lang, domain)
	return true
}

// T returns the translation of msg, formatted with vars.
func T(msg string, vars ...any) string {
	return gotext.Get(msg, vars...)
}
