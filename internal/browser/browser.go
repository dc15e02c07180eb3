// Package browser is the simulated web browser shown on the computer
// terminal. It performs no network access: searches produce canned text.
package browser

import (
	"strings"

	"lounge/internal/locale"
)

const (
	DefaultURL       = "https://www.google.com"
	SpacesHomeURL    = "https://huggingface.co/spaces"
	bertKeyword      = "bert"
	diffusionKeyword = "diffusion"
)

// Browser holds the two text lines the terminal panel displays: the
// address/title line and the status area.
type Browser struct {
	DefaultURL    string
	SpacesHomeURL string

	Open       bool
	URLText    string
	StatusText string

	// Selected is the name of the simulated Space being shown, if any.
	Selected string
}

func New() *Browser {
	b := &Browser{DefaultURL: DefaultURL, SpacesHomeURL: SpacesHomeURL}
	b.URLText = b.DefaultURL
	return b
}

// Show opens the browser on its landing view.
func (b *Browser) Show() {
	b.Open = true
	b.Selected = ""
	b.URLText = locale.T("Browser Active. Default: %s", b.DefaultURL)
	b.StatusText = locale.T("Select an option or search Hugging Face Spaces.")
}

// Hide closes the browser. The text lines keep their last content.
func (b *Browser) Hide() {
	b.Open = false
}

// OpenHome shows the Spaces landing page. Ignored while closed.
func (b *Browser) OpenHome() bool {
	if !b.Open {
		return false
	}
	b.Selected = ""
	b.URLText = locale.T("Current View: Hugging Face Spaces Homepage (%s)", b.SpacesHomeURL)
	b.StatusText = locale.T("Welcome to Hugging Face Spaces! (Simulated)\nUse search to find a Space.")
	return true
}

// Result describes what a Search call did.
type Result int

const (
	ResultIgnored Result = iota // browser closed
	ResultPrompt                // empty query, user asked to type one
	ResultListed                // canned results shown
	ResultSelected              // a keyword matched and a Space is shown
)

// Search runs a simulated Spaces search. An empty or whitespace-only query
// only asks for input. A query containing "bert" (checked first) or
// "diffusion", case-insensitively, jumps straight to a canned Space.
func (b *Browser) Search(query string) Result {
	if !b.Open {
		return ResultIgnored
	}
	if strings.TrimSpace(query) == "" {
		b.StatusText = locale.T("Please enter a search query for Hugging Face Spaces.")
		return ResultPrompt
	}

	b.Selected = ""
	b.URLText = locale.T("Searching Spaces for: %s...", query)
	b.StatusText = locale.T("Displaying simulated results for: '%s'.\n(Simulated - No actual API call or results list).", query)

	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, bertKeyword):
		b.selectSpace("BERT Question Answering")
	case strings.Contains(lower, diffusionKeyword):
		b.selectSpace("Stable Diffusion Demo")
	default:
		return ResultListed
	}
	return ResultSelected
}

func (b *Browser) selectSpace(name string) {
	b.Selected = name
	b.URLText = locale.T("Current View: Space - %s (Simulated)", name)
	b.StatusText = locale.T("Welcome to the '%s' Space!\n(This is a simulated view of the Space running).", name)
}
