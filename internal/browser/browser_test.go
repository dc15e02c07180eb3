package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func openBrowser() *Browser {
	b := New()
	b.Show()
	return b
}

func TestNewShowsDefaultURL(t *testing.T) {
	b := New()
	assert.False(t, b.Open)
	assert.Equal(t, DefaultURL, b.URLText)
}

func TestShowAndHide(t *testing.T) {
	b := openBrowser()
	assert.True(t, b.Open)
	assert.Equal(t, "Browser Active. Default: https://www.google.com", b.URLText)
	assert.Equal(t, "Select an option or search Hugging Face Spaces.", b.StatusText)

	b.Hide()
	assert.False(t, b.Open)
}

func TestEmptyQueryOnlyPrompts(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		b := openBrowser()
		url := b.URLText
		assert.Equal(t, ResultPrompt, b.Search(q))
		assert.Equal(t, "Please enter a search query for Hugging Face Spaces.", b.StatusText)
		assert.Equal(t, url, b.URLText, "no simulated result for %q", q)
		assert.Empty(t, b.Selected)
	}
}

func TestPlainQueryListsResults(t *testing.T) {
	b := openBrowser()
	assert.Equal(t, ResultListed, b.Search("llama"))
	assert.Equal(t, "Searching Spaces for: llama...", b.URLText)
	assert.Contains(t, b.StatusText, "Displaying simulated results for: 'llama'.")
	assert.Empty(t, b.Selected)
}

func TestKeywordsSelectSpace(t *testing.T) {
	b := openBrowser()
	assert.Equal(t, ResultSelected, b.Search("RoBERTa models"))
	assert.Equal(t, "BERT Question Answering", b.Selected)
	assert.Equal(t, "Current View: Space - BERT Question Answering (Simulated)", b.URLText)

	b = openBrowser()
	assert.Equal(t, ResultSelected, b.Search("Stable DIFFUSION xl"))
	assert.Equal(t, "Stable Diffusion Demo", b.Selected)
	assert.Contains(t, b.StatusText, "Welcome to the 'Stable Diffusion Demo' Space!")

	b = openBrowser()
	b.Search("bert vs diffusion")
	assert.Equal(t, "BERT Question Answering", b.Selected, "bert wins when both match")
}

func TestClosedBrowserIgnoresActions(t *testing.T) {
	b := New()
	assert.Equal(t, ResultIgnored, b.Search("bert"))
	assert.False(t, b.OpenHome())
	assert.Equal(t, DefaultURL, b.URLText)
}

func TestOpenHome(t *testing.T) {
	b := openBrowser()
	b.Search("bert")
	assert.True(t, b.OpenHome())
	assert.Empty(t, b.Selected)
	assert.Equal(t, "Current View: Hugging Face Spaces Homepage (https://huggingface.co/spaces)", b.URLText)
	assert.Contains(t, b.StatusText, "Welcome to Hugging Face Spaces! (Simulated)")
}
