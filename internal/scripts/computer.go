package scripts

import (
	"lounge/internal/browser"
	"lounge/internal/components"
	"lounge/internal/cursor"
	"lounge/internal/engine"
	"lounge/internal/input"
	"lounge/internal/locale"
)

// ComputerTerminal opens the simulated browser panel when the player uses
// the computer, and closes it on the close key from anywhere.
type ComputerTerminal struct {
	prop

	CloseKey input.Key

	Panel            engine.GameObjectRef // required
	URLText          engine.GameObjectRef
	StatusText       engine.GameObjectRef
	SearchField      engine.GameObjectRef
	OpenSpacesButton engine.GameObjectRef
	SearchButton     engine.GameObjectRef
	CloseButton      engine.GameObjectRef

	Browser *browser.Browser

	cursor *cursor.Arbiter
	panel  *engine.GameObject
	url    *components.UIText
	status *components.UIText
	field  *components.UIInputField
}

func (c *ComputerTerminal) Start() {
	c.checkPlayer()

	c.panel = c.lookup(c.Panel)
	if c.panel == nil {
		c.log.Errorf("BrowserCanvas not assigned.")
		c.Disable()
		return
	}

	c.url = engine.GetComponent[*components.UIText](c.lookup(c.URLText))
	c.status = engine.GetComponent[*components.UIText](c.lookup(c.StatusText))
	c.field = engine.GetComponent[*components.UIInputField](c.lookup(c.SearchField))
	if c.status == nil {
		c.log.Warnf("HFStatusText not assigned.")
	}

	c.onClick(c.OpenSpacesButton, c.OpenSpaces)
	c.onClick(c.SearchButton, c.SubmitSearch)
	c.onClick(c.CloseButton, c.CloseBrowser)

	c.panel.SetActive(false)
	c.Browser.Hide()
	c.Browser.URLText = c.Browser.DefaultURL
	c.Browser.StatusText = ""
	c.sync()
}

func (c *ComputerTerminal) onClick(ref engine.GameObjectRef, fn func()) {
	if btn := engine.GetComponent[*components.UIButton](c.lookup(ref)); btn != nil {
		btn.OnClick.AddListener(fn)
	}
}

func (c *ComputerTerminal) Update(deltaTime float32) {
	if c.Browser.Open {
		if c.pressed(c.CloseKey) {
			c.CloseBrowser()
		}
		return
	}
	if c.triggered() {
		c.OpenBrowser()
	}
}

// IsOpen reports whether the browser panel is showing.
func (c *ComputerTerminal) IsOpen() bool {
	return c.Browser.Open
}

func (c *ComputerTerminal) OpenBrowser() {
	if c.panel == nil {
		return
	}
	c.Browser.Show()
	c.panel.SetActive(true)
	c.sync()
	c.log.Infof("Browser opened.")
	if c.cursor != nil {
		c.cursor.Acquire(c.owner("ComputerTerminal"))
	}
}

func (c *ComputerTerminal) CloseBrowser() {
	if c.panel == nil {
		return
	}
	c.Browser.Hide()
	c.panel.SetActive(false)
	if c.field != nil {
		c.field.Blur()
	}
	c.log.Infof("Browser closed.")
	if c.cursor != nil {
		c.cursor.Release(c.owner("ComputerTerminal"))
	}
}

// OpenSpaces is the "Open Hugging Face Spaces" button.
func (c *ComputerTerminal) OpenSpaces() {
	if c.Browser.OpenHome() {
		c.log.Infof("'Open Hugging Face Spaces' button clicked.")
		c.sync()
	}
}

// SubmitSearch searches for the text currently in the search field.
func (c *ComputerTerminal) SubmitSearch() {
	if c.field == nil {
		return
	}
	c.Search(c.field.Text)
}

// Search runs a simulated search and refreshes the panel.
func (c *ComputerTerminal) Search(query string) browser.Result {
	res := c.Browser.Search(query)
	if res == browser.ResultListed || res == browser.ResultSelected {
		c.log.Infof("HF Spaces Search for: %s", query)
	}
	if res != browser.ResultIgnored {
		c.sync()
	}
	return res
}

// sync copies the browser's text lines onto the panel.
func (c *ComputerTerminal) sync() {
	if c.url != nil {
		c.url.SetText(c.Browser.URLText)
	}
	if c.status != nil {
		c.status.SetText(c.Browser.StatusText)
	}
}

func (c *ComputerTerminal) Prompt() (string, bool) {
	if c.Browser.Open {
		return locale.T("[%s] Close browser", c.CloseKey), true
	}
	if !c.inRange() {
		return "", false
	}
	return locale.T("[%s] Use computer", c.Key), true
}

func init() {
	engine.RegisterScriptWithApplier("ComputerTerminal", computerFactory, computerSerializer, computerApplier)
}

func computerFactory(ctx engine.ScriptContext, props map[string]any) engine.Component {
	b := browser.New()
	b.DefaultURL = engine.PropString(props, "defaultUrl", b.DefaultURL)
	b.SpacesHomeURL = engine.PropString(props, "spacesHomeUrl", b.SpacesHomeURL)
	b.URLText = b.DefaultURL

	return &ComputerTerminal{
		prop:             newProp(ctx, "ComputerTerminal", props, 2.0, input.KeyE),
		CloseKey:         engine.PropKey(props, "closeKey", input.KeyEscape),
		Panel:            engine.PropRef(props, "panel"),
		URLText:          engine.PropRef(props, "urlText"),
		StatusText:       engine.PropRef(props, "statusText"),
		SearchField:      engine.PropRef(props, "searchField"),
		OpenSpacesButton: engine.PropRef(props, "openSpacesButton"),
		SearchButton:     engine.PropRef(props, "searchButton"),
		CloseButton:      engine.PropRef(props, "closeButton"),
		Browser:          b,
		cursor:           ctx.Cursor,
	}
}

func computerSerializer(c engine.Component) map[string]any {
	t, ok := c.(*ComputerTerminal)
	if !ok {
		return nil
	}
	return t.zoneProps(map[string]any{
		"closeKey":         t.CloseKey.String(),
		"panel":            t.Panel.UID,
		"urlText":          t.URLText.UID,
		"statusText":       t.StatusText.UID,
		"searchField":      t.SearchField.UID,
		"openSpacesButton": t.OpenSpacesButton.UID,
		"searchButton":     t.SearchButton.UID,
		"closeButton":      t.CloseButton.UID,
		"defaultUrl":       t.Browser.DefaultURL,
		"spacesHomeUrl":    t.Browser.SpacesHomeURL,
	})
}

func computerApplier(c engine.Component, propName string, value any) bool {
	t, ok := c.(*ComputerTerminal)
	if !ok {
		return false
	}
	if propName == "closeKey" {
		k, ok := engine.KeyValue(value)
		if ok {
			t.CloseKey = k
		}
		return ok
	}
	return t.applyZone(propName, value)
}
