package sim

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lounge/internal/audio"
	"lounge/internal/cursor"
	"lounge/internal/engine"
	"lounge/internal/input"
	"lounge/internal/logging"
	"lounge/internal/scripts"
	"lounge/internal/world"
)

const room = `{
  "player": 8001,
  "objects": [
    {"uid": 8001, "name": "PlayerAvatar", "components": [{"type": "CharacterController"}]},
    {"uid": 8002, "name": "Radio", "position": [1, 0, 0], "components": [
      {"type": "AudioSource", "audioPath": "radio.ogg", "loop": true},
      {"type": "Script", "name": "Radio"}
    ]},
    {"uid": 8010, "name": "BrowserCanvas", "components": [{"type": "UICanvas"}]},
    {"uid": 8011, "name": "SearchField", "parent": 8010, "components": [{"type": "UIInputField"}]},
    {"uid": 8012, "name": "SearchButton", "parent": 8010, "components": [{"type": "UIButton", "label": "Search"}]},
    {"uid": 8013, "name": "Computer", "position": [0, 0, -1.5], "components": [
      {"type": "Script", "name": "ComputerTerminal", "props": {
        "panel": 8010, "searchField": 8011, "searchButton": 8012
      }}
    ]}
  ]
}`

func newWorld(t *testing.T, scene string) (*world.World, *input.Scripted, *bytes.Buffer) {
	t.Helper()
	audio.InitHeadless()
	t.Cleanup(audio.Close)

	dev := input.NewScripted()
	logs := &bytes.Buffer{}
	w := world.New(dev, cursor.New(nil), logging.New(logs, logging.LevelDebug, false))
	require.NoError(t, w.LoadSceneData([]byte(scene)))
	w.Start()
	return w, dev, logs
}

func TestParse(t *testing.T) {
	tl, err := Parse([]byte(`
steps:
  - ticks: 2
    hold: [e, comma]
  - ticks: 1
    dt: 0.5
    move: [1, 0, 2]
`))
	require.NoError(t, err)
	assert.Equal(t, DefaultDT, tl.DT)
	require.Len(t, tl.Steps, 2)
	assert.Equal(t, []input.Key{input.KeyE, input.KeyComma}, tl.Steps[0].keys)
	assert.Equal(t, float32(0.5), tl.Steps[1].DT)
}

func TestParseErrors(t *testing.T) {
	for name, body := range map[string]string{
		"syntax":      "steps: [",
		"unknown key": "steps:\n  - hold: [hyperspace]\n",
		"short move":  "steps:\n  - move: [1, 2]\n",
		"short mouse": "steps:\n  - mouse: [1]\n",
		"negative":    "steps:\n  - ticks: -1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestRunTogglesRadio(t *testing.T) {
	w, dev, _ := newWorld(t, room)
	tl, err := Parse([]byte(`
dt: 0.1
steps:
  - ticks: 3
    hold: [E]
  - ticks: 2
`))
	require.NoError(t, err)

	report, err := Run(w, dev, tl)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, report.Session)
	assert.Equal(t, 5, report.Ticks)
	assert.InDelta(t, 0.5, report.Elapsed.Seconds(), 1e-6)

	radio := engine.GetComponent[*scripts.Radio](w.Scene.FindByUID(8002))
	assert.True(t, radio.IsPlaying())
	assert.False(t, dev.IsKeyDown(input.KeyE), "keys are released after the run")
}

func TestRunBrowserSearch(t *testing.T) {
	w, dev, logs := newWorld(t, room)
	tl, err := Parse([]byte(`
steps:
  - ticks: 1
    hold: [E]
  - type: "distilbert"
    click: SearchButton
    ticks: 1
  - ticks: 1
    move: [30, 0, 30]
    hold: [escape]
`))
	require.NoError(t, err)

	_, err = Run(w, dev, tl)
	require.NoError(t, err)

	terminal := engine.GetComponent[*scripts.ComputerTerminal](w.Scene.FindByUID(8013))
	assert.Equal(t, "BERT Question Answering", terminal.Browser.Selected)
	assert.False(t, terminal.IsOpen())
	assert.Contains(t, logs.String(), "HF Spaces Search for: distilbert")
}

func TestRunStopsOnFailedStep(t *testing.T) {
	w, dev, _ := newWorld(t, room)
	tl, err := Parse([]byte(`
steps:
  - ticks: 2
  - click: SearchButton
  - ticks: 5
`))
	require.NoError(t, err)

	report, err := Run(w, dev, tl)
	assert.ErrorContains(t, err, "step 2")
	assert.Equal(t, 2, report.Ticks)
}

func TestRunWithoutPlayer(t *testing.T) {
	w, dev, _ := newWorld(t, `{"objects": []}`)
	tl, err := Parse([]byte("steps:\n  - move: [0, 0, 0]\n"))
	require.NoError(t, err)

	_, err = Run(w, dev, tl)
	assert.ErrorIs(t, err, world.ErrNoPlayer)
}

func TestRunNeedsDevice(t *testing.T) {
	w, _, _ := newWorld(t, `{"objects": []}`)
	_, err := Run(w, nil, &Timeline{DT: DefaultDT})
	assert.Error(t, err)
}

func TestLoungeTour(t *testing.T) {
	audio.InitHeadless()
	t.Cleanup(audio.Close)

	dev := input.NewScripted()
	logs := &bytes.Buffer{}
	w := world.New(dev, cursor.New(nil), logging.New(logs, logging.LevelDebug, false))
	require.NoError(t, w.LoadScene("../../assets/scenes/lounge.json"))
	w.Start()

	tl, err := Load("../../assets/timelines/lounge.yaml")
	require.NoError(t, err)
	report, err := Run(w, dev, tl)
	require.NoError(t, err)
	assert.Equal(t, 200, report.Ticks)

	find := func(name string) *engine.GameObject {
		g := w.Scene.FindByName(name)
		require.NotNil(t, g, name)
		return g
	}

	assert.True(t, engine.GetComponent[*scripts.Radio](find("Radio")).IsPlaying())
	assert.True(t, engine.GetComponent[*scripts.TV](find("TV")).IsPlaying())

	a, b := engine.GetComponent[*scripts.DJBooth](find("DJBooth")).Gains()
	assert.Zero(t, a)
	assert.Equal(t, float32(1), b)

	computer := engine.GetComponent[*scripts.ComputerTerminal](find("Computer"))
	assert.False(t, computer.IsOpen())
	assert.Contains(t, logs.String(), "distilbert")

	room := engine.GetComponent[*scripts.RoomCustomizer](find("ColorPanelStand"))
	assert.Equal(t, "Original Light Blue", room.CurrentName())
	assert.False(t, room.UIVisible())
	assert.True(t, w.Cursor.Locked())
}
