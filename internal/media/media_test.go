package media

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"lounge/internal/logging"
)

type fakePlayer struct {
	media   bool
	playing bool
	plays   int
	pauses  int
}

func (f *fakePlayer) HasMedia() bool  { return f.media }
func (f *fakePlayer) IsPlaying() bool { return f.playing }
func (f *fakePlayer) Play()           { f.plays++; f.playing = true }
func (f *fakePlayer) Pause()          { f.pauses++; f.playing = false }

func testLogger() (*logging.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.New(&buf, logging.LevelDebug, false), &buf
}

func TestToggleAlternates(t *testing.T) {
	log, buf := testLogger()
	p := &fakePlayer{media: true}

	assert.Equal(t, Started, Toggle(p, "Radio", log))
	assert.True(t, p.playing)
	assert.Contains(t, buf.String(), "Radio Playing")

	assert.Equal(t, Paused, Toggle(p, "Radio", log))
	assert.False(t, p.playing)
	assert.Contains(t, buf.String(), "Radio Paused")

	assert.Equal(t, 1, p.plays)
	assert.Equal(t, 1, p.pauses)
}

func TestToggleWithoutMediaIsNoop(t *testing.T) {
	log, buf := testLogger()
	p := &fakePlayer{}

	assert.Equal(t, Ignored, Toggle(p, "TV", log))
	assert.Zero(t, p.plays)
	assert.Zero(t, p.pauses)
	assert.False(t, p.playing)
	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "No media assigned")
}

func TestToggleNilPlayable(t *testing.T) {
	log, _ := testLogger()

	assert.Equal(t, Ignored, Toggle(nil, "Radio", log))
	assert.Equal(t, Ignored, Toggle(nil, "Radio", nil), "nil logger is allowed")
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "ignored", Ignored.String())
	assert.Equal(t, "paused", Paused.String())
	assert.Equal(t, "started", Started.String())
}
