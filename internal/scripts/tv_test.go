package scripts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lounge/internal/components"
	"lounge/internal/engine"
	"lounge/internal/input"
	"lounge/internal/media"
)

func TestTVRefusesWithoutURL(t *testing.T) {
	r := newRig(t)
	tv := r.object("TV", 2, 0, components.NewVideoPlayer())
	script := r.script(tv, "TV", nil).(*TV)
	r.start()

	r.press(input.KeyE)

	assert.False(t, script.IsPlaying())
	assert.Contains(t, r.logs.String(), "[WARN] TV: VideoPlayer not prepared or no URL set.")
}

func TestTVToggles(t *testing.T) {
	r := newRig(t)
	vp := components.NewVideoPlayer()
	vp.URL = "file://assets/video/loop.mp4"
	tv := r.object("TV", 3, 0, vp)
	script := r.script(tv, "TV", nil).(*TV)
	r.start()

	r.press(input.KeyE)
	assert.True(t, script.IsPlaying())
	assert.Greater(t, vp.Time(), float32(0))

	assert.Equal(t, media.Paused, script.Toggle())
	assert.False(t, vp.IsPlaying())
}

func TestTVPreparedWithoutURL(t *testing.T) {
	r := newRig(t)
	vp := components.NewVideoPlayer()
	vp.Prepared = true
	tv := r.object("TV", 0, 0, vp)
	script := r.script(tv, "TV", nil).(*TV)
	r.start()

	assert.Equal(t, media.Started, script.Toggle())
}

func TestTVStopsPlayOnAwake(t *testing.T) {
	r := newRig(t)
	vp := components.NewVideoPlayer()
	vp.URL = "x"
	vp.PlayOnAwake = true
	tv := r.object("TV", 0, 0, vp)
	script := r.script(tv, "TV", nil).(*TV)
	r.start()

	assert.False(t, script.IsPlaying())
}

func TestTVWithoutVideoPlayerDisables(t *testing.T) {
	r := newRig(t)
	tv := r.object("TV", 0, 0)
	script := r.script(tv, "TV", nil).(*TV)
	r.start()

	assert.False(t, engine.IsEnabled(script))
	assert.Contains(t, r.logs.String(), "VideoPlayer component not found")
}
