package components

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lounge/internal/audio"
	"lounge/internal/engine"
	"lounge/internal/media"
)

var (
	_ media.Channel  = (*AudioSource)(nil)
	_ media.Playable = (*VideoPlayer)(nil)
)

func TestBuiltinsRegistered(t *testing.T) {
	names := engine.GetRegisteredComponents()
	for _, want := range []string{
		"AudioListener", "AudioSource", "BoxCollider", "Camera", "CharacterController",
		"MeshRenderer", "RectTransform", "UIButton", "UICanvas",
		"UIInputField", "UIPanel", "UIText", "VideoPlayer",
	} {
		assert.Contains(t, names, want)
	}
}

func TestCreateComponentFromSceneData(t *testing.T) {
	c, ok := engine.CreateComponent("MeshRenderer", map[string]any{
		"mesh":  "plane",
		"color": "#ccccf2",
		"size":  []any{8.0, 0.1, 6.0},
	})
	require.True(t, ok)

	mr := c.(*MeshRenderer)
	assert.Equal(t, MeshPlane, mr.MeshType)
	assert.Equal(t, rl.NewColor(204, 204, 242, 255), mr.Color)
	assert.Equal(t, rl.Vector3{X: 8, Y: 0.1, Z: 6}, mr.Size)
	assert.Equal(t, "#ccccf2ff", mr.Serialize()["color"])

	_, ok = engine.CreateComponent("Teleporter", nil)
	assert.False(t, ok)
}

func TestMalformedValuesKeepDefaults(t *testing.T) {
	c, ok := engine.CreateComponent("UIText", map[string]any{
		"fontSize":  "big",
		"color":     []any{"x"},
		"alignment": "center",
	})
	require.True(t, ok)

	text := c.(*UIText)
	assert.Equal(t, int32(20), text.FontSize)
	assert.Equal(t, rl.White, text.Color)
	assert.Equal(t, TextAlignCenter, text.Alignment)
}

func TestAudioSourcePlayPause(t *testing.T) {
	audio.InitHeadless()
	t.Cleanup(audio.Close)

	src := NewAudioSource()
	src.AudioPath = "assets/audio/radio.ogg"
	engine.NewGameObject("Radio").AddComponent(src)

	assert.True(t, src.HasClip())
	assert.False(t, src.HasMedia(), "not loaded before Start")

	src.Start()
	require.True(t, src.HasMedia())
	assert.False(t, src.IsPlaying())

	src.Play()
	assert.True(t, src.IsPlaying())
	src.Pause()
	assert.False(t, src.IsPlaying())

	src.SetVolume(0.3)
	assert.Equal(t, float32(0.3), src.GetVolume())
}

func TestAudioSourcePlayOnAwake(t *testing.T) {
	audio.InitHeadless()
	t.Cleanup(audio.Close)

	src := NewAudioSource()
	src.AudioPath = "deck.ogg"
	src.PlayOnAwake = true
	src.Start()
	src.Start()

	assert.True(t, src.IsPlaying())
}

func TestAudioSourceWithoutClip(t *testing.T) {
	audio.InitHeadless()
	t.Cleanup(audio.Close)

	src := NewAudioSource()
	src.Start()
	src.Play()

	assert.False(t, src.HasClip())
	assert.False(t, src.HasMedia())
	assert.False(t, src.IsPlaying())
}

func TestVideoPlayerRequiresMedia(t *testing.T) {
	v := NewVideoPlayer()

	v.Play()
	assert.False(t, v.IsPlaying())

	v.URL = "file://assets/video/loop.mp4"
	assert.True(t, v.HasMedia())
	v.Play()
	assert.True(t, v.IsPlaying())

	v.Pause()
	assert.False(t, v.IsPlaying())

	prepared := NewVideoPlayer()
	prepared.Prepared = true
	assert.True(t, prepared.HasMedia())
}

func TestVideoPlayerClock(t *testing.T) {
	v := NewVideoPlayer()
	v.URL = "x"
	v.Length = 2
	v.Play()

	v.Update(1.5)
	assert.InDelta(t, 1.5, v.Time(), 1e-5)
	v.Update(1.0)
	assert.InDelta(t, 0.5, v.Time(), 1e-5, "loops around")

	v.Loop = false
	v.Update(2)
	assert.False(t, v.IsPlaying())
	assert.Zero(t, v.Time())
}

func TestCharacterControllerGravityAndFloor(t *testing.T) {
	g := engine.NewGameObject("Player")
	g.Transform.Position = rl.Vector3{Y: 1}
	cc := NewCharacterController()
	g.AddComponent(cc)

	for i := 0; i < 120; i++ {
		cc.SimpleMove(rl.Vector3{}, 1.0/60)
	}

	assert.Equal(t, float32(0), g.Transform.Position.Y)
	assert.True(t, cc.IsGrounded())
}

func TestCharacterControllerBounds(t *testing.T) {
	g := engine.NewGameObject("Player")
	cc := NewCharacterController()
	cc.Deserialize(map[string]any{
		"boundsMin": []any{-4.0, -3.0},
		"boundsMax": []any{4.0, 3.0},
	})
	g.AddComponent(cc)
	require.True(t, cc.HasBounds)

	moved := cc.SimpleMove(rl.Vector3{X: 100, Y: 50, Z: -100}, 1)

	assert.InDelta(t, 3.6, g.Transform.Position.X, 1e-5)
	assert.InDelta(t, -2.6, g.Transform.Position.Z, 1e-5)
	assert.Equal(t, float32(0), g.Transform.Position.Y, "vertical velocity is ignored")
	assert.InDelta(t, 3.6, moved.X, 1e-5)
}

func TestCharacterControllerStopsAtColliders(t *testing.T) {
	scene := engine.NewScene("test")
	player := engine.NewGameObject("Player")
	cc := NewCharacterController()
	player.AddComponent(cc)
	scene.AddGameObject(player)

	desk := engine.NewGameObject("Desk")
	desk.Transform.Position = rl.Vector3{X: 2, Y: 0.5}
	desk.AddComponent(NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	scene.AddGameObject(desk)

	cc.SimpleMove(rl.Vector3{X: 6.5}, 0.2)
	assert.InDelta(t, 1.1, player.Transform.Position.X, 1e-4, "stops one radius short of the desk")

	desk.SetActive(false)
	cc.SimpleMove(rl.Vector3{X: 6.5}, 0.2)
	assert.InDelta(t, 2.4, player.Transform.Position.X, 1e-4)
}

func TestBoxColliderBounds(t *testing.T) {
	g := engine.NewGameObject("Crate")
	g.Transform.Position = rl.Vector3{X: 1, Y: 1, Z: 1}
	g.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	col := NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	col.Offset = rl.Vector3{Y: 0.5}
	g.AddComponent(col)

	b := col.Bounds()
	assert.Equal(t, rl.Vector3{X: 0, Y: 0.5, Z: 0}, b.Min)
	assert.Equal(t, rl.Vector3{X: 2, Y: 2.5, Z: 2}, b.Max)
}

func TestForward(t *testing.T) {
	f := Forward(rl.Vector3{})
	assert.InDelta(t, 1, f.Z, 1e-6)

	f = Forward(rl.Vector3{Y: 90})
	assert.InDelta(t, 1, f.X, 1e-6)
	assert.InDelta(t, 0, f.Z, 1e-6)

	f = Forward(rl.Vector3{X: 90})
	assert.InDelta(t, -1, f.Y, 1e-6, "positive pitch looks down")
}

func TestCameraFollowsParentYawAndOwnPitch(t *testing.T) {
	player := engine.NewGameObject("Player")
	player.Transform.Position = rl.Vector3{X: 1, Z: 2}
	player.Transform.Rotation.Y = 90
	head := engine.NewGameObject("Camera")
	head.Transform.Position = rl.Vector3{Y: 1.6}
	player.AddChild(head)
	cam := NewCamera()
	head.AddComponent(cam)

	rc := cam.GetRaylibCamera()
	assert.InDelta(t, 1.6, rc.Position.Y, 1e-5)
	assert.InDelta(t, rc.Position.X+1, rc.Target.X, 1e-5)
}

func TestRectTransformPointAnchor(t *testing.T) {
	rt := NewRectTransform()
	rt.SizeDelta = rl.Vector2{X: 200, Y: 100}
	rt.CalculateRect(rl.Rectangle{Width: 800, Height: 600})

	assert.Equal(t, rl.Rectangle{X: 300, Y: 250, Width: 200, Height: 100}, rt.GetScreenRect())
	assert.True(t, rt.ContainsPoint(rl.Vector2{X: 400, Y: 300}))
	assert.False(t, rt.ContainsPoint(rl.Vector2{X: 10, Y: 10}))
}

func TestRectTransformAnchorPresetFromData(t *testing.T) {
	rt := NewRectTransform()
	rt.Deserialize(map[string]any{"anchor": "stretchAll", "sizeDelta": []any{-20.0, -20.0}, "anchoredPosition": []any{10.0, 10.0}})
	rt.CalculateRect(rl.Rectangle{Width: 800, Height: 600})

	assert.Equal(t, rl.Rectangle{X: 10, Y: 10, Width: 780, Height: 580}, rt.GetScreenRect())
}

func TestUIButtonClick(t *testing.T) {
	b := NewUIButton()
	clicks := 0
	b.OnClick.AddListener(func() { clicks++ })

	assert.True(t, b.Click())
	b.Disabled = true
	assert.False(t, b.Click())
	assert.Equal(t, 1, clicks)
}

func TestUIButtonPointerClick(t *testing.T) {
	b := NewUIButton()
	clicks := 0
	b.OnClick.AddListener(func() { clicks++ })
	rect := rl.Rectangle{X: 0, Y: 0, Width: 100, Height: 40}
	inside := rl.Vector2{X: 50, Y: 20}

	b.HandlePointer(rect, Pointer{Position: inside, Pressed: true, Down: true})
	assert.Equal(t, ButtonPressed, b.State)
	b.HandlePointer(rect, Pointer{Position: inside, Released: true})
	assert.Equal(t, 1, clicks)

	// Released without a press on this button does nothing.
	b.HandlePointer(rect, Pointer{Position: inside, Released: true})
	assert.Equal(t, 1, clicks)
}

func TestUIPanelVisibility(t *testing.T) {
	g := engine.NewGameObject("Panel")
	p := NewUIPanel()
	g.AddComponent(p)

	assert.True(t, p.Visible())
	p.SetVisible(false)
	assert.False(t, g.Active)
	assert.False(t, NewUIPanel().Visible(), "detached panel is not visible")
}

func TestUIInputFieldMaxLength(t *testing.T) {
	f := NewUIInputField()
	f.MaxLength = 4
	f.SetText("diffusion")

	assert.Equal(t, "diff", f.Text)
	assert.False(t, f.Editing())
}
