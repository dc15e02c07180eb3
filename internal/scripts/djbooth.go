package scripts

import (
	"lounge/internal/components"
	"lounge/internal/engine"
	"lounge/internal/input"
	"lounge/internal/locale"
	"lounge/internal/media"
	"lounge/internal/mixer"
)

// DJBooth drives two turntables. Keys 1 and 2 toggle each deck; holding
// comma or period slides the crossfader, which splits volume linearly
// between the decks.
type DJBooth struct {
	prop

	Deck1 engine.GameObjectRef
	Deck2 engine.GameObjectRef

	Deck1Key     input.Key
	Deck2Key     input.Key
	FadeLeftKey  input.Key
	FadeRightKey input.Key

	Fader *mixer.Crossfade

	decks [2]media.Channel
}

var deckNames = [2]string{"Turntable 1", "Turntable 2"}

func (d *DJBooth) Start() {
	src1 := engine.GetComponent[*components.AudioSource](d.lookup(d.Deck1))
	src2 := engine.GetComponent[*components.AudioSource](d.lookup(d.Deck2))
	if src1 == nil || src2 == nil {
		d.log.Errorf("One or both AudioSources are not assigned.")
		d.Disable()
		return
	}

	for i, src := range []*components.AudioSource{src1, src2} {
		if !src.HasClip() {
			d.log.Warnf("AudioSource%d has no AudioClip assigned.", i+1)
		}
		src.Start()
		if src.PlayOnAwake {
			src.PlayOnAwake = false
			src.Stop()
		}
		d.decks[i] = src
	}

	d.applyGains()
	d.checkPlayer()
}

func (d *DJBooth) Update(deltaTime float32) {
	if d.inRange() {
		if d.pressed(d.Deck1Key) {
			d.ToggleDeck(0)
		}
		if d.pressed(d.Deck2Key) {
			d.ToggleDeck(1)
		}
		d.Fader.Step(deltaTime, d.down(d.FadeLeftKey), d.down(d.FadeRightKey))
	}
	// Gains follow the fader every tick, so changes made elsewhere show up too.
	d.applyGains()
}

// ToggleDeck plays or pauses deck 0 or 1.
func (d *DJBooth) ToggleDeck(i int) media.Outcome {
	if i < 0 || i >= len(d.decks) || d.decks[i] == nil {
		return media.Ignored
	}
	return media.Toggle(d.decks[i], deckNames[i], d.log)
}

// Gains returns the volumes the decks are set to.
func (d *DJBooth) Gains() (a, b float32) {
	return d.Fader.Gains()
}

func (d *DJBooth) applyGains() {
	a, b := d.Fader.Gains()
	if d.decks[0] != nil {
		d.decks[0].SetVolume(a)
	}
	if d.decks[1] != nil {
		d.decks[1].SetVolume(b)
	}
}

func (d *DJBooth) Prompt() (string, bool) {
	if !d.inRange() {
		return "", false
	}
	return locale.T("[%s]/[%s] Turntables   [%s]/[%s] Crossfade %.0f%%",
		d.Deck1Key, d.Deck2Key, d.FadeLeftKey, d.FadeRightKey, d.Fader.Value*100), true
}

func init() {
	engine.RegisterScriptWithApplier("DJBooth", djBoothFactory, djBoothSerializer, djBoothApplier)
}

func djBoothFactory(ctx engine.ScriptContext, props map[string]any) engine.Component {
	return &DJBooth{
		prop:         newProp(ctx, "DJBooth", props, 3.0, input.KeyNull),
		Deck1:        engine.PropRef(props, "deck1"),
		Deck2:        engine.PropRef(props, "deck2"),
		Deck1Key:     engine.PropKey(props, "deck1Key", input.KeyOne),
		Deck2Key:     engine.PropKey(props, "deck2Key", input.KeyTwo),
		FadeLeftKey:  engine.PropKey(props, "fadeLeftKey", input.KeyComma),
		FadeRightKey: engine.PropKey(props, "fadeRightKey", input.KeyPeriod),
		Fader: mixer.New(
			engine.PropFloat(props, "crossfade", mixer.DefaultValue),
			engine.PropFloat(props, "crossfadeSpeed", mixer.DefaultRate),
		),
	}
}

func djBoothSerializer(c engine.Component) map[string]any {
	d, ok := c.(*DJBooth)
	if !ok {
		return nil
	}
	return map[string]any{
		"radius":         d.Radius,
		"deck1":          d.Deck1.UID,
		"deck2":          d.Deck2.UID,
		"deck1Key":       d.Deck1Key.String(),
		"deck2Key":       d.Deck2Key.String(),
		"fadeLeftKey":    d.FadeLeftKey.String(),
		"fadeRightKey":   d.FadeRightKey.String(),
		"crossfade":      d.Fader.Value,
		"crossfadeSpeed": d.Fader.Rate,
	}
}

func djBoothApplier(c engine.Component, propName string, value any) bool {
	d, ok := c.(*DJBooth)
	if !ok {
		return false
	}
	var target *input.Key
	switch propName {
	case "radius":
		return d.applyZone(propName, value)
	case "crossfade":
		if v, ok := value.(float64); ok {
			d.Fader.Value = mixer.Clamp01(float32(v))
			return true
		}
		return false
	case "crossfadeSpeed":
		if v, ok := value.(float64); ok {
			d.Fader.Rate = float32(v)
			return true
		}
		return false
	case "deck1Key":
		target = &d.Deck1Key
	case "deck2Key":
		target = &d.Deck2Key
	case "fadeLeftKey":
		target = &d.FadeLeftKey
	case "fadeRightKey":
		target = &d.FadeRightKey
	default:
		return false
	}
	k, ok := engine.KeyValue(value)
	if ok {
		*target = k
	}
	return ok
}
