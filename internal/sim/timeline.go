// Package sim drives a World without a window: a YAML timeline says which
// keys are held, where the player stands, and which panel buttons are
// clicked, tick by tick.
package sim

import (
	"errors"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"lounge/internal/input"
	"lounge/internal/world"
)

// DefaultDT is one frame at 60 FPS.
const DefaultDT = float32(1.0 / 60)

type Timeline struct {
	DT    float32 `yaml:"dt"`
	Steps []Step  `yaml:"steps"`
}

// Step runs its actions once, then holds its keys for Ticks updates.
// Keys held by earlier steps are released first.
type Step struct {
	Ticks int       `yaml:"ticks"`
	DT    float32   `yaml:"dt"`
	Hold  []string  `yaml:"hold"`
	Mouse []float32 `yaml:"mouse"`
	Move  []float32 `yaml:"move"`
	Type  *string   `yaml:"type"`
	Click string    `yaml:"click"`
	keys  []input.Key
}

type Report struct {
	Session uuid.UUID
	Ticks   int
	Elapsed time.Duration
}

func Load(path string) (*Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read timeline: %w", err)
	}
	tl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("timeline %s: %w", path, err)
	}
	return tl, nil
}

// Parse decodes and checks a timeline. Key names are resolved here so a
// typo fails before anything runs.
func Parse(data []byte) (*Timeline, error) {
	var tl Timeline
	if err := yaml.Unmarshal(data, &tl); err != nil {
		return nil, fmt.Errorf("parse timeline: %w", err)
	}
	if tl.DT <= 0 {
		tl.DT = DefaultDT
	}
	for i := range tl.Steps {
		s := &tl.Steps[i]
		if s.Ticks < 0 {
			return nil, fmt.Errorf("step %d: negative ticks", i+1)
		}
		if s.Move != nil && len(s.Move) != 3 {
			return nil, fmt.Errorf("step %d: move needs [x, y, z]", i+1)
		}
		if s.Mouse != nil && len(s.Mouse) != 2 {
			return nil, fmt.Errorf("step %d: mouse needs [dx, dy]", i+1)
		}
		for _, name := range s.Hold {
			k, err := input.ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
			s.keys = append(s.keys, k)
		}
	}
	return &tl, nil
}

// Run plays tl against w, which must already be loaded and started. dev
// must be the device w polls.
func Run(w *world.World, dev *input.Scripted, tl *Timeline) (Report, error) {
	if dev == nil {
		return Report{}, errors.New("sim needs a scripted input device")
	}
	report := Report{Session: uuid.New()}
	log := w.Log.Named("sim")
	log.Infof("session %s: %d steps", report.Session, len(tl.Steps))

	var simulated float64
	for i, s := range tl.Steps {
		dev.ReleaseAll()
		dev.Hold(s.keys...)
		if s.Mouse != nil {
			dev.SetMouseDelta(s.Mouse[0], s.Mouse[1])
		} else {
			dev.SetMouseDelta(0, 0)
		}

		if s.Move != nil {
			if err := w.Teleport(rl.Vector3{X: s.Move[0], Y: s.Move[1], Z: s.Move[2]}); err != nil {
				return report, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		if s.Type != nil {
			if err := w.TypeText(*s.Type); err != nil {
				return report, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		if s.Click != "" {
			if err := w.Click(s.Click); err != nil {
				return report, fmt.Errorf("step %d: %w", i+1, err)
			}
		}

		dt := s.DT
		if dt <= 0 {
			dt = tl.DT
		}
		for n := 0; n < s.Ticks; n++ {
			w.Update(dt)
			report.Ticks++
			simulated += float64(dt)
		}
	}
	dev.ReleaseAll()

	report.Elapsed = time.Duration(simulated * float64(time.Second))
	log.Infof("session %s: %d ticks, %s simulated", report.Session, report.Ticks, report.Elapsed)
	return report, nil
}
