package system

import (
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"go.uber.org/zap"
)

// clipForEvent maps gameplay events to the rocket's sound clips.
var clipForEvent = map[ecs.EventType]string{
	ecs.EventLaunched: "launch",
	ecs.EventLanded:   "land",
	ecs.EventCrashed:  "crash",
}

type AudioSystem struct {
	logger *zap.Logger
}

func NewAudioSystem(logger *zap.Logger) *AudioSystem {
	return &AudioSystem{logger: orNop(logger)}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	a.queue(w)

	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := min(len(audioComp.Play), len(audioComp.Players))

		for i := 0; i < count; i++ {
			if !audioComp.Stop[i] {
				continue
			}
			if player := audioComp.Players[i]; player != nil && player.IsPlaying() {
				player.Pause()
			}
			audioComp.Stop[i] = false
		}

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}
			if player := audioComp.Players[i]; player != nil {
				player.SetVolume(audioComp.Volume[i])
				if err := player.Rewind(); err != nil {
					a.logger.Warn("rewind clip", zap.String("clip", audioComp.Names[i]), zap.Error(err))
				}
				player.Play()
			}
			audioComp.Play[i] = false
		}
	})
}

// queue flags a clip for each sound-worthy event of the frame.
func (a *AudioSystem) queue(w *ecs.World) {
	for _, evt := range w.Events().Items() {
		name, ok := clipForEvent[evt.Type]
		if !ok {
			continue
		}
		audioComp, ok := ecs.Get(w, evt.Body, component.AudioComponent.Kind())
		if !ok {
			continue
		}
		if !audioComp.Request(name) {
			a.logger.Debug("no clip for event", zap.String("event", string(evt.Type)), zap.String("clip", name))
		}
	}
}
