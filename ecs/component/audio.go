package component

import "github.com/hajimehoshi/ebiten/v2/audio"

type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// Request flags the named clip to play on the next audio pass. It reports
// whether the clip exists.
func (a *Audio) Request(name string) bool {
	for i := range a.Names {
		if a.Names[i] == name && i < len(a.Play) {
			a.Play[i] = true
			return true
		}
	}
	return false
}

var AudioComponent = NewComponent[Audio]()
