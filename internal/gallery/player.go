package gallery

// PlayerState is the state of the walkthrough video poster.
type PlayerState int

const (
	Idle PlayerState = iota
	Playing
)

func (s PlayerState) String() string {
	switch s {
	case Playing:
		return "playing"
	default:
		return "idle"
	}
}

// Player tracks whether the walkthrough video is playing. The page script
// implements the same machine; the server renders the initial state.
type Player struct {
	state PlayerState
}

// State returns the current state.
func (p *Player) State() PlayerState { return p.state }

// Click handles a click on the poster. It returns true only when the click
// starts playback; clicking while already playing does nothing.
func (p *Player) Click() bool {
	if p.state == Playing {
		return false
	}
	p.state = Playing
	return true
}

// Ended handles the video's ended event and restores the poster.
func (p *Player) Ended() { p.state = Idle }
