package runner

// AudioNotifier receives fire-and-forget sound cues. The simulation never
// waits on or branches on them.
type AudioNotifier interface {
	OnRunStart()
	OnJump()
	OnCollect()
	OnGameOver()
	OnWinStage(stage WinStage)
	OnEnvelopeOpen()
}

// Renderer draws one frame from a read-only snapshot.
type Renderer interface {
	DrawFrame(snap Snapshot)
}

// NopAudio is an AudioNotifier that plays nothing.
type NopAudio struct{}

func (NopAudio) OnRunStart()         {}
func (NopAudio) OnJump()             {}
func (NopAudio) OnCollect()          {}
func (NopAudio) OnGameOver()         {}
func (NopAudio) OnWinStage(WinStage) {}
func (NopAudio) OnEnvelopeOpen()     {}
