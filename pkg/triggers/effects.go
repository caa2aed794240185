package triggers

// PlaySound asks the audio layer to play a named sound
type PlaySound string

// StopAmbient silences ambient audio while leaving the current state
type StopAmbient struct{}

// EnterLockdown puts a zone into lockdown on entry to the target state
type EnterLockdown struct {
	Zone string
}
