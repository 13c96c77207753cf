package domain

// RunFlag is the cell controlling whether the menu loop keeps running. The
// engine owns one per session; a handler may declare a *RunFlag parameter
// and call Stop to end the loop after it returns. The flag is confined to
// the loop goroutine, so no synchronization is applied.
type RunFlag struct {
	running bool
}

// NewRunFlag returns a flag in the running state.
func NewRunFlag() *RunFlag {
	return &RunFlag{running: true}
}

// Running reports whether the loop should continue.
func (f *RunFlag) Running() bool {
	return f.running
}

// Set assigns the flag directly; true keeps the loop running.
func (f *RunFlag) Set(keepRunning bool) {
	f.running = keepRunning
}

// Stop marks the loop for termination after the current iteration.
func (f *RunFlag) Stop() {
	f.Set(false)
}
