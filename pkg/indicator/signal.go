package indicator

// Signal is a coalescing redraw request. Any number of calls to
// [Signal.Notify] before the receiver reads [Signal.C] result in a single
// pending notification.
type Signal struct {
	ch chan struct{}
}

// NewSignal creates a new [Signal].
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Notify requests a redraw. It never blocks.
func (s *Signal) Notify() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// C returns the channel that receives pending redraw requests.
func (s *Signal) C() <-chan struct{} {
	return s.ch
}
