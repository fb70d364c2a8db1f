package figure

import "sync"

// Default size of the figures created by Gcf.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

var (
	currentMu  sync.Mutex
	currentFig *Figure
)

// Gcf returns the current figure, creating a
// DefaultWidth x DefaultHeight one if needed.
func Gcf() *Figure {
	currentMu.Lock()
	defer currentMu.Unlock()
	if currentFig == nil {
		currentFig = New(DefaultWidth, DefaultHeight)
	}
	return currentFig
}

// SetCurrent makes `f` the current figure.
func SetCurrent(f *Figure) {
	currentMu.Lock()
	defer currentMu.Unlock()
	currentFig = f
}

// Close forgets the current figure; the next call to Gcf
// will create a new one.
func Close() { SetCurrent(nil) }
