package imposition

// Progress receives advisory checkpoints of a merge run. Percent is in 0..100
// and never decreases within one run.
type Progress interface {
	Notify(message string, percent int)
}

// ProgressFunc adapts a plain function to Progress.
type ProgressFunc func(message string, percent int)

func (f ProgressFunc) Notify(message string, percent int) { f(message, percent) }

type nopProgress struct{}

func (nopProgress) Notify(string, int) {}

// NopProgress discards every notification.
var NopProgress Progress = nopProgress{}
