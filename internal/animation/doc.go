// Package animation drives one-shot transitions.
//
// A transition calls a render function once per frame with the eased
// progress of the run, from 0 to 1, and then reports how it ended:
//
//	h, err := animation.Start(animation.Options{
//	    Render:   func(t float64) { bar.SetOffset(t) },
//	    Duration: 200 * time.Millisecond,
//	    Easing:   animation.EaseOutCubic,
//	})
//
// Frames come from a frame.Scheduler. Callbacks run on the scheduler's
// goroutine, so render functions should not block.
package animation
