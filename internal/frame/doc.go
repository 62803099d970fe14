// Package frame provides the host side of frame-driven animation: a clock
// and a "run on next frame" primitive.
//
// Ticker drives callbacks from a real time.Ticker at a fixed rate. Manual is a
// deterministic scheduler for tests that only moves when told to.
//
// Both run every callback requested before a frame starts with the same frame
// timestamp, sequentially, on the goroutine that runs the frame. Callbacks
// requested while a frame is running wait for the next one.
package frame
