// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with:
//
//	fps := limiter.NewFPSLimiter(limiter.DMGFrameRate)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		runFrame()
//	}
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopherboy/hardware/clocks"
)

// DMGFrameRate is the number of frames per second produced by the DMG. The
// LCD draws 154 lines of 456 clocks each with a 4194304Hz clock.
const DMGFrameRate = clocks.FrameRate

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	// duration of one frame in nanoseconds
	secondsPerFrame atomic.Int64

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
// The ticker goroutine runs until End() is called.
func NewFPSLimiter(framesPerSecond float64) *FpsLimiter {
	lim := &FpsLimiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}
	lim.SetLimit(framesPerSecond)

	go func() {
		adjusted := time.Duration(lim.secondsPerFrame.Load())
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			time.Sleep(adjusted)

			// correct the sleep duration by the amount of time that was lost
			// waiting for the tick to be taken
			spf := time.Duration(lim.secondsPerFrame.Load())
			nt := time.Now()
			adjusted -= nt.Sub(t) - spf
			if adjusted < 0 {
				adjusted = 0
			} else if adjusted > spf {
				adjusted = spf
			}
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the limit at which the FpsLimiter waits. A value of zero or
// less is ignored.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) {
	if framesPerSecond <= 0 {
		return
	}
	lim.secondsPerFrame.Store(int64(float64(time.Second) / framesPerSecond))
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// End stops the ticker goroutine. The limiter should not be used after End()
// has been called.
func (lim *FpsLimiter) End() {
	close(lim.quit)
}
