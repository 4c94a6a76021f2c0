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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/debugger/govern"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/performance/limiter"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the emulation runs for this long before measurement begins to allow the
// frame rate to settle.
var leadTime = 2 * time.Second

// Result of a performance check.
type Result struct {
	Frames   int
	Duration time.Duration
	FPS      float64
	Accuracy float64
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%", r.FPS, r.Frames, r.Duration.Seconds(), r.Accuracy)
}

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run for the specified duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument. If uncapped is false then the emulation is limited to the
// DMG frame rate.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, uncapped bool, duration string) (Result, error) {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	gb, err := hardware.NewGameBoy(nil)
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}
	gb.Logging = false

	err = gb.AttachCartridge(cartload)
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	err = gb.Start()
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	var lim *limiter.FpsLimiter
	if !uncapped {
		lim = limiter.NewFPSLimiter(limiter.DMGFrameRate)
		defer lim.End()
	}

	startFrame := gb.FrameNum()
	startTime := time.Now()
	var endTime time.Time

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has ended
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		return gb.Run(func() (govern.State, error) {
			if lim != nil {
				lim.Wait()
			}

			if gb.Killed() {
				endTime = time.Now()
				return govern.Ending, nil
			}

			select {
			case v := <-timerChan:
				if v {
					endTime = time.Now()
					return govern.Ending, timedOut
				}
				startFrame = gb.FrameNum()
				startTime = time.Now()
			default:
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	r := Result{
		Frames:   gb.FrameNum() - startFrame,
		Duration: endTime.Sub(startTime),
	}
	r.FPS, r.Accuracy = CalcFPS(r.Frames, r.Duration.Seconds())

	if output != nil {
		fmt.Fprintln(output, r)
	}

	return r, nil
}
