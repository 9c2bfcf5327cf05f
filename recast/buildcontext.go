package recast

import (
	"fmt"
	"time"
)

// LogCategory classifies a message logged through BuildContext.
type LogCategory int

const (
	RC_LOG_PROGRESS LogCategory = 1 + iota // A progress log entry.
	RC_LOG_WARNING                         // A warning log entry.
	RC_LOG_ERROR                           // An error log entry.
)

const maxMessages = 1000

// TimerLabel identifies one phase of the build pipeline for accumulated
// timing purposes. See BuildContext.
type TimerLabel int

const (
	// TimerTotal is the user-defined total time of the build.
	TimerTotal TimerLabel = iota
	TimerFilterLowObstacles
	TimerFilterBorder
	TimerFilterWalkable
	TimerErodeArea
	TimerBuildDistanceField
	TimerBuildDistanceFieldDist
	TimerBuildDistanceFieldBlur
	TimerBuildRegions
	TimerBuildRegionsWatershed
	TimerBuildRegionsExpand
	TimerBuildRegionsFlood
	TimerBuildRegionsFilter
	TimerBuildLayerRegions
	// RC_MAX_TIMERS is the number of timer slots. (Used for iterating timers.)
	RC_MAX_TIMERS
)

// BuildContext is the build context threaded through every pipeline pass:
// it accumulates per-phase timings and a capped ring of log messages.
//
// This type does not provide logging or timer functionality beyond simple
// accumulation - it exists so a caller can inspect where time went and
// what warnings/errors a build emitted, without each pass needing its own
// ad-hoc reporting convention.
type BuildContext struct {
	startTime [RC_MAX_TIMERS]time.Time
	accTime   [RC_MAX_TIMERS]time.Duration

	messages    [maxMessages]string
	numMessages int

	logEnabled   bool
	timerEnabled bool
}

// NewBuildContext returns a BuildContext with logging and timers enabled or
// disabled according to state.
func NewBuildContext(state bool) *BuildContext {
	return &BuildContext{
		logEnabled:   state,
		timerEnabled: state,
	}
}

// EnableLog enables or disables logging.
func (ctx *BuildContext) EnableLog(state bool) {
	ctx.logEnabled = state
}

// EnableTimer enables or disables the performance timers.
func (ctx *BuildContext) EnableTimer(state bool) {
	ctx.timerEnabled = state
}

// ResetLog clears all log entries.
func (ctx *BuildContext) ResetLog() {
	if ctx.logEnabled {
		ctx.numMessages = 0
	}
}

// ResetTimers clears all performance timers. (Resets all to unused.)
func (ctx *BuildContext) ResetTimers() {
	if ctx.timerEnabled {
		for i := TimerLabel(0); i < RC_MAX_TIMERS; i++ {
			ctx.accTime[i] = time.Duration(0)
		}
	}
}

func (ctx *BuildContext) Progressf(format string, v ...interface{}) {
	ctx.Log(RC_LOG_PROGRESS, format, v...)
}

func (ctx *BuildContext) Warningf(format string, v ...interface{}) {
	ctx.Log(RC_LOG_WARNING, format, v...)
}

func (ctx *BuildContext) Errorf(format string, v ...interface{}) {
	ctx.Log(RC_LOG_ERROR, format, v...)
}

// Log appends a formatted message to the log, if logging is enabled and the
// message ring is not yet full.
func (ctx *BuildContext) Log(category LogCategory, format string, v ...interface{}) {
	if ctx.logEnabled && ctx.numMessages < maxMessages {
		switch category {
		case RC_LOG_PROGRESS:
			ctx.messages[ctx.numMessages] = "PROG " + fmt.Sprintf(format, v...)
		case RC_LOG_WARNING:
			ctx.messages[ctx.numMessages] = "WARN " + fmt.Sprintf(format, v...)
		case RC_LOG_ERROR:
			ctx.messages[ctx.numMessages] = "ERR " + fmt.Sprintf(format, v...)
		}
		ctx.numMessages++
	}
}

// DumpLog prints the header followed by every logged message to stdout.
func (ctx *BuildContext) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for i := 0; i < ctx.numMessages; i++ {
		fmt.Println(ctx.messages[i])
	}
}

// LogCount returns the number of messages logged so far.
func (ctx *BuildContext) LogCount() int {
	return ctx.numMessages
}

// LogText returns log message text at index i.
func (ctx *BuildContext) LogText(i int32) string {
	return ctx.messages[i]
}

// StartTimer starts the specified performance timer.
func (ctx *BuildContext) StartTimer(label TimerLabel) {
	if ctx.timerEnabled {
		ctx.startTime[label] = time.Now()
	}
}

// StopTimer stops the specified performance timer and accumulates the
// elapsed time.
func (ctx *BuildContext) StopTimer(label TimerLabel) {
	if ctx.timerEnabled {
		delta := time.Since(ctx.startTime[label])
		ctx.accTime[label] += delta
	}
}

// AccumulatedTime returns the total accumulated time of the specified
// performance timer, or 0 if timers are disabled.
func (ctx *BuildContext) AccumulatedTime(label TimerLabel) time.Duration {
	if ctx.timerEnabled {
		return ctx.accTime[label]
	}
	return time.Duration(0)
}
