package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ActivityTimeFormat is the timestamp layout of activity lines.
const ActivityTimeFormat = "2006-01-02 15:04:05"

// ActivityLog writes one "Called method" line per notable domain call.
// Lines go to the configured writer and are never persisted.
type ActivityLog struct {
	out io.Writer
	now func() time.Time
}

var stdoutActivity = NewActivityLog(os.Stdout)

// NewActivityLog creates an activity log that writes to w.
func NewActivityLog(w io.Writer) *ActivityLog {
	return &ActivityLog{out: w, now: time.Now}
}

// StdoutActivity returns the process-wide activity log on standard output.
func StdoutActivity() *ActivityLog {
	return stdoutActivity
}

// WithClock returns a copy of the log that reads time from now.
func (a *ActivityLog) WithClock(now func() time.Time) *ActivityLog {
	return &ActivityLog{out: a.writer(), now: now}
}

// Record writes the activity line for method. args are the call operands in
// order; kwargs describe the receiver and are printed in key order.
func (a *ActivityLog) Record(method string, args []any, kwargs map[string]any) {
	now := time.Now
	if a != nil && a.now != nil {
		now = a.now
	}
	line := fmt.Sprintf("[%s] Called method %s with arguments (%s) {%s}\n",
		now().Format(ActivityTimeFormat), method, formatArgs(args), formatKwargs(kwargs))
	// Write failures must not change the outcome of the call being logged.
	_, _ = io.WriteString(a.writer(), line)
}

func (a *ActivityLog) writer() io.Writer {
	if a == nil || a.out == nil {
		return os.Stdout
	}
	return a.out
}

func formatArgs(args []any) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, formatValue(arg))
	}
	return strings.Join(parts, ", ")
}

func formatKwargs(kwargs map[string]any) string {
	keys := make([]string, 0, len(kwargs))
	for k := range kwargs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+formatValue(kwargs[k]))
	}
	return strings.Join(parts, ", ")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case fmt.Stringer:
		return strconv.Quote(val.String())
	default:
		return fmt.Sprint(val)
	}
}
