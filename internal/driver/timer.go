package driver

import (
	"fmt"
	"io"
	"sort"
	"time"
)

// timer records wall-clock duration per phase when --time is set;
// otherwise every method is a no-op, so the driver's call sites don't
// need to branch on opts.TimeIt themselves.
type timer struct {
	enabled bool
	start_  map[string]time.Time
	elapsed map[string]time.Duration
	order   []string
}

func newTimer(enabled bool) *timer {
	return &timer{
		enabled: enabled,
		start_:  make(map[string]time.Time),
		elapsed: make(map[string]time.Duration),
	}
}

func (t *timer) start(phase string) {
	if !t.enabled {
		return
	}
	t.start_[phase] = time.Now()
	t.order = append(t.order, phase)
}

func (t *timer) stop(phase string) {
	if !t.enabled {
		return
	}
	if s, ok := t.start_[phase]; ok {
		t.elapsed[phase] = time.Since(s)
	}
}

// totalMs reports the sum of every recorded phase in milliseconds. It
// returns 0 when timing was not enabled, which is fine: the cache
// table's duration column is advisory, not load-bearing.
func (t *timer) totalMs() int64 {
	var total time.Duration
	for _, d := range t.elapsed {
		total += d
	}
	return total.Milliseconds()
}

func (t *timer) report(w io.Writer) {
	names := append([]string(nil), t.order...)
	sort.Strings(names)
	var total time.Duration
	for _, name := range names {
		d := t.elapsed[name]
		total += d
		fmt.Fprintf(w, "time: %-12s %v\n", name, d)
	}
	fmt.Fprintf(w, "time: %-12s %v\n", "total", total)
}
