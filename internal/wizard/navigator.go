package wizard

import (
	"sync"
	"time"
)

// NavResult reports the outcome of a navigation attempt. Rejections are
// expected user-flow conditions, so they travel as values rather than errors.
type NavResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Navigator tracks which wizard section is active and gates forward progress
// on section validity. It owns the auto-advance timers: the most recent
// schedule per section wins, and any manual navigation cancels them all.
// All methods are safe for concurrent use; timer callbacks take the same
// lock as manual calls, so a stale timer can never advance past a section
// the user already left.
type Navigator struct {
	mu      sync.Mutex
	form    *Form
	current int
	timers  map[int]*time.Timer
}

func NewNavigator(form *Form) *Navigator {
	return &Navigator{
		form:   form,
		timers: make(map[int]*time.Timer),
	}
}

// Current returns the active section index.
func (nav *Navigator) Current() int {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	return nav.current
}

func validationFailure(index int) NavResult {
	return NavResult{Success: false, Error: "Please complete all required fields in: " + SectionTitle(index)}
}

// Next advances to the following section when the current one is valid.
func (nav *Navigator) Next() NavResult {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	nav.cancelTimersLocked()
	return nav.nextLocked()
}

func (nav *Navigator) nextLocked() NavResult {
	if !nav.form.SectionValid(nav.current) {
		return validationFailure(nav.current)
	}
	if nav.current < SectionCount-1 {
		nav.current++
		return NavResult{Success: true}
	}
	return NavResult{Success: false, Error: "Already on the last section"}
}

// Previous moves one section back; going backward never requires validity.
func (nav *Navigator) Previous() NavResult {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	nav.cancelTimersLocked()
	if nav.current > 0 {
		nav.current--
		return NavResult{Success: true}
	}
	return NavResult{Success: false}
}

// GoTo jumps to a target section. Backward jumps are unconditional; skipping
// ahead requires the current section to be valid.
func (nav *Navigator) GoTo(target int) NavResult {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	nav.cancelTimersLocked()
	if target < 0 || target >= SectionCount {
		return NavResult{Success: false, Error: "Unknown section"}
	}
	if target > nav.current && !nav.form.SectionValid(nav.current) {
		return validationFailure(nav.current)
	}
	nav.current = target
	return NavResult{Success: true}
}

// AutoAdvance schedules a deferred Next for the given section. The schedule
// is taken only when the section is still active and already valid; a second
// schedule for the same section supersedes the first. Returns whether a
// timer was armed.
func (nav *Navigator) AutoAdvance(section int, delay time.Duration) bool {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	if section != nav.current || !nav.form.SectionValid(section) {
		return false
	}
	if previous, ok := nav.timers[section]; ok {
		previous.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		nav.fireAutoAdvance(section, timer)
	})
	nav.timers[section] = timer
	return true
}

// fireAutoAdvance is the timer callback. It advances only when its own timer
// is still the one registered for the section: a callback that expired while
// a reschedule was replacing it would otherwise consume the new schedule.
func (nav *Navigator) fireAutoAdvance(section int, timer *time.Timer) {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	if nav.timers[section] != timer {
		return
	}
	delete(nav.timers, section)
	if section != nav.current {
		return
	}
	nav.nextLocked()
}

// CancelAutoAdvance drops every pending auto-advance timer.
func (nav *Navigator) CancelAutoAdvance() {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	nav.cancelTimersLocked()
}

func (nav *Navigator) cancelTimersLocked() {
	for section, timer := range nav.timers {
		timer.Stop()
		delete(nav.timers, section)
	}
}

// FindFirstInvalidSection scans the sections in order and returns the first
// failing index, used to report the blocking section when a save is rejected.
func (nav *Navigator) FindFirstInvalidSection() (int, bool) {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	return nav.form.firstInvalidSection()
}

func (form *Form) firstInvalidSection() (int, bool) {
	for index := 0; index < SectionCount; index++ {
		if !form.SectionValid(index) {
			return index, true
		}
	}
	return 0, false
}

// Reset cancels pending timers and returns to the first section.
func (nav *Navigator) Reset() {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	nav.cancelTimersLocked()
	nav.current = 0
}

// SetCurrent restores a saved position, clamped to the valid range.
func (nav *Navigator) SetCurrent(index int) {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	if index >= 0 && index < SectionCount {
		nav.current = index
	}
}

// withForm runs fn on the navigator's form under its lock. Session methods
// use it so form mutations never race a firing timer.
func (nav *Navigator) withForm(fn func(*Form) error) error {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	return fn(nav.form)
}
