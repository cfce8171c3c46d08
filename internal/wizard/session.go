package wizard

import (
	"time"
)

// Session is one editing session: the form under construction plus the
// navigation position. It lives in memory for the duration of the wizard and
// is discarded on a successful save or an explicit reset.
type Session struct {
	form Form
	nav  *Navigator
}

func NewSession() *Session {
	session := &Session{}
	session.nav = NewNavigator(&session.form)
	return session
}

// UpdateSection merges a JSON partial into the named section.
func (session *Session) UpdateSection(name string, raw []byte) error {
	return session.nav.withForm(func(form *Form) error {
		return form.ApplySection(name, raw)
	})
}

// SetImage records the uploaded attachment reference.
func (session *Session) SetImage(image Image) {
	_ = session.nav.withForm(func(form *Form) error {
		form.Image = image
		return nil
	})
}

// Form returns a copy of the current form contents.
func (session *Session) Form() Form {
	var snapshot Form
	_ = session.nav.withForm(func(form *Form) error {
		snapshot = *form
		return nil
	})
	return snapshot
}

func (session *Session) Navigator() *Navigator { return session.nav }

func (session *Session) Next() NavResult           { return session.nav.Next() }
func (session *Session) Previous() NavResult       { return session.nav.Previous() }
func (session *Session) GoTo(target int) NavResult { return session.nav.GoTo(target) }

func (session *Session) AutoAdvance(section int, delay time.Duration) bool {
	return session.nav.AutoAdvance(section, delay)
}

// SectionValidity returns the per-section validity vector.
func (session *Session) SectionValidity() [SectionCount]bool {
	var validity [SectionCount]bool
	_ = session.nav.withForm(func(form *Form) error {
		for index := 0; index < SectionCount; index++ {
			validity[index] = form.SectionValid(index)
		}
		return nil
	})
	return validity
}

// Valid reports whether the whole form is complete.
func (session *Session) Valid() bool {
	valid := false
	_ = session.nav.withForm(func(form *Form) error {
		valid = form.Valid()
		return nil
	})
	return valid
}

// FirstInvalidSection returns the first incomplete section, if any.
func (session *Session) FirstInvalidSection() (int, bool) {
	return session.nav.FindFirstInvalidSection()
}

// Reset clears the whole form and returns navigation to the first section.
func (session *Session) Reset() {
	session.nav.CancelAutoAdvance()
	_ = session.nav.withForm(func(form *Form) error {
		form.Reset()
		return nil
	})
	session.nav.Reset()
}

// ResetSensoryOnward keeps identity and roast, clears the rest, and places
// the user on the sensory section for another cup of the same coffee.
func (session *Session) ResetSensoryOnward() {
	session.nav.CancelAutoAdvance()
	_ = session.nav.withForm(func(form *Form) error {
		form.ResetSensoryOnward()
		return nil
	})
	session.nav.SetCurrent(SectionSensory)
}

// Snapshot is the durable form of a session: what the pending-submission
// store persists across an authentication redirect.
type Snapshot struct {
	Identity       Identity  `json:"identity"`
	Roast          Roast     `json:"roast"`
	Sensory        Sensory   `json:"sensory"`
	Flavor         Flavor    `json:"flavor"`
	Score          Score     `json:"score"`
	Image          Image     `json:"image"`
	CurrentSection int       `json:"current_section"`
	Timestamp      time.Time `json:"timestamp"`
}

// Snapshot captures the session at a point in time.
func (session *Session) Snapshot() Snapshot {
	form := session.Form()
	return Snapshot{
		Identity:       form.Identity,
		Roast:          form.Roast,
		Sensory:        form.Sensory,
		Flavor:         form.Flavor,
		Score:          form.Score,
		Image:          form.Image,
		CurrentSection: session.nav.Current(),
		Timestamp:      time.Now(),
	}
}

// Restore loads a snapshot back into the live session.
func (session *Session) Restore(snapshot Snapshot) {
	session.nav.CancelAutoAdvance()
	_ = session.nav.withForm(func(form *Form) error {
		form.Identity = snapshot.Identity
		form.Roast = snapshot.Roast
		form.Sensory = snapshot.Sensory
		form.Flavor = snapshot.Flavor
		form.Score = snapshot.Score
		form.Image = snapshot.Image
		return nil
	})
	session.nav.SetCurrent(snapshot.CurrentSection)
}
