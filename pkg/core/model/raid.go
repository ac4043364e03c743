package model

import "time"

// DateFormat is the canonical calendar-date layout used for raid identity
const DateFormat = "2006-01-02"

// SignupType is a player's stated availability for a raid
type SignupType string

const (
	SignupAccepted  SignupType = "Accepted"
	SignupTentative SignupType = "Tentative"
	SignupDeclined  SignupType = "Declined"
)

// SignupTypes returns all signup responses
func SignupTypes() []SignupType {
	return []SignupType{SignupAccepted, SignupTentative, SignupDeclined}
}

func (t SignupType) IsValid() bool {
	return t == SignupAccepted || t == SignupTentative || t == SignupDeclined
}

// Signup is one player's availability response for a raid
type Signup struct {
	Time    time.Time
	Player  Player
	Type    SignupType
	Comment string
}

// EventType categorizes a raid log note
type EventType string

const (
	EventLate   EventType = "Late"
	EventAbsent EventType = "Absent"
	EventOther  EventType = "Other"
)

// EventTypes returns all event categories
func EventTypes() []EventType {
	return []EventType{EventLate, EventAbsent, EventOther}
}

func (t EventType) IsValid() bool {
	return t == EventLate || t == EventAbsent || t == EventOther
}

// Event is a free-form timestamped note attached to a raid
type Event struct {
	Time    time.Time
	Player  Player
	Type    EventType
	Comment string
}

// Raid is a scheduled guild activity identified by its start date
type Raid struct {
	Start       time.Time
	FinalizedAt *time.Time
	Signups     []Signup
	Encounters  []Encounter
	Events      []Event
}

// IsFinalized reports whether the raid is locked for edits
func (r *Raid) IsFinalized() bool {
	return r.FinalizedAt != nil
}

// AcceptedPlayers returns the distinct players whose signup is Accepted,
// in signup order
func (r *Raid) AcceptedPlayers() []Player {
	seen := make(map[string]bool)
	var players []Player
	for _, s := range r.Signups {
		if s.Type == SignupAccepted && !seen[s.Player.Name] {
			seen[s.Player.Name] = true
			players = append(players, s.Player)
		}
	}
	return players
}

// IsAccepted reports whether the named player holds an Accepted signup
func (r *Raid) IsAccepted(playerName string) bool {
	for _, s := range r.Signups {
		if s.Player.Name == playerName && s.Type == SignupAccepted {
			return true
		}
	}
	return false
}

// Encounter returns the encounter for the given boss, or nil when absent
func (r *Raid) Encounter(boss Boss) *Encounter {
	for i := range r.Encounters {
		if r.Encounters[i].Boss == boss {
			return &r.Encounters[i]
		}
	}
	return nil
}

// ContainsBoss reports whether the raid already has an encounter for the boss
func (r *Raid) ContainsBoss(boss Boss) bool {
	return r.Encounter(boss) != nil
}

// AvailableBosses returns the catalog bosses not yet added to this raid
func (r *Raid) AvailableBosses() []Boss {
	var available []Boss
	for _, b := range Bosses() {
		if !r.ContainsBoss(b) {
			available = append(available, b)
		}
	}
	return available
}

// BenchedPlayers returns the accepted players not assigned to the given
// boss encounter, in signup order. An absent encounter benches everyone.
func (r *Raid) BenchedPlayers(boss Boss) []Player {
	encounter := r.Encounter(boss)
	var benched []Player
	for _, p := range r.AcceptedPlayers() {
		if encounter == nil || !encounter.IsParticipating(p.Name) {
			benched = append(benched, p)
		}
	}
	return benched
}
