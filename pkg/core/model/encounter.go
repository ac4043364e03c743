package model

// Boss identifies a boss encounter in the raid instance
type Boss string

const (
	BossTaloc         Boss = "Taloc"
	BossMother        Boss = "Mother"
	BossFetidDevourer Boss = "FetidDevourer"
	BossZekvoz        Boss = "Zekvoz"
	BossVectis        Boss = "Vectis"
	BossZul           Boss = "Zul"
	BossMythrax       Boss = "Mythrax"
	BossGhuun         Boss = "Ghuun"

	// BossUnknown is a sentinel for unrecognized bosses and is never
	// offered when adding encounters
	BossUnknown Boss = "Unknown"
)

// Bosses returns the boss catalog in instance order, excluding BossUnknown
func Bosses() []Boss {
	return []Boss{
		BossTaloc, BossMother, BossFetidDevourer, BossZekvoz,
		BossVectis, BossZul, BossMythrax, BossGhuun,
	}
}

func (b Boss) IsValid() bool {
	for _, known := range Bosses() {
		if b == known {
			return true
		}
	}
	return false
}

// Assignment pairs a player with the role they fill in one encounter
type Assignment struct {
	Player Player
	Role   Role
}

// Encounter is a single boss fight within a raid, with its assigned roster
type Encounter struct {
	Boss        Boss
	Assignments []Assignment
}

// IsParticipating reports whether the named player is assigned to this encounter
func (e *Encounter) IsParticipating(playerName string) bool {
	for _, a := range e.Assignments {
		if a.Player.Name == playerName {
			return true
		}
	}
	return false
}

// PlayersOfRole returns the players assigned the given role, in assignment order
func (e *Encounter) PlayersOfRole(role Role) []Player {
	var players []Player
	for _, a := range e.Assignments {
		if a.Role == role {
			players = append(players, a.Player)
		}
	}
	return players
}

// NumParticipants returns the total number of assigned players
func (e *Encounter) NumParticipants() int {
	return len(e.Assignments)
}

// Assign adds the player under the given role. A player already assigned keeps
// their position but takes the new role; the latest assignment wins.
func (e *Encounter) Assign(player Player, role Role) {
	for i, a := range e.Assignments {
		if a.Player.Name == player.Name {
			e.Assignments[i].Role = role
			return
		}
	}
	e.Assignments = append(e.Assignments, Assignment{Player: player, Role: role})
}

// Remove drops the named player from the roster; absent players are a no-op
func (e *Encounter) Remove(playerName string) {
	for i, a := range e.Assignments {
		if a.Player.Name == playerName {
			e.Assignments = append(e.Assignments[:i], e.Assignments[i+1:]...)
			return
		}
	}
}
