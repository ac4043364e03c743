package model

import "fmt"

// Class is a World of Warcraft character class
type Class string

const (
	ClassDeathKnight Class = "DeathKnight"
	ClassDemonHunter Class = "DemonHunter"
	ClassDruid       Class = "Druid"
	ClassHunter      Class = "Hunter"
	ClassMage        Class = "Mage"
	ClassMonk        Class = "Monk"
	ClassPaladin     Class = "Paladin"
	ClassPriest      Class = "Priest"
	ClassRogue       Class = "Rogue"
	ClassShaman      Class = "Shaman"
	ClassWarlock     Class = "Warlock"
	ClassWarrior     Class = "Warrior"
)

// Classes returns all playable classes
func Classes() []Class {
	return []Class{
		ClassDeathKnight, ClassDemonHunter, ClassDruid, ClassHunter,
		ClassMage, ClassMonk, ClassPaladin, ClassPriest,
		ClassRogue, ClassShaman, ClassWarlock, ClassWarrior,
	}
}

func (c Class) IsValid() bool {
	for _, known := range Classes() {
		if c == known {
			return true
		}
	}
	return false
}

// Role is a raid role a player can fill in an encounter
type Role string

const (
	RoleTank   Role = "Tank"
	RoleHealer Role = "Healer"
	RoleMelee  Role = "Melee"
	RoleRanged Role = "Ranged"
)

// Roles returns all raid roles in display order
func Roles() []Role {
	return []Role{RoleTank, RoleHealer, RoleMelee, RoleRanged}
}

func (r Role) IsValid() bool {
	return r == RoleTank || r == RoleHealer || r == RoleMelee || r == RoleRanged
}

// Player represents a guild member eligible for raids
type Player struct {
	Name   string
	Class  Class
	Roles  []Role
	Email  string
	Active bool
}

// HasRole reports whether the player can fill the given role
func (p Player) HasRole(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ClassString renders the player with their class for display
func (p Player) ClassString() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Class)
}
