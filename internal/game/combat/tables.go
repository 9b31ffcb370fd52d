package combat

import (
	"fmt"

	gameerrors "github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/errors"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/game/domain"
)

// Weapon describes the damage dice, governing ability, and damage type for
// one weapon a character can attack with.
type Weapon struct {
	Damage     string
	Ability    string
	DamageType string
	// Save names the defender's saving ability for spell-like attacks.
	// Informational; the resolver rolls against AC for every weapon.
	Save string
}

// Weapons maps weapon names to their stat lines. Unknown weapons fall back
// to a plain 1d6 strength slash.
var Weapons = map[string]Weapon{
	"longsword":    {Damage: "1d8", Ability: "str", DamageType: "slashing"},
	"shortsword":   {Damage: "1d6", Ability: "dex", DamageType: "piercing"},
	"shortbow":     {Damage: "1d6", Ability: "dex", DamageType: "piercing"},
	"mace":         {Damage: "1d6", Ability: "str", DamageType: "bludgeoning"},
	"scimitar":     {Damage: "1d6", Ability: "dex", DamageType: "slashing"},
	"dagger":       {Damage: "1d4", Ability: "dex", DamageType: "piercing"},
	"handaxe":      {Damage: "1d6", Ability: "str", DamageType: "slashing"},
	"sacred_flame": {Damage: "1d8", Ability: "wis", DamageType: "radiant", Save: "dex"},
}

var defaultWeapon = Weapon{Damage: "1d6", Ability: "str", DamageType: "slashing"}

// weaponFor returns the stat line for a weapon name, defaulting for
// unknown names.
func weaponFor(name string) Weapon {
	if weapon, ok := Weapons[name]; ok {
		return weapon
	}
	return defaultWeapon
}

// Archetype is the stat template a new enemy is stamped from.
type Archetype struct {
	Name        string
	HP          int
	AC          int
	AttackBonus int
	Damage      string
	DamageType  string
	DexMod      int
}

// Archetypes maps archetype tags to enemy stat blocks. DexMod feeds the
// initiative roll when combat starts.
var Archetypes = map[string]Archetype{
	"goblin": {
		Name:        "Goblin",
		HP:          7,
		AC:          15,
		AttackBonus: 4,
		Damage:      "1d6+2",
		DamageType:  "slashing",
		DexMod:      2,
	},
	"bugbear": {
		Name:        "Bugbear",
		HP:          27,
		AC:          16,
		AttackBonus: 4,
		Damage:      "2d8+2",
		DamageType:  "bludgeoning",
		DexMod:      2,
	},
	"wolf": {
		Name:        "Wolf",
		HP:          11,
		AC:          13,
		AttackBonus: 4,
		Damage:      "2d4+2",
		DamageType:  "piercing",
		DexMod:      2,
	},
}

// defaultArchetype is the goblin-equivalent stat line used when an enemy
// carries no recognizable archetype, which only happens for enemies loaded
// from saves written before the archetype tag existed.
var defaultArchetype = Archetype{
	Name:        "Enemy",
	HP:          7,
	AC:          15,
	AttackBonus: 4,
	Damage:      "1d6+2",
	DamageType:  "slashing",
	DexMod:      2,
}

// NewEnemy stamps a fresh enemy record from an archetype. An empty
// archetype defaults to goblin; an unknown one is an UNKNOWN_ARCHETYPE
// error. An empty name derives the display name from the id, so
// "goblin_2" becomes "Goblin (2)".
func NewEnemy(id, archetype, name string) (domain.EnemyState, error) {
	if archetype == "" {
		archetype = "goblin"
	}
	template, ok := Archetypes[archetype]
	if !ok {
		return domain.EnemyState{}, gameerrors.New(gameerrors.CodeUnknownArchetype,
			"unknown enemy archetype: "+archetype).WithMeta("Archetype", archetype)
	}
	if name == "" {
		name = fmt.Sprintf("%s (%s)", template.Name, idSuffix(id))
	}
	return domain.EnemyState{
		Name:      name,
		Archetype: archetype,
		HP:        template.HP,
		MaxHP:     template.HP,
		AC:        template.AC,
		State:     domain.EnemyAlive,
	}, nil
}
