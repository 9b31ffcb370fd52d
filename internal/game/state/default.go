package state

import "github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/game/domain"

// DefaultWorld builds the fixed starting world for the Lost Mine campaign:
// the three-member party, the two captured quest NPCs, no enemies, scene
// set to the intro. The stat blocks are campaign content and must stay
// byte-for-byte reproducible so golden saves compare equal.
func DefaultWorld(gameID string) *domain.WorldState {
	world := domain.NewWorldState(gameID)

	world.Characters["human_player"] = &domain.CharacterState{
		Name:           "Vex",
		CharacterClass: "Rogue",
		Race:           "Lightfoot Halfling",
		Background:     "Criminal",
		Level:          1,
		HP:             9,
		MaxHP:          9,
		AC:             14,
		Stats: domain.CharacterStats{
			Strength:     8,
			Dexterity:    17,
			Constitution: 12,
			Intelligence: 13,
			Wisdom:       12,
			Charisma:     14,
		},
		ProficiencyBonus: 2,
		SavingThrows:     []string{"dex", "int"},
		Skills: []string{
			"acrobatics",
			"deception",
			"investigation",
			"perception",
			"sleight_of_hand",
			"stealth",
		},
		Inventory: []string{
			"shortsword",
			"shortbow",
			"quiver (20 arrows)",
			"leather armor",
			"two daggers",
			"thieves tools",
			"burglar's pack",
		},
		Features: []string{
			"Sneak Attack (1d6)",
			"Expertise (Stealth, Thieves' Tools)",
			"Thieves' Cant",
		},
		RacialTraits: []string{"Lucky", "Brave", "Halfling Nimbleness", "Naturally Stealthy"},
	}

	world.Characters["ai_fighter"] = &domain.CharacterState{
		Name:           "Thokk",
		CharacterClass: "Fighter",
		Race:           "Half-Orc",
		Background:     "Soldier",
		Level:          1,
		HP:             12,
		MaxHP:          12,
		AC:             16,
		Stats: domain.CharacterStats{
			Strength:     16,
			Dexterity:    14,
			Constitution: 14,
			Intelligence: 8,
			Wisdom:       12,
			Charisma:     10,
		},
		ProficiencyBonus: 2,
		SavingThrows:     []string{"str", "con"},
		Skills:           []string{"athletics", "intimidation", "perception", "survival"},
		Inventory:        []string{"longsword", "shield", "chain mail", "handaxes (2)", "explorer's pack"},
		Features: []string{
			"Fighting Style: Defense (+1 AC)",
			"Second Wind (1d10+1 HP, bonus action, 1/rest)",
		},
		RacialTraits: []string{"Darkvision", "Menacing", "Relentless Endurance", "Savage Attacks"},
	}

	world.Characters["ai_cleric"] = &domain.CharacterState{
		Name:           "Lira",
		CharacterClass: "Cleric (Life Domain)",
		Race:           "Human",
		Background:     "Acolyte",
		Level:          1,
		HP:             10,
		MaxHP:          10,
		AC:             16,
		Stats: domain.CharacterStats{
			Strength:     14,
			Dexterity:    10,
			Constitution: 12,
			Intelligence: 10,
			Wisdom:       16,
			Charisma:     12,
		},
		ProficiencyBonus: 2,
		SavingThrows:     []string{"wis", "cha"},
		Skills:           []string{"insight", "medicine", "persuasion", "religion"},
		Inventory:        []string{"mace", "shield", "scale mail", "holy symbol", "priest's pack"},
		Features: []string{
			"Spellcasting",
			"Divine Domain: Life",
			"Disciple of Life (+2+spell level HP when healing)",
		},
		SpellsKnown: map[string][]string{
			"cantrips":           {"sacred flame", "spare the dying", "guidance"},
			"1st_level_prepared": {"bless", "cure wounds", "healing word", "shield of faith"},
			"domain_spells":      {"bless", "cure wounds"},
		},
		SpellSlots: map[string]int{"1st": 2},
	}

	world.NPCs["gundren"] = &domain.NPCState{
		Name:        "Gundren Rockseeker",
		State:       "captured",
		Location:    "cragmaw_castle",
		Disposition: "friendly",
	}
	world.NPCs["sildar"] = &domain.NPCState{
		Name:        "Sildar Hallwinter",
		State:       "captured",
		Location:    "cragmaw_hideout",
		Disposition: "friendly",
	}

	return world
}
