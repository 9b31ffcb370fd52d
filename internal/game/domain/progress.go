package domain

// NarrativeProgress tracks story progression. The chapter 1 beats have
// dedicated fields; anything else lands in the CustomFlags bag. SetFlag
// and GetFlag are uniform over both, so callers never need to know which
// storage path a name uses.
type NarrativeProgress struct {
	WagonDiscovered  bool `json:"wagon_discovered"`
	HorsesFoundDead  bool `json:"horses_found_dead"`
	AmbushTriggered  bool `json:"ambush_triggered"`
	GoblinsDefeated  bool `json:"goblins_defeated"`
	GoblinTrailFound bool `json:"goblin_trail_found"`
	HideoutEntered   bool `json:"hideout_entered"`
	SildarRescued    bool `json:"sildar_rescued"`
	KlargDefeated    bool `json:"klarg_defeated"`

	CustomFlags map[string]bool `json:"custom_flags"`
}

// namedFlag returns a pointer to the dedicated field for a known flag
// name, or nil for ad hoc names.
func (p *NarrativeProgress) namedFlag(name string) *bool {
	switch name {
	case "wagon_discovered":
		return &p.WagonDiscovered
	case "horses_found_dead":
		return &p.HorsesFoundDead
	case "ambush_triggered":
		return &p.AmbushTriggered
	case "goblins_defeated":
		return &p.GoblinsDefeated
	case "goblin_trail_found":
		return &p.GoblinTrailFound
	case "hideout_entered":
		return &p.HideoutEntered
	case "sildar_rescued":
		return &p.SildarRescued
	case "klarg_defeated":
		return &p.KlargDefeated
	}
	return nil
}

// SetFlag sets a progress flag by name. Known names update their dedicated
// field; unknown names go into the custom bag.
func (p *NarrativeProgress) SetFlag(name string, value bool) {
	if field := p.namedFlag(name); field != nil {
		*field = value
		return
	}
	if p.CustomFlags == nil {
		p.CustomFlags = map[string]bool{}
	}
	p.CustomFlags[name] = value
}

// GetFlag returns a progress flag by name, false if never set.
func (p *NarrativeProgress) GetFlag(name string) bool {
	if field := p.namedFlag(name); field != nil {
		return *field
	}
	return p.CustomFlags[name]
}
