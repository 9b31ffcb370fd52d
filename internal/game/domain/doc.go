// Package domain defines the world-state tree for a campaign: the
// characters, enemies, and NPCs in play, the active combat encounter, the
// turn gate, and narrative progress flags. The whole tree serializes to a
// single JSON document owned by the state manager; nothing outside the
// store holds long-lived references into it.
package domain
