package model

// SpellTarget is a tagged union: a spell is aimed either at the
// guardian or at a specific player. The variant is decided once at the
// request boundary, never re-inferred downstream.
type SpellTarget struct {
	guardian bool
	playerID PlayerID
}

// GuardianTarget returns the target aimed at the guardian.
func GuardianTarget() SpellTarget {
	return SpellTarget{guardian: true}
}

// PlayerTarget returns the target aimed at the given player.
func PlayerTarget(id PlayerID) SpellTarget {
	return SpellTarget{playerID: id}
}

// IsGuardian reports whether the target is the guardian.
func (t SpellTarget) IsGuardian() bool {
	return t.guardian
}

// Player returns the targeted player id and whether the target is a
// player at all.
func (t SpellTarget) Player() (PlayerID, bool) {
	if t.guardian {
		return 0, false
	}
	return t.playerID, true
}
