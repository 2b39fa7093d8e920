package model

// Rank is a player's privilege ordinal. Lower is more privileged:
// 0 Priest (best) down to 3 Novice (worst, default at sign-up).
type Rank int

const (
	RankPriest   Rank = 0
	RankSupreme  Rank = 1
	RankAbsolute Rank = 2
	RankNovice   Rank = 3
)

var rankLabels = map[Rank]string{
	RankPriest:   "Priest",
	RankSupreme:  "Supreme",
	RankAbsolute: "Absolute",
	RankNovice:   "Novice",
}

// String returns the display label for the rank, or "Unknown" for
// values outside the closed table.
func (r Rank) String() string {
	if label, ok := rankLabels[r]; ok {
		return label
	}
	return "Unknown"
}

// Valid reports whether the rank is within the closed table.
func (r Rank) Valid() bool {
	_, ok := rankLabels[r]
	return ok
}

// Category classifies an item: 0 Tome, 1 Armament, 2 Relic.
type Category int

const (
	CategoryTome     Category = 0
	CategoryArmament Category = 1
	CategoryRelic    Category = 2
)

var categoryLabels = map[Category]string{
	CategoryTome:     "Tome",
	CategoryArmament: "Armament",
	CategoryRelic:    "Relic",
}

func (c Category) String() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "Unknown"
}

// Valid reports whether the category is within the closed table.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Risk is an item's danger ordinal. Lower is more dangerous:
// 0 Deity (strongest/rarest) down to 9 Angel. The ten-step ladder
// follows the angelic hierarchy.
type Risk int

const (
	RiskDeity          Risk = 0
	RiskSeraphim       Risk = 1
	RiskCherubim       Risk = 2
	RiskThrones        Risk = 3
	RiskDominions      Risk = 4
	RiskVirtues        Risk = 5
	RiskPowers         Risk = 6
	RiskPrincipalities Risk = 7
	RiskArchangels     Risk = 8
	RiskAngels         Risk = 9
)

var riskLabels = map[Risk]string{
	RiskDeity:          "Deity",
	RiskSeraphim:       "Seraphim",
	RiskCherubim:       "Cherubim",
	RiskThrones:        "Thrones",
	RiskDominions:      "Dominions",
	RiskVirtues:        "Virtues",
	RiskPowers:         "Powers",
	RiskPrincipalities: "Principalities",
	RiskArchangels:     "Archangels",
	RiskAngels:         "Angels",
}

func (r Risk) String() string {
	if label, ok := riskLabels[r]; ok {
		return label
	}
	return "Unknown"
}

// Valid reports whether the risk tier is within the closed table.
func (r Risk) Valid() bool {
	_, ok := riskLabels[r]
	return ok
}

// JailLabel renders the jail flag for display.
func JailLabel(jailed bool) string {
	if jailed {
		return "Jailed"
	}
	return "Free"
}
