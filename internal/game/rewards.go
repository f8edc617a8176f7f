package game

// Rarity tiers for ancient-ruin rewards.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

// String returns the rarity name.
func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}

// rollRarity maps a uniform roll in [0, 99] to a rarity tier:
// 0-49 Common (50%), 50-79 Uncommon (30%), 80-94 Rare (15%),
// 95-98 Epic (4%), 99 Legendary (1%).
func rollRarity(roll int) Rarity {
	switch {
	case roll <= 49:
		return RarityCommon
	case roll <= 79:
		return RarityUncommon
	case roll <= 94:
		return RarityRare
	case roll <= 98:
		return RarityEpic
	default:
		return RarityLegendary
	}
}

// Reward is what a tribe receives for exploring an ancient ruin.
type Reward struct {
	Rarity Rarity `json:"rarity"`
	Roll   int    `json:"roll"`
	Effect Effect `json:"effect"`
}

// rewardFor builds the reward effect for a rarity tier.
func rewardFor(r Rarity) Effect {
	switch r {
	case RarityCommon:
		return Effect{Kind: EffectGold, Amount: 20}
	case RarityUncommon:
		return Effect{Kind: EffectGold, Amount: 45}
	case RarityRare:
		return Effect{Kind: EffectCulture, Amount: 30}
	case RarityEpic:
		return Effect{Kind: EffectCulture, Amount: 60}
	default:
		return Effect{Kind: EffectGoldenAge, Amount: goldenAgeLength}
	}
}

// collectRuin consumes the ruin on a tile and grants the exploring unit's
// owner a rolled reward.
func (g *GameState) collectRuin(u *Unit, tile *Tile) Reward {
	tile.HasRuin = false

	roll := g.rng.Intn(100)
	rarity := rollRarity(roll)
	reward := Reward{Rarity: rarity, Roll: roll, Effect: rewardFor(rarity)}

	if p := g.Players[u.Owner]; p != nil {
		applyEffect(p, reward.Effect)
	}
	g.logEvent(u.Owner, EventRuinExplored, rarity.String())
	return reward
}
