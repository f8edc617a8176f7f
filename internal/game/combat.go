package game

import (
	"tribes/pkg/hex"
)

// CombatResult describes the outcome of one attack.
type CombatResult struct {
	AttackStrength   float64 `json:"attackStrength"`
	DefenseStrength  float64 `json:"defenseStrength"`
	DamageToDefender int     `json:"damageToDefender"`
	DamageToAttacker int     `json:"damageToAttacker"`
	DefenderKilled   bool    `json:"defenderKilled"`
	AttackerKilled   bool    `json:"attackerKilled"`
	CityCaptured     bool    `json:"cityCaptured"`
}

// effectiveStrength scales a unit's base strength by its remaining health.
// A wounded unit fights at no less than half strength.
func effectiveStrength(u *Unit) float64 {
	base := float64(u.Type.Stats().Strength)
	return base * (0.5 + 0.5*float64(u.Health)/maxHealth)
}

// defenseStrength is the defender's strength on its tile, including the
// terrain modifier and city walls.
func (g *GameState) defenseStrength(defender *Unit, tile *Tile) float64 {
	strength := effectiveStrength(defender)
	strength *= 1 + tile.Terrain.DefenseModifier()
	if tile.CityID != "" {
		if city := g.Cities[tile.CityID]; city != nil && city.Buildings[BuildingWalls] {
			strength *= 1.25
		}
	}
	return strength
}

// baseDamage is the damage dealt when both sides are equally strong.
const baseDamage = 30

// damageRoll converts a strength ratio into damage with bounded random
// variance, mirroring the tabletop feel of low-chance combat: the
// stronger side always wins a lopsided fight, close fights can go
// either way.
func (g *GameState) damageRoll(ratio float64) int {
	variance := 0.8 + 0.4*g.rng.Float64() // 0.8 .. 1.2
	dmg := int(baseDamage * ratio * variance)
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// Attack resolves an attack by the given unit on an adjacent tile. Both
// sides take damage proportional to the strength ratio. If the defender
// dies, the attacker advances onto the tile; taking a city center tile
// captures the city.
func (g *GameState) Attack(playerID, unitID string, target hex.Hex) (*CombatResult, error) {
	attacker := g.Units[unitID]
	if attacker == nil {
		return nil, ErrUnitNotFound
	}
	if attacker.Owner != playerID || g.CurrentPlayerID != playerID {
		return nil, ErrNotYourTurn
	}
	if !attacker.IsCombatant() {
		return nil, ErrWrongUnitType
	}
	if attacker.Attacked {
		return nil, ErrNoAttacksRemaining
	}
	if hex.Distance(attacker.Pos, target) != 1 {
		return nil, ErrInvalidTarget
	}

	tile := g.Tiles.Get(target)
	if tile == nil || tile.UnitID == "" {
		return nil, ErrInvalidTarget
	}
	defender := g.Units[tile.UnitID]
	if defender == nil || defender.Owner == playerID {
		return nil, ErrInvalidTarget
	}

	result := &CombatResult{
		AttackStrength:  effectiveStrength(attacker),
		DefenseStrength: g.defenseStrength(defender, tile),
	}
	result.DamageToDefender = g.damageRoll(result.AttackStrength / result.DefenseStrength)
	result.DamageToAttacker = g.damageRoll(result.DefenseStrength / result.AttackStrength)

	attacker.Attacked = true
	defender.Health -= result.DamageToDefender
	if defender.Health <= 0 {
		result.DefenderKilled = true
		g.removeUnit(defender)
	} else {
		attacker.Health -= result.DamageToAttacker
		if attacker.Health <= 0 {
			result.AttackerKilled = true
			g.removeUnit(attacker)
		}
	}

	// Advance into the cleared tile.
	if result.DefenderKilled && !result.AttackerKilled && attacker.MovesLeft >= 1 {
		g.Tiles.Get(attacker.Pos).UnitID = ""
		attacker.Pos = target
		attacker.MovesLeft--
		tile.UnitID = attacker.ID

		if tile.CityID != "" {
			if city := g.Cities[tile.CityID]; city != nil && city.Owner != playerID {
				g.captureCity(city, playerID)
				result.CityCaptured = true
			}
		}
	}

	if result.DefenderKilled {
		g.logEvent(playerID, EventAttackSuccess, defender.Type.Stats().Name)
		g.checkElimination(defender.Owner)
	} else {
		g.logEvent(playerID, EventAttackRepelled, defender.Type.Stats().Name)
	}
	return result, nil
}
