package game

import (
	"errors"
	"testing"

	"tribes/pkg/hex"
)

func TestAttackAdjacentOnly(t *testing.T) {
	g := newTestGame(t)
	a, _ := g.SpawnUnit("A", UnitWarrior, hex.New(2, 2))
	g.SpawnUnit("B", UnitWarrior, hex.New(5, 2))

	if _, err := g.Attack("A", a.ID, hex.New(5, 2)); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("expected ErrInvalidTarget for distant attack, got %v", err)
	}
}

func TestAttackDamagesBothSides(t *testing.T) {
	g := newTestGame(t)
	a, _ := g.SpawnUnit("A", UnitWarrior, hex.New(2, 2))
	d, _ := g.SpawnUnit("B", UnitWarrior, hex.New(3, 2))

	result, err := g.Attack("A", a.ID, hex.New(3, 2))
	if err != nil {
		t.Fatalf("Attack: %v", err)
	}
	if result.DamageToDefender < 1 {
		t.Error("defender took no damage")
	}
	if !result.DefenderKilled && d.Health >= maxHealth {
		t.Error("surviving defender lost no health")
	}
	if !result.DefenderKilled && a.Health >= maxHealth {
		t.Error("attacker took no counterattack damage")
	}
	if !a.Attacked {
		t.Error("attacker's attack not spent")
	}
}

func TestAttackOncePerTurn(t *testing.T) {
	g := newTestGame(t)
	a, _ := g.SpawnUnit("A", UnitWarrior, hex.New(2, 2))
	g.SpawnUnit("B", UnitWarrior, hex.New(3, 2))

	g.Attack("A", a.ID, hex.New(3, 2))
	if g.Units[a.ID] == nil {
		t.Skip("attacker died in first exchange")
	}
	if g.Tiles.Get(hex.New(3, 2)).UnitID == "" {
		t.Skip("defender died in first exchange")
	}
	if _, err := g.Attack("A", a.ID, hex.New(3, 2)); !errors.Is(err, ErrNoAttacksRemaining) {
		t.Errorf("expected ErrNoAttacksRemaining, got %v", err)
	}
}

func TestAttackStrongerSideHitsHarder(t *testing.T) {
	g := newTestGame(t)
	a, _ := g.SpawnUnit("A", UnitSpearman, hex.New(2, 2)) // strength 11
	g.SpawnUnit("B", UnitScout, hex.New(3, 2))            // strength 4

	result, err := g.Attack("A", a.ID, hex.New(3, 2))
	if err != nil {
		t.Fatalf("Attack: %v", err)
	}
	if result.DamageToDefender <= result.DamageToAttacker {
		t.Errorf("spearman dealt %d but scout dealt %d", result.DamageToDefender, result.DamageToAttacker)
	}
}

func TestAttackTerrainDefense(t *testing.T) {
	g := newTestGame(t)
	g.Tiles.Get(hex.New(3, 2)).Terrain = TerrainHills
	g.SpawnUnit("A", UnitWarrior, hex.New(2, 2))
	d, _ := g.SpawnUnit("B", UnitWarrior, hex.New(3, 2))

	tile := g.Tiles.Get(hex.New(3, 2))
	flat := effectiveStrength(d)
	onHills := g.defenseStrength(d, tile)
	if onHills != flat*1.25 {
		t.Errorf("hills defense %v, want %v", onHills, flat*1.25)
	}
}

func TestAttackKillAdvancesAndCaptures(t *testing.T) {
	g := newTestGame(t)
	target := hex.New(3, 2)
	city := &City{ID: "c1", Name: "Riverhold", Owner: "B", Center: target, Population: 1, Buildings: map[Building]bool{}}
	g.Cities[city.ID] = city
	g.Tiles.Get(target).CityID = city.ID
	g.Tiles.Get(target).Owner = "B"
	g.Players["B"].FoundedCity = true

	a, _ := g.SpawnUnit("A", UnitSpearman, hex.New(2, 2))
	d, _ := g.SpawnUnit("B", UnitScout, target)
	d.Health = 1 // One hit will finish it

	result, err := g.Attack("A", a.ID, target)
	if err != nil {
		t.Fatalf("Attack: %v", err)
	}
	if !result.DefenderKilled {
		t.Fatal("expected defender to die")
	}
	if !result.CityCaptured || city.Owner != "A" {
		t.Errorf("expected city capture, owner is %s", city.Owner)
	}
	if a.Pos != target {
		t.Errorf("attacker did not advance, at %v", a.Pos)
	}
	if !g.Players["B"].Eliminated {
		t.Error("B lost its only city and should be eliminated")
	}
}

func TestNonCombatantCannotAttack(t *testing.T) {
	g := newTestGame(t)
	a, _ := g.SpawnUnit("A", UnitWorker, hex.New(2, 2))
	g.SpawnUnit("B", UnitWarrior, hex.New(3, 2))
	if _, err := g.Attack("A", a.ID, hex.New(3, 2)); !errors.Is(err, ErrWrongUnitType) {
		t.Errorf("expected ErrWrongUnitType, got %v", err)
	}
}

func TestRarityMapping(t *testing.T) {
	cases := []struct {
		roll int
		want Rarity
	}{
		{0, RarityCommon},
		{49, RarityCommon},
		{50, RarityUncommon},
		{79, RarityUncommon},
		{80, RarityRare},
		{94, RarityRare},
		{95, RarityEpic},
		{98, RarityEpic},
		{99, RarityLegendary},
	}
	for _, c := range cases {
		if got := rollRarity(c.roll); got != c.want {
			t.Errorf("rollRarity(%d) = %v, want %v", c.roll, got, c.want)
		}
	}
}

func TestRarityDistributionCounts(t *testing.T) {
	counts := make(map[Rarity]int)
	for roll := 0; roll < 100; roll++ {
		counts[rollRarity(roll)]++
	}
	want := map[Rarity]int{
		RarityCommon:    50,
		RarityUncommon:  30,
		RarityRare:      15,
		RarityEpic:      4,
		RarityLegendary: 1,
	}
	for rarity, n := range want {
		if counts[rarity] != n {
			t.Errorf("%v occupies %d of 100 rolls, want %d", rarity, counts[rarity], n)
		}
	}
}
