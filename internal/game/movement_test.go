package game

import (
	"errors"
	"testing"

	"tribes/pkg/hex"
)

func TestMoveUnitStraight(t *testing.T) {
	g := newTestGame(t)
	u, _ := g.SpawnUnit("A", UnitScout, hex.New(2, 2))

	path, err := g.MoveUnit("A", u.ID, hex.New(5, 2))
	if err != nil {
		t.Fatalf("MoveUnit: %v", err)
	}
	if len(path) != 4 {
		t.Errorf("path length %d, want 4", len(path))
	}
	if u.Pos != hex.New(5, 2) {
		t.Errorf("unit at %v, want (5,2)", u.Pos)
	}
	if u.MovesLeft != 0 {
		t.Errorf("moves left %v, want 0", u.MovesLeft)
	}
	if g.Tiles.Get(hex.New(2, 2)).UnitID != "" {
		t.Error("origin tile still references unit")
	}
	if g.Tiles.Get(hex.New(5, 2)).UnitID != u.ID {
		t.Error("destination tile missing unit reference")
	}
}

func TestMoveUnitBeyondBudget(t *testing.T) {
	g := newTestGame(t)
	u, _ := g.SpawnUnit("A", UnitWarrior, hex.New(2, 2)) // 2 moves

	_, err := g.MoveUnit("A", u.ID, hex.New(6, 2))
	if !errors.Is(err, ErrCannotReach) {
		t.Errorf("expected ErrCannotReach, got %v", err)
	}
	if u.Pos != hex.New(2, 2) {
		t.Errorf("failed move should not relocate unit, at %v", u.Pos)
	}
}

func TestMoveUnitThroughForestCosts(t *testing.T) {
	g := newTestGame(t)
	g.Tiles.Get(hex.New(3, 2)).Terrain = TerrainForest
	u, _ := g.SpawnUnit("A", UnitWarrior, hex.New(2, 2)) // 2 moves

	// Entering the forest costs 2, exhausting the warrior.
	if _, err := g.MoveUnit("A", u.ID, hex.New(3, 2)); err != nil {
		t.Fatalf("MoveUnit into forest: %v", err)
	}
	if u.MovesLeft != 0 {
		t.Errorf("moves left %v, want 0 after forest entry", u.MovesLeft)
	}
}

func TestMoveUnitRoadFlattensCost(t *testing.T) {
	g := newTestGame(t)
	forest := g.Tiles.Get(hex.New(3, 2))
	forest.Terrain = TerrainForest
	forest.Improvement = ImprovementRoad
	u, _ := g.SpawnUnit("A", UnitWarrior, hex.New(2, 2))

	if _, err := g.MoveUnit("A", u.ID, hex.New(3, 2)); err != nil {
		t.Fatalf("MoveUnit onto road: %v", err)
	}
	if u.MovesLeft != 1 {
		t.Errorf("moves left %v, want 1 on road", u.MovesLeft)
	}
}

func TestMoveUnitBlockedByOtherUnit(t *testing.T) {
	g := newTestGame(t)
	u, _ := g.SpawnUnit("A", UnitScout, hex.New(2, 2))
	if _, err := g.SpawnUnit("B", UnitWarrior, hex.New(3, 2)); err != nil {
		t.Fatalf("SpawnUnit blocker: %v", err)
	}

	_, err := g.MoveUnit("A", u.ID, hex.New(3, 2))
	if !errors.Is(err, ErrCannotReach) {
		t.Errorf("expected ErrCannotReach onto occupied tile, got %v", err)
	}
}

func TestMoveUnitWrongTurn(t *testing.T) {
	g := newTestGame(t)
	u, _ := g.SpawnUnit("B", UnitScout, hex.New(2, 2))
	if _, err := g.MoveUnit("B", u.ID, hex.New(3, 2)); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("expected ErrNotYourTurn, got %v", err)
	}
}

func TestMoveUnitCollectsRuin(t *testing.T) {
	g := newTestGame(t)
	tile := g.Tiles.Get(hex.New(3, 2))
	tile.HasRuin = true
	u, _ := g.SpawnUnit("A", UnitScout, hex.New(2, 2))

	before := g.Players["A"].Gold + g.Players["A"].Culture + g.Players["A"].GoldenAgeTurns
	if _, err := g.MoveUnit("A", u.ID, hex.New(3, 2)); err != nil {
		t.Fatalf("MoveUnit: %v", err)
	}
	if tile.HasRuin {
		t.Error("ruin not consumed")
	}
	after := g.Players["A"].Gold + g.Players["A"].Culture + g.Players["A"].GoldenAgeTurns
	if after <= before {
		t.Error("ruin granted no reward")
	}
}

func TestReachableTilesRespectsTerrain(t *testing.T) {
	g := newTestGame(t)
	g.Tiles.Get(hex.New(3, 2)).Terrain = TerrainMountain
	u, _ := g.SpawnUnit("A", UnitWarrior, hex.New(2, 2))

	reach, err := g.ReachableTiles(u.ID)
	if err != nil {
		t.Fatalf("ReachableTiles: %v", err)
	}
	if _, ok := reach[hex.New(3, 2)]; ok {
		t.Error("mountain reported reachable")
	}
	if got := reach[u.Pos]; got != u.Type.Stats().Moves {
		t.Errorf("start remaining %v, want full movement", got)
	}
	for coord := range reach {
		if g.Tiles.Get(coord) == nil {
			t.Errorf("reachable tile %v is off the map", coord)
		}
	}
}

func TestBuildImprovementRequiresTechAndTerrain(t *testing.T) {
	g := newTestGame(t)
	u, _ := g.SpawnUnit("A", UnitWorker, hex.New(2, 2))

	if err := g.BuildImprovement("A", u.ID, ImprovementFarm); !errors.Is(err, ErrMissingPrereq) {
		t.Errorf("expected ErrMissingPrereq without Agriculture, got %v", err)
	}

	g.Players["A"].Techs[TechAgriculture] = true
	if err := g.BuildImprovement("A", u.ID, ImprovementFarm); err != nil {
		t.Fatalf("BuildImprovement: %v", err)
	}
	if g.Tiles.Get(hex.New(2, 2)).Improvement != ImprovementFarm {
		t.Error("farm not placed")
	}

	g.Players["A"].Techs[TechMining] = true
	u2, _ := g.SpawnUnit("A", UnitWorker, hex.New(3, 3))
	if err := g.BuildImprovement("A", u2.ID, ImprovementMine); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("expected ErrInvalidTarget for mine on grassland, got %v", err)
	}
}

func TestBuildImprovementNonWorker(t *testing.T) {
	g := newTestGame(t)
	u, _ := g.SpawnUnit("A", UnitWarrior, hex.New(2, 2))
	g.Players["A"].Techs[TechAgriculture] = true
	if err := g.BuildImprovement("A", u.ID, ImprovementFarm); !errors.Is(err, ErrWrongUnitType) {
		t.Errorf("expected ErrWrongUnitType, got %v", err)
	}
}
