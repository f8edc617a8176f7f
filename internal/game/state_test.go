package game

import (
	"testing"

	"tribes/pkg/hex"
)

// newTestMap builds an all-grassland map of the given size.
func newTestMap(width, height int) *TileMap {
	m := NewTileMap(width, height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			coord := RowCoord(col, row)
			m.Set(&Tile{Coord: coord, Terrain: TerrainGrassland})
		}
	}
	return m
}

// newTestGame creates a two-tribe game on an open grassland map with a
// fixed seed.
func newTestGame(t *testing.T) *GameState {
	t.Helper()
	g := NewGame("test-game", Settings{MapWidth: 12, MapHeight: 12, TurnLimit: 100, Seed: 7}, newTestMap(12, 12))
	g.AddPlayer(NewPlayer("A", "Ash Walkers", ColorRed))
	g.AddPlayer(NewPlayer("B", "River Folk", ColorBlue))
	return g
}

func TestEndTurnRotation(t *testing.T) {
	g := newTestGame(t)
	if g.CurrentPlayerID != "A" {
		t.Fatalf("expected A to start, got %s", g.CurrentPlayerID)
	}
	if err := g.EndTurn("B"); err != ErrNotYourTurn {
		t.Errorf("expected ErrNotYourTurn for B, got %v", err)
	}
	if err := g.EndTurn("A"); err != nil {
		t.Fatalf("EndTurn(A): %v", err)
	}
	if g.CurrentPlayerID != "B" || g.Turn != 1 {
		t.Errorf("after A ends: current=%s turn=%d, want B turn 1", g.CurrentPlayerID, g.Turn)
	}
	if err := g.EndTurn("B"); err != nil {
		t.Fatalf("EndTurn(B): %v", err)
	}
	if g.CurrentPlayerID != "A" || g.Turn != 2 {
		t.Errorf("after B ends: current=%s turn=%d, want A turn 2", g.CurrentPlayerID, g.Turn)
	}
}

func TestEndTurnSkipsEliminated(t *testing.T) {
	g := newTestGame(t)
	g.AddPlayer(NewPlayer("C", "Stone Kin", ColorGreen))
	g.Players["B"].Eliminated = true
	if err := g.EndTurn("A"); err != nil {
		t.Fatalf("EndTurn(A): %v", err)
	}
	if g.CurrentPlayerID != "C" {
		t.Errorf("expected turn to skip eliminated B, got %s", g.CurrentPlayerID)
	}
}

func TestTurnPipelineResetsUnits(t *testing.T) {
	g := newTestGame(t)
	u, err := g.SpawnUnit("A", UnitScout, hex.New(2, 2))
	if err != nil {
		t.Fatalf("SpawnUnit: %v", err)
	}
	u.MovesLeft = 0
	u.Attacked = true

	g.EndTurn("A")
	g.EndTurn("B")

	if u.MovesLeft != UnitScout.Stats().Moves {
		t.Errorf("moves not reset: %v", u.MovesLeft)
	}
	if u.Attacked {
		t.Error("attack flag not reset")
	}
}

func TestVictoryLastTribeStanding(t *testing.T) {
	g := newTestGame(t)
	g.Players["B"].Eliminated = true
	if !g.IsGameOver() {
		t.Fatal("expected game over with one tribe left")
	}
	w := g.GetWinner()
	if w == nil || w.ID != "A" {
		t.Errorf("expected A to win, got %v", w)
	}
}

func TestVictoryTurnLimitByScore(t *testing.T) {
	g := newTestGame(t)
	g.Turn = g.Settings.TurnLimit + 1
	g.Players["A"].Techs[TechMining] = true
	if !g.IsGameOver() {
		t.Fatal("expected game over past turn limit")
	}
	w := g.GetWinner()
	if w == nil || w.ID != "A" {
		t.Errorf("expected A to win on score, got %v", w)
	}
}

func TestVictoryTiedScoreNoWinner(t *testing.T) {
	g := newTestGame(t)
	g.Turn = g.Settings.TurnLimit + 1
	if w := g.GetWinner(); w != nil {
		t.Errorf("expected no winner on tie, got %s", w.ID)
	}
}

func TestScoreCounts(t *testing.T) {
	g := newTestGame(t)
	p := g.Players["A"]
	p.Techs[TechMining] = true
	p.Techs[TechAgriculture] = true
	p.Policies[PolicyTradition] = true
	g.Cities["c1"] = &City{ID: "c1", Owner: "A", Population: 3, Buildings: map[Building]bool{}}

	want := (10 + 2*3) + 5*2 + 3*1
	if got := g.Score("A"); got != want {
		t.Errorf("Score(A) = %d, want %d", got, want)
	}
}

func TestEliminationRequiresFoundedCity(t *testing.T) {
	g := newTestGame(t)
	// A tribe that never founded a city is not eliminated for having none.
	g.checkElimination("A")
	if g.Players["A"].Eliminated {
		t.Error("tribe eliminated before ever founding a city")
	}

	g.Players["A"].FoundedCity = true
	g.checkElimination("A")
	if !g.Players["A"].Eliminated {
		t.Error("tribe with no cities and no settlers should be eliminated")
	}
}

func TestEliminationSparedBySettler(t *testing.T) {
	g := newTestGame(t)
	g.Players["A"].FoundedCity = true
	if _, err := g.SpawnUnit("A", UnitSettler, hex.New(3, 3)); err != nil {
		t.Fatalf("SpawnUnit: %v", err)
	}
	g.checkElimination("A")
	if g.Players["A"].Eliminated {
		t.Error("tribe with a surviving settler should not be eliminated")
	}
}

func TestTileMapJSONRoundTrip(t *testing.T) {
	m := newTestMap(4, 3)
	m.Get(hex.New(1, 0)).Resource = ResourceWheat
	m.Get(hex.New(0, 1)).HasRuin = true

	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back TileMap
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Count() != m.Count() || back.Width != m.Width || back.Height != m.Height {
		t.Fatalf("round-trip size mismatch: %d vs %d", back.Count(), m.Count())
	}
	for coord, tile := range m.Tiles {
		got := back.Get(coord)
		if got == nil {
			t.Fatalf("tile %v missing after round-trip", coord)
		}
		if got.Terrain != tile.Terrain || got.Resource != tile.Resource || got.HasRuin != tile.HasRuin {
			t.Errorf("tile %v mismatch: %+v vs %+v", coord, got, tile)
		}
		if got.Coord != coord {
			t.Errorf("tile %v carries wrong coord %v", coord, got.Coord)
		}
	}
}
