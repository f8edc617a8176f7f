package game

import (
	"errors"
	"testing"
)

func TestStartResearchPrerequisites(t *testing.T) {
	g := newTestGame(t)
	p := g.Players["A"]

	if err := g.StartResearch("A", TechArchery); !errors.Is(err, ErrMissingPrereq) {
		t.Errorf("expected ErrMissingPrereq for Archery, got %v", err)
	}
	if err := g.StartResearch("A", TechAgriculture); err != nil {
		t.Fatalf("StartResearch(Agriculture): %v", err)
	}
	if p.Researching != TechAgriculture {
		t.Errorf("researching %v, want Agriculture", p.Researching)
	}
}

func TestResearchCompletionAppliesEffects(t *testing.T) {
	g := newTestGame(t)
	p := g.Players["A"]
	p.Techs[TechAgriculture] = true

	if err := g.StartResearch("A", TechAnimalHusbandry); err != nil {
		t.Fatalf("StartResearch: %v", err)
	}
	goldBefore := p.Gold
	g.addScience(p, TechAnimalHusbandry.Info().Cost)

	if !p.HasTech(TechAnimalHusbandry) {
		t.Fatal("research did not complete")
	}
	if p.Researching != TechNone {
		t.Errorf("researching %v after completion, want none", p.Researching)
	}
	if p.Gold != goldBefore+20 {
		t.Errorf("gold effect not applied: %d", p.Gold)
	}
}

func TestResearchProgressCarries(t *testing.T) {
	g := newTestGame(t)
	p := g.Players["A"]
	g.StartResearch("A", TechAgriculture)

	g.addScience(p, 12)
	if p.HasTech(TechAgriculture) {
		t.Fatal("research completed early")
	}
	if p.ResearchProgress != 12 {
		t.Errorf("progress %d, want 12", p.ResearchProgress)
	}
	g.addScience(p, 8)
	if !p.HasTech(TechAgriculture) {
		t.Error("research did not complete at cost")
	}
}

func TestResearchAlreadyKnown(t *testing.T) {
	g := newTestGame(t)
	g.Players["A"].Techs[TechMining] = true
	if err := g.StartResearch("A", TechMining); !errors.Is(err, ErrAlreadyResearched) {
		t.Errorf("expected ErrAlreadyResearched, got %v", err)
	}
}

func TestTechTreeReachable(t *testing.T) {
	// Researching in any greedy order must eventually cover the whole
	// tree: no tech is locked behind a cycle.
	p := NewPlayer("X", "Test", ColorGreen)
	for i := 0; i < len(AllTechs()); i++ {
		next := p.nextResearchable()
		if next == TechNone {
			t.Fatalf("tree exhausted after %d techs", len(p.Techs))
		}
		p.Techs[next] = true
	}
	if len(p.Techs) != len(AllTechs()) {
		t.Errorf("researched %d techs, want %d", len(p.Techs), len(AllTechs()))
	}
}

func TestTechUnlocksUnit(t *testing.T) {
	found := false
	for _, e := range TechArchery.Info().Effects {
		if e.Kind == EffectUnlockUnit && e.Unit == UnitArcher {
			found = true
		}
	}
	if !found {
		t.Error("Archery does not unlock the archer")
	}
	if req := UnitArcher.Stats().Requires; req != TechArchery {
		t.Errorf("archer requires %v, want Archery", req)
	}
}
