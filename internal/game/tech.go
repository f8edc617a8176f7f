package game

// Tech represents a researchable technology.
type Tech int

const (
	TechNone Tech = iota
	TechAgriculture
	TechPottery
	TechMining
	TechAnimalHusbandry
	TechArchery
	TechBronzeWorking
	TechWriting
	TechMasonry
	TechTheWheel
	TechCurrency
)

// TechInfo describes a technology: its science cost, prerequisites, and
// the effects applied when research completes.
type TechInfo struct {
	Name     string
	Cost     int
	Requires []Tech
	Effects  []Effect
}

// Info returns the static data for a technology.
func (t Tech) Info() TechInfo {
	switch t {
	case TechAgriculture:
		return TechInfo{
			Name: "Agriculture",
			Cost: 20,
			Effects: []Effect{
				{Kind: EffectUnlockImprovement, Improvement: ImprovementFarm},
			},
		}
	case TechPottery:
		return TechInfo{
			Name:     "Pottery",
			Cost:     35,
			Requires: []Tech{TechAgriculture},
			Effects: []Effect{
				{Kind: EffectUnlockBuilding, Building: BuildingGranary},
			},
		}
	case TechMining:
		return TechInfo{
			Name: "Mining",
			Cost: 35,
			Effects: []Effect{
				{Kind: EffectUnlockImprovement, Improvement: ImprovementMine},
			},
		}
	case TechAnimalHusbandry:
		return TechInfo{
			Name:     "Animal Husbandry",
			Cost:     35,
			Requires: []Tech{TechAgriculture},
			Effects: []Effect{
				{Kind: EffectGold, Amount: 20},
			},
		}
	case TechArchery:
		return TechInfo{
			Name:     "Archery",
			Cost:     35,
			Requires: []Tech{TechAnimalHusbandry},
			Effects: []Effect{
				{Kind: EffectUnlockUnit, Unit: UnitArcher},
			},
		}
	case TechBronzeWorking:
		return TechInfo{
			Name:     "Bronze Working",
			Cost:     55,
			Requires: []Tech{TechMining},
			Effects: []Effect{
				{Kind: EffectUnlockUnit, Unit: UnitSpearman},
				{Kind: EffectUnlockBuilding, Building: BuildingBarracks},
			},
		}
	case TechWriting:
		return TechInfo{
			Name:     "Writing",
			Cost:     55,
			Requires: []Tech{TechPottery},
			Effects: []Effect{
				{Kind: EffectUnlockBuilding, Building: BuildingLibrary},
			},
		}
	case TechMasonry:
		return TechInfo{
			Name:     "Masonry",
			Cost:     55,
			Requires: []Tech{TechMining},
			Effects: []Effect{
				{Kind: EffectUnlockBuilding, Building: BuildingWalls},
			},
		}
	case TechTheWheel:
		return TechInfo{
			Name:     "The Wheel",
			Cost:     55,
			Requires: []Tech{TechAnimalHusbandry},
			Effects: []Effect{
				{Kind: EffectUnlockImprovement, Improvement: ImprovementRoad},
			},
		}
	case TechCurrency:
		return TechInfo{
			Name:     "Currency",
			Cost:     80,
			Requires: []Tech{TechBronzeWorking, TechPottery},
			Effects: []Effect{
				{Kind: EffectUnlockBuilding, Building: BuildingMarket},
				{Kind: EffectGold, Amount: 50},
			},
		}
	default:
		return TechInfo{Name: "None"}
	}
}

// AllTechs lists every researchable technology.
func AllTechs() []Tech {
	return []Tech{
		TechAgriculture,
		TechPottery,
		TechMining,
		TechAnimalHusbandry,
		TechArchery,
		TechBronzeWorking,
		TechWriting,
		TechMasonry,
		TechTheWheel,
		TechCurrency,
	}
}

// EffectKind discriminates the effect payload.
type EffectKind int

const (
	EffectUnlockUnit EffectKind = iota
	EffectUnlockBuilding
	EffectUnlockImprovement
	EffectGold
	EffectCulture
	EffectGoldenAge
	EffectCityYields
)

// Effect is a tagged variant describing a single game-state change granted
// by a tech, policy, building, or reward. Only the fields relevant to the
// Kind are set.
type Effect struct {
	Kind        EffectKind  `json:"kind"`
	Unit        UnitType    `json:"unit,omitempty"`
	Building    Building    `json:"building,omitempty"`
	Improvement Improvement `json:"improvement,omitempty"`
	Amount      int         `json:"amount,omitempty"`
	Yields      Yields      `json:"yields,omitempty"`
}

// applyEffect folds a single effect into the player's state. Unlock
// effects carry no player state: availability is derived from the tech and
// policy sets when building or training.
func applyEffect(p *Player, e Effect) {
	switch e.Kind {
	case EffectGold:
		p.Gold += e.Amount
	case EffectCulture:
		p.Culture += e.Amount
	case EffectGoldenAge:
		p.GoldenAgeTurns += e.Amount
	}
}

// CanResearch returns true if the tribe can start researching the tech.
func (p *Player) CanResearch(t Tech) bool {
	if t == TechNone || p.HasTech(t) {
		return false
	}
	for _, req := range t.Info().Requires {
		if !p.HasTech(req) {
			return false
		}
	}
	return true
}

// StartResearch sets the tribe's research target.
func (g *GameState) StartResearch(playerID string, t Tech) error {
	p := g.Players[playerID]
	if p == nil {
		return ErrPlayerNotFound
	}
	if p.HasTech(t) {
		return ErrAlreadyResearched
	}
	if !p.CanResearch(t) {
		return ErrMissingPrereq
	}
	if p.Researching != t {
		p.Researching = t
		p.ResearchProgress = 0
	}
	return nil
}

// addScience advances the tribe's current research and completes it when
// the cost is met, applying the tech's effects.
func (g *GameState) addScience(p *Player, amount int) {
	if p.Researching == TechNone {
		return
	}
	p.ResearchProgress += amount
	info := p.Researching.Info()
	if p.ResearchProgress < info.Cost {
		return
	}
	finished := p.Researching
	p.Techs[finished] = true
	p.Researching = TechNone
	p.ResearchProgress = 0
	for _, e := range info.Effects {
		applyEffect(p, e)
	}
	g.logEvent(p.ID, EventTechResearched, info.Name)
}

// nextResearchable returns an arbitrary tech the tribe could research
// next, or TechNone when the tree is exhausted.
func (p *Player) nextResearchable() Tech {
	for _, t := range AllTechs() {
		if p.CanResearch(t) {
			return t
		}
	}
	return TechNone
}
