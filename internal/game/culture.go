package game

// Policy represents an adoptable social policy.
type Policy int

const (
	PolicyTradition Policy = iota
	PolicyLiberty
	PolicyHonor
	PolicyDiscipline
	PolicyTrade
	PolicyPhilosophy
)

// PolicyInfo describes a policy: its culture cost, prerequisites, and the
// effects applied on adoption.
type PolicyInfo struct {
	Name     string
	Cost     int
	Requires []Policy
	Effects  []Effect
}

// Info returns the static data for a policy.
func (p Policy) Info() PolicyInfo {
	switch p {
	case PolicyTradition:
		return PolicyInfo{
			Name: "Tradition",
			Cost: 25,
			Effects: []Effect{
				{Kind: EffectCityYields, Yields: Yields{Food: 1}},
			},
		}
	case PolicyLiberty:
		return PolicyInfo{
			Name: "Liberty",
			Cost: 25,
			Effects: []Effect{
				{Kind: EffectCityYields, Yields: Yields{Production: 1}},
			},
		}
	case PolicyHonor:
		return PolicyInfo{
			Name: "Honor",
			Cost: 40,
			Effects: []Effect{
				{Kind: EffectGold, Amount: 25},
			},
		}
	case PolicyDiscipline:
		return PolicyInfo{
			Name:     "Discipline",
			Cost:     40,
			Requires: []Policy{PolicyHonor},
		}
	case PolicyTrade:
		return PolicyInfo{
			Name:     "Trade",
			Cost:     40,
			Requires: []Policy{PolicyLiberty},
			Effects: []Effect{
				{Kind: EffectCityYields, Yields: Yields{Gold: 1}},
			},
		}
	case PolicyPhilosophy:
		return PolicyInfo{
			Name:     "Philosophy",
			Cost:     60,
			Requires: []Policy{PolicyTradition},
			Effects: []Effect{
				{Kind: EffectCityYields, Yields: Yields{Science: 1}},
			},
		}
	default:
		return PolicyInfo{Name: "Unknown"}
	}
}

// AllPolicies lists every adoptable policy.
func AllPolicies() []Policy {
	return []Policy{
		PolicyTradition,
		PolicyLiberty,
		PolicyHonor,
		PolicyDiscipline,
		PolicyTrade,
		PolicyPhilosophy,
	}
}

// CanAdopt returns true if the tribe meets the policy's prerequisites and
// has the culture to pay for it.
func (p *Player) CanAdopt(pol Policy) bool {
	if p.HasPolicy(pol) {
		return false
	}
	info := pol.Info()
	if p.Culture < info.Cost {
		return false
	}
	for _, req := range info.Requires {
		if !p.HasPolicy(req) {
			return false
		}
	}
	return true
}

// AdoptPolicy spends culture to adopt a policy and applies its effects.
func (g *GameState) AdoptPolicy(playerID string, pol Policy) error {
	p := g.Players[playerID]
	if p == nil {
		return ErrPlayerNotFound
	}
	if p.HasPolicy(pol) {
		return ErrAlreadyAdopted
	}
	info := pol.Info()
	for _, req := range info.Requires {
		if !p.HasPolicy(req) {
			return ErrMissingPrereq
		}
	}
	if p.Culture < info.Cost {
		return ErrNotEnoughCulture
	}
	p.Culture -= info.Cost
	p.Policies[pol] = true
	for _, e := range info.Effects {
		applyEffect(p, e)
	}
	g.logEvent(p.ID, EventPolicyAdopted, info.Name)
	return nil
}

// policyCityBonus sums the per-city yield bonuses from adopted policies.
func (p *Player) policyCityBonus() Yields {
	var bonus Yields
	for pol := range p.Policies {
		for _, e := range pol.Info().Effects {
			if e.Kind == EffectCityYields {
				bonus = bonus.Add(e.Yields)
			}
		}
	}
	return bonus
}

// Milestone represents a one-time achievement that triggers a golden age.
type Milestone int

const (
	MilestoneFirstCity Milestone = iota
	MilestoneThreeCities
	MilestoneFiveTechs
	MilestonePopulationTen
	MilestoneFirstWonder
)

// String returns the milestone name.
func (m Milestone) String() string {
	switch m {
	case MilestoneFirstCity:
		return "First City"
	case MilestoneThreeCities:
		return "Three Cities"
	case MilestoneFiveTechs:
		return "Five Technologies"
	case MilestonePopulationTen:
		return "Population Ten"
	case MilestoneFirstWonder:
		return "First Wonder"
	default:
		return "Unknown"
	}
}

// goldenAgeLength is how many turns a milestone golden age lasts.
const goldenAgeLength = 8

// checkMilestones awards any newly reached milestones. Each milestone
// fires once per tribe and starts (or extends) a golden age.
func (g *GameState) checkMilestones(p *Player) {
	reached := func(m Milestone, ok bool) {
		if !ok || p.Milestones[m] {
			return
		}
		p.Milestones[m] = true
		p.GoldenAgeTurns += goldenAgeLength
		g.logEvent(p.ID, EventGoldenAge, m.String())
	}

	cities := g.CountCities(p.ID)
	totalPop := 0
	wonders := 0
	for _, c := range g.Cities {
		if c.Owner != p.ID {
			continue
		}
		totalPop += c.Population
		for b := range c.Buildings {
			if b.Info().IsWonder {
				wonders++
			}
		}
	}

	reached(MilestoneFirstCity, cities >= 1)
	reached(MilestoneThreeCities, cities >= 3)
	reached(MilestoneFiveTechs, len(p.Techs) >= 5)
	reached(MilestonePopulationTen, totalPop >= 10)
	reached(MilestoneFirstWonder, wonders >= 1)
}

// goldenAgeBonus is the extra per-city output during a golden age.
func goldenAgeBonus() Yields {
	return Yields{Production: 1, Gold: 1}
}
