package game

// TribeColor represents a tribe's map color.
type TribeColor string

const (
	ColorRed    TribeColor = "red"
	ColorBlue   TribeColor = "blue"
	ColorGreen  TribeColor = "green"
	ColorYellow TribeColor = "yellow"
	ColorPurple TribeColor = "purple"
	ColorOrange TribeColor = "orange"
)

// AllColors returns all available tribe colors.
func AllColors() []TribeColor {
	return []TribeColor{
		ColorRed,
		ColorBlue,
		ColorGreen,
		ColorYellow,
		ColorPurple,
		ColorOrange,
	}
}

// Player represents one tribe in the game.
type Player struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Color TribeColor `json:"color"`

	Gold    int `json:"gold"`
	Culture int `json:"culture"`

	// Research state. Science accumulates into ResearchProgress while
	// Researching is set; finished techs move into Techs.
	Techs            map[Tech]bool `json:"techs"`
	Researching      Tech          `json:"researching"`
	ResearchProgress int           `json:"researchProgress"`

	Policies   map[Policy]bool    `json:"policies"`
	Milestones map[Milestone]bool `json:"milestones"`

	// GoldenAgeTurns counts down while a golden age is active.
	GoldenAgeTurns int `json:"goldenAgeTurns"`

	Eliminated bool `json:"eliminated"`

	// FoundedCity marks tribes that have planted at least one city, so
	// losing the last one counts as elimination rather than a slow start.
	FoundedCity bool `json:"foundedCity"`
}

// NewPlayer creates a new tribe.
func NewPlayer(id, name string, color TribeColor) *Player {
	return &Player{
		ID:          id,
		Name:        name,
		Color:       color,
		Techs:       make(map[Tech]bool),
		Researching: TechNone,
		Policies:    make(map[Policy]bool),
		Milestones:  make(map[Milestone]bool),
	}
}

// HasTech returns true if the tribe has researched the technology.
func (p *Player) HasTech(t Tech) bool {
	return p.Techs[t]
}

// HasPolicy returns true if the tribe has adopted the policy.
func (p *Player) HasPolicy(pol Policy) bool {
	return p.Policies[pol]
}

// InGoldenAge returns true while a golden age is active.
func (p *Player) InGoldenAge() bool {
	return p.GoldenAgeTurns > 0
}
