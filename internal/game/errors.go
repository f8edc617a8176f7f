package game

import "errors"

// Game errors
var (
	ErrNotYourTurn        = errors.New("not your turn")
	ErrGameOver           = errors.New("game is over")
	ErrUnitNotFound       = errors.New("unit not found")
	ErrCityNotFound       = errors.New("city not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrInvalidTarget      = errors.New("invalid target")
	ErrCannotReach        = errors.New("unit cannot reach destination")
	ErrNoMovesLeft        = errors.New("unit has no movement left")
	ErrTileOccupied       = errors.New("tile is already occupied")
	ErrWrongUnitType      = errors.New("unit cannot perform that action")
	ErrCitySiteInvalid    = errors.New("cannot found a city here")
	ErrNotEnoughGold      = errors.New("not enough gold")
	ErrNotEnoughCulture   = errors.New("not enough culture")
	ErrMissingPrereq      = errors.New("prerequisite not met")
	ErrAlreadyResearched  = errors.New("technology already researched")
	ErrAlreadyAdopted     = errors.New("policy already adopted")
	ErrNothingInQueue     = errors.New("production queue is empty")
	ErrPlayerEliminated   = errors.New("player has been eliminated")
	ErrNoAttacksRemaining = errors.New("unit has already attacked this turn")
)
