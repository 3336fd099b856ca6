package game

import "errors"

// Round-ending and rejected-move conditions, recovered inside Game
var (
	ErrSelfEatingStep       = errors.New("this step is self-eating")
	ErrSelfTurningDirection = errors.New("this direction would cause a self-turning step")
	ErrKilledByWall         = errors.New("killed by the wall")
)
