package entity

import (
	"time"

	"snake-sim/game/types"
)

// Food is the single item currently on the field. It is replaced, not
// mutated, when eaten; only the Flash flag flips in place. Flash is
// engine-stored but host-rendered: non-regular food blinks at whatever
// cadence the host toggles it on.
type Food struct {
	Pos       types.Point
	Kind      types.FoodKind
	SpawnedAt time.Time
	Flash     bool
}
