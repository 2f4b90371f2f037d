package component

type Player struct {
	// MoveSpeed is in world pixels per update tick.
	MoveSpeed float64
}

var PlayerComponent = NewComponent[Player]()
