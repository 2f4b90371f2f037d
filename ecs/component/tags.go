package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// AttackerTag marks the entity scripted attacks are launched from.
type AttackerTag struct{}

var AttackerTagComponent = NewComponent[AttackerTag]()
