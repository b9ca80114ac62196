package shared

// ResourceKind identifies one of the colony's accumulated resources
type ResourceKind string

const (
	ResourceSpores   ResourceKind = "spores"
	ResourceMycelium ResourceKind = "mycelium"
	ResourceWarriors ResourceKind = "warriors"
)

// ResourceKinds lists every resource the engine tracks, in display order
func ResourceKinds() []ResourceKind {
	return []ResourceKind{ResourceSpores, ResourceMycelium, ResourceWarriors}
}

// IsValid reports whether the kind names a known resource
func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceSpores, ResourceMycelium, ResourceWarriors:
		return true
	}
	return false
}

// GameMode identifies one of the gameplay modes the player can switch between
type GameMode string

const (
	ModeClicker  GameMode = "clicker"
	ModeGarden   GameMode = "garden"
	ModeMissions GameMode = "missions"
	ModeHive     GameMode = "hive"
)

// IsValid reports whether the mode names a known gameplay mode
func (m GameMode) IsValid() bool {
	switch m {
	case ModeClicker, ModeGarden, ModeMissions, ModeHive:
		return true
	}
	return false
}
