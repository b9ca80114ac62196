package game

import (
	"time"

	"github.com/sporelab/fungal-evolution/internal/domain/shared"
)

// PlotCount is the fixed size of the garden grid
const PlotCount = 9

// GoldenLifetime is how long a golden shroom stays clickable after spawning
const GoldenLifetime = 3 * time.Second

// Plot is one garden cell. SeedID and PlantTime are set and cleared together:
// an empty SeedID means nothing is planted.
type Plot struct {
	ID        int        `json:"id"`
	Unlocked  bool       `json:"unlocked"`
	SeedID    string     `json:"seedId,omitempty"`
	PlantTime *time.Time `json:"plantTime,omitempty"`
}

// Planted reports whether the plot currently holds a growing seed
func (p Plot) Planted() bool {
	return p.SeedID != "" && p.PlantTime != nil
}

// MissionStatus is the lifecycle state of a mission instance
type MissionStatus string

const (
	MissionActive    MissionStatus = "active"
	MissionCompleted MissionStatus = "completed"
)

// LogKind classifies a mission log entry for presentation
type LogKind string

const (
	LogInfo    LogKind = "info"
	LogDanger  LogKind = "danger"
	LogSuccess LogKind = "success"
)

// MissionLogEntry is one timestamped line of a mission's narrated journey
type MissionLogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Kind      LogKind   `json:"type"`
}

// MissionReward is one resource credit attached to a mission result
type MissionReward struct {
	Resource shared.ResourceKind `json:"resource"`
	Amount   float64             `json:"amount"`
}

// MissionResult is the outcome attached to a completed mission instance
type MissionResult struct {
	Success bool              `json:"success"`
	Rewards []MissionReward   `json:"rewards"`
	Log     []MissionLogEntry `json:"log"`
}

// ActiveMission is one running copy of a mission template. It transitions
// active -> completed exactly once and is removed only by an explicit claim.
type ActiveMission struct {
	InstanceID string         `json:"id"`
	MissionID  string         `json:"missionId"`
	StartTime  time.Time      `json:"startTime"`
	EndTime    time.Time      `json:"endTime"`
	Status     MissionStatus  `json:"status"`
	Result     *MissionResult `json:"result,omitempty"`
}

// GoldenShroom is the transient bonus-click target. At most one exists at a time.
type GoldenShroom struct {
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LifetimeStats holds monotonically increasing counters
type LifetimeStats struct {
	TotalClicks int64 `json:"totalClicks"`
}

// State is the single immutable aggregate of the whole game. It is replaced,
// never mutated in place, by every reducer invocation.
type State struct {
	Resources      map[shared.ResourceKind]float64 `json:"resources"`
	UnlockedModes  []shared.GameMode               `json:"unlockedModes"`
	CurrentMode    shared.GameMode                 `json:"currentMode"`
	LastSaveTime   time.Time                       `json:"lastSaveTime"`
	UpgradeLevels  map[string]int                  `json:"upgrades"`
	Plots          []Plot                          `json:"plots"`
	ActiveMissions []ActiveMission                 `json:"activeMissions"`
	ClickLevel     int                             `json:"clickLevel"`
	ClickXP        int                             `json:"clickXP"`
	GoldenShroom   *GoldenShroom                   `json:"goldenShroom,omitempty"`
	Achievements   []string                        `json:"achievements"`
	Stats          LifetimeStats                   `json:"stats"`
}

// NewState returns the default starting state: no resources, clicker mode only,
// a 9-plot garden with just the first plot unlocked.
func NewState(now time.Time) *State {
	plots := make([]Plot, PlotCount)
	for i := range plots {
		plots[i] = Plot{ID: i, Unlocked: i == 0}
	}
	return &State{
		Resources: map[shared.ResourceKind]float64{
			shared.ResourceSpores:   0,
			shared.ResourceMycelium: 0,
			shared.ResourceWarriors: 0,
		},
		UnlockedModes:  []shared.GameMode{shared.ModeClicker},
		CurrentMode:    shared.ModeClicker,
		LastSaveTime:   now,
		UpgradeLevels:  map[string]int{},
		Plots:          plots,
		ActiveMissions: []ActiveMission{},
		ClickLevel:     1,
		ClickXP:        0,
		Achievements:   []string{},
	}
}

// Resource returns the current quantity of a resource, zero when absent
func (s *State) Resource(kind shared.ResourceKind) float64 {
	return s.Resources[kind]
}

// ModeUnlocked reports whether a gameplay mode is in the unlocked set
func (s *State) ModeUnlocked(mode shared.GameMode) bool {
	for _, m := range s.UnlockedModes {
		if m == mode {
			return true
		}
	}
	return false
}

// HasAchievement reports whether an achievement identifier is already unlocked
func (s *State) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// UpgradeLevel returns the owned level of an upgrade, zero when absent
func (s *State) UpgradeLevel(id string) int {
	return s.UpgradeLevels[id]
}

// FindMission returns the mission instance with the given ID, or nil
func (s *State) FindMission(instanceID string) *ActiveMission {
	for i := range s.ActiveMissions {
		if s.ActiveMissions[i].InstanceID == instanceID {
			return &s.ActiveMissions[i]
		}
	}
	return nil
}

// FindPlot returns the plot with the given ID, or nil
func (s *State) FindPlot(plotID int) *Plot {
	for i := range s.Plots {
		if s.Plots[i].ID == plotID {
			return &s.Plots[i]
		}
	}
	return nil
}

// GoldenActive reports whether an unexpired golden shroom exists at the given time
func (s *State) GoldenActive(now time.Time) bool {
	return s.GoldenShroom != nil && now.Before(s.GoldenShroom.ExpiresAt)
}

// clone returns a deep copy sharing nothing mutable with the receiver. The
// reducer copies before every transition so callers can hold old snapshots.
func (s *State) clone() *State {
	next := *s

	next.Resources = make(map[shared.ResourceKind]float64, len(s.Resources))
	for k, v := range s.Resources {
		next.Resources[k] = v
	}

	next.UpgradeLevels = make(map[string]int, len(s.UpgradeLevels))
	for k, v := range s.UpgradeLevels {
		next.UpgradeLevels[k] = v
	}

	next.UnlockedModes = append([]shared.GameMode(nil), s.UnlockedModes...)
	next.Achievements = append([]string(nil), s.Achievements...)

	next.Plots = make([]Plot, len(s.Plots))
	for i, p := range s.Plots {
		next.Plots[i] = p
		if p.PlantTime != nil {
			t := *p.PlantTime
			next.Plots[i].PlantTime = &t
		}
	}

	next.ActiveMissions = make([]ActiveMission, len(s.ActiveMissions))
	copy(next.ActiveMissions, s.ActiveMissions)

	if s.GoldenShroom != nil {
		g := *s.GoldenShroom
		next.GoldenShroom = &g
	}

	return &next
}
