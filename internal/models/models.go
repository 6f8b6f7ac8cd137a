package models

// TeamID identifies one of the two fixed teams
type TeamID string

const (
	TeamA TeamID = "A"
	TeamB TeamID = "B"
)

// Valid reports whether the id names one of the two known teams
func (id TeamID) Valid() bool {
	return id == TeamA || id == TeamB
}

// ColorPalette holds the optional four-entry team color scheme
type ColorPalette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

// Team represents one of the two teams. Identity is fixed; only display
// attributes are editable.
type Team struct {
	ID      TeamID        `json:"id"`
	Name    string        `json:"name"`
	Color   string        `json:"color"`
	Palette *ColorPalette `json:"palette,omitempty"`
	Logo    string        `json:"logo,omitempty"`
}

// Player represents a registered player, keyed by shirt number within a team
type Player struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     TeamID `json:"team"`
}

// ActionType represents a user-configurable category of match event
type ActionType struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	RequiresPlayer bool   `json:"requiresPlayer"`
}

// GameAction represents a single recorded match event. Zone and ActionType
// are loose string references resolved at display time; Player is a value
// snapshot taken at submission time, not a live roster reference.
type GameAction struct {
	ID         string  `json:"id"`
	Timestamp  int64   `json:"timestamp"`
	GameTime   string  `json:"gameTime"`
	Team       TeamID  `json:"team"`
	Zone       string  `json:"zone"`
	ActionType string  `json:"actionType"`
	Player     *Player `json:"player,omitempty"`
}

// GameState is the aggregate root persisted as one snapshot. Actions are
// ordered newest-first.
type GameState struct {
	IsRunning   bool                `json:"isRunning"`
	CurrentTime int                 `json:"currentTime"`
	Actions     []GameAction        `json:"actions"`
	Teams       map[TeamID]Team     `json:"teams"`
	Players     map[TeamID][]Player `json:"players"`
}

// NewGameState returns the default fresh state used when nothing has been
// persisted yet
func NewGameState() *GameState {
	return &GameState{
		Actions: []GameAction{},
		Teams: map[TeamID]Team{
			TeamA: {ID: TeamA, Name: "Time A", Color: "#2563eb"},
			TeamB: {ID: TeamB, Name: "Time B", Color: "#dc2626"},
		},
		Players: map[TeamID][]Player{
			TeamA: {},
			TeamB: {},
		},
	}
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
