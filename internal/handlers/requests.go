package handlers

import (
	"github.com/pviana/futstats/internal/models"
)

// TeamUpdateRequest represents a request to edit a team's display attributes
type TeamUpdateRequest struct {
	Name    string               `json:"name"`
	Color   string               `json:"color"`
	Palette *models.ColorPalette `json:"palette,omitempty"`
	Logo    string               `json:"logo,omitempty"`
}

// PlayerCreateRequest represents a request to register a player
type PlayerCreateRequest struct {
	Team     models.TeamID `json:"team"`
	Number   int           `json:"number"`
	Name     string        `json:"name"`
	Position string        `json:"position"`
}

// PlayerImportRequest represents a bulk roster import: one
// "number,name,position" record per line
type PlayerImportRequest struct {
	Team models.TeamID `json:"team"`
	Text string        `json:"text"`
}

// ZoneHitRequest represents a pointer position on the field image
type ZoneHitRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ZoneHitResponse is the resolved zone for a pointer position
type ZoneHitResponse struct {
	Zone string `json:"zone"`
	Name string `json:"name"`
}

// ActionTypeCreateRequest represents a request to add a catalog entry
type ActionTypeCreateRequest struct {
	Name           string `json:"name"`
	RequiresPlayer bool   `json:"requiresPlayer"`
}

// StateResponse bundles the game state with the catalog and zone list
type StateResponse struct {
	Game        models.GameState    `json:"game"`
	ActionTypes []models.ActionType `json:"actionTypes"`
}
