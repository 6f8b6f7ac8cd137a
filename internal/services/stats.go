package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pviana/futstats/internal/field"
	"github.com/pviana/futstats/internal/logger"
	"github.com/pviana/futstats/internal/models"
)

// StatsService derives statistics from the current game state and catalog.
// Every output is recomputed from scratch on read: identical inputs give
// identical outputs, a read always reflects the last completed mutation,
// and an empty log degrades to zeros, never an error.
type StatsService struct {
	log     logger.Logger
	game    *GameService
	catalog *CatalogService
}

// NewStatsService creates a new StatsService
func NewStatsService(log logger.Logger, game *GameService, catalog *CatalogService) *StatsService {
	return &StatsService{log: log, game: game, catalog: catalog}
}

// Possession is each team's share of total recorded actions, in percent
type Possession struct {
	A float64 `json:"A"`
	B float64 `json:"B"`
}

// PlayerStat counts one player's recorded actions, with the distinct
// action-type names they performed
type PlayerStat struct {
	Player  models.Player `json:"player"`
	Count   int           `json:"count"`
	Actions []string      `json:"actions"`
}

// TypeCount counts actions of one resolved action-type name
type TypeCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TeamStats is the per-team statistics block
type TeamStats struct {
	TotalActions int          `json:"totalActions"`
	Possession   float64      `json:"possession"`
	Players      []PlayerStat `json:"players"`
	ActionTypes  []TypeCount  `json:"actionTypes"`
}

// MatchStats is the full statistics view for both teams
type MatchStats struct {
	TeamA        TeamStats `json:"teamA"`
	TeamB        TeamStats `json:"teamB"`
	TotalActions int       `json:"totalActions"`
}

// ZoneRank is one entry of a top-zones ranking
type ZoneRank struct {
	ZoneID         string      `json:"zoneId"`
	Name           string      `json:"name"`
	Count          int         `json:"count"`
	Share          float64     `json:"share"`
	TopActionTypes []TypeCount `json:"topActionTypes"`
}

// ZoneHeat is the per-team heat-map view
type ZoneHeat struct {
	Zones     map[string]int     `json:"zones"`
	Intensity map[string]float64 `json:"intensity"`
	Max       int                `json:"max"`
	Total     int                `json:"total"`
	TopZones  []ZoneRank         `json:"topZones"`
}

// ActionView is one log entry resolved for display
type ActionView struct {
	ID          string        `json:"id"`
	Timestamp   int64         `json:"timestamp"`
	GameTime    string        `json:"gameTime"`
	Team        models.TeamID `json:"team"`
	TeamName    string        `json:"teamName"`
	ZoneName    string        `json:"zoneName"`
	ActionName  string        `json:"actionName"`
	PlayerLabel string        `json:"playerLabel,omitempty"`
}

// ComputePossession derives possession shares from an action log. With no
// actions both shares are zero, never NaN.
func ComputePossession(actions []models.GameAction) Possession {
	total := len(actions)
	if total == 0 {
		return Possession{}
	}
	countA := 0
	for _, a := range actions {
		if a.Team == models.TeamA {
			countA++
		}
	}
	return Possession{
		A: 100 * float64(countA) / float64(total),
		B: 100 * float64(total-countA) / float64(total),
	}
}

// Possession returns the current possession split
func (s *StatsService) Possession() Possession {
	return ComputePossession(s.game.Actions())
}

// Stats returns the full statistics view for both teams
func (s *StatsService) Stats() MatchStats {
	actions := s.game.Actions()
	possession := ComputePossession(actions)
	actionsA := filterTeam(actions, models.TeamA)
	actionsB := filterTeam(actions, models.TeamB)

	return MatchStats{
		TeamA: TeamStats{
			TotalActions: len(actionsA),
			Possession:   possession.A,
			Players:      s.playerStats(actionsA),
			ActionTypes:  s.typeCounts(actionsA, 10),
		},
		TeamB: TeamStats{
			TotalActions: len(actionsB),
			Possession:   possession.B,
			Players:      s.playerStats(actionsB),
			ActionTypes:  s.typeCounts(actionsB, 10),
		},
		TotalActions: len(actions),
	}
}

// Heatmap returns the zone heat view for one team
func (s *StatsService) Heatmap(team models.TeamID) ZoneHeat {
	actions := filterTeam(s.game.Actions(), team)

	zones := make(map[string]int)
	var order []string
	for _, a := range actions {
		if zones[a.Zone] == 0 {
			order = append(order, a.Zone)
		}
		zones[a.Zone]++
	}

	// floor of 1 keeps intensity division safe on an empty log
	max := 1
	for _, count := range zones {
		if count > max {
			max = count
		}
	}
	intensity := make(map[string]float64, len(zones))
	for id, count := range zones {
		intensity[id] = float64(count) / float64(max)
	}

	total := len(actions)
	sort.SliceStable(order, func(i, j int) bool {
		return zones[order[i]] > zones[order[j]]
	})
	var top []ZoneRank
	for _, id := range order {
		if len(top) == 5 {
			break
		}
		share := 0.0
		if total > 0 {
			share = 100 * float64(zones[id]) / float64(total)
		}
		top = append(top, ZoneRank{
			ZoneID:         id,
			Name:           field.ZoneName(id),
			Count:          zones[id],
			Share:          share,
			TopActionTypes: s.typeCounts(filterZone(actions, id), 3),
		})
	}

	return ZoneHeat{
		Zones:     zones,
		Intensity: intensity,
		Max:       max,
		Total:     total,
		TopZones:  top,
	}
}

// RecentActions returns the newest n log entries resolved for display
func (s *StatsService) RecentActions(n int) []ActionView {
	actions := s.game.Actions()
	teams := s.game.Teams()
	if n > len(actions) {
		n = len(actions)
	}
	views := make([]ActionView, 0, n)
	for _, a := range actions[:n] {
		view := ActionView{
			ID:         a.ID,
			Timestamp:  a.Timestamp,
			GameTime:   a.GameTime,
			Team:       a.Team,
			TeamName:   teams[a.Team].Name,
			ZoneName:   field.ZoneName(a.Zone),
			ActionName: s.catalog.DisplayName(a.ActionType),
		}
		if a.Player != nil {
			view.PlayerLabel = fmt.Sprintf("#%d %s", a.Player.Number, a.Player.Name)
		}
		views = append(views, view)
	}
	return views
}

// Report renders the match report as plain text
func (s *StatsService) Report() string {
	stats := s.Stats()
	teams := s.game.Teams()
	nameA := teams[models.TeamA].Name
	nameB := teams[models.TeamB].Name

	var b strings.Builder
	b.WriteString("RELATÓRIO DE ESTATÍSTICAS DA PARTIDA\n")
	fmt.Fprintf(&b, "%s vs %s\n", nameA, nameB)
	fmt.Fprintf(&b, "Total de Ações: %d\n\n", stats.TotalActions)

	b.WriteString("POSSE DE BOLA:\n")
	fmt.Fprintf(&b, "%s: %.1f%%\n", nameA, stats.TeamA.Possession)
	fmt.Fprintf(&b, "%s: %.1f%%\n\n", nameB, stats.TeamB.Possession)

	b.WriteString("ESTATÍSTICAS DETALHADAS:\n\n")
	fmt.Fprintf(&b, "%s (%d ações):\n", nameA, stats.TeamA.TotalActions)
	for _, tc := range stats.TeamA.ActionTypes {
		fmt.Fprintf(&b, "  %s: %d\n", tc.Name, tc.Count)
	}
	fmt.Fprintf(&b, "\n%s (%d ações):\n", nameB, stats.TeamB.TotalActions)
	for _, tc := range stats.TeamB.ActionTypes {
		fmt.Fprintf(&b, "  %s: %d\n", tc.Name, tc.Count)
	}

	b.WriteString("\nÚLTIMAS 10 AÇÕES:\n")
	for _, view := range s.RecentActions(10) {
		line := fmt.Sprintf("[%s] %s - %s - %s", view.GameTime, view.TeamName, view.ActionName, view.ZoneName)
		if view.PlayerLabel != "" {
			line += " - " + view.PlayerLabel
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// playerStats groups a team's actions by the embedded player snapshot's
// shirt number: the number recorded at submission time counts, not the
// current roster. Sorted by count descending, stable by first occurrence.
func (s *StatsService) playerStats(actions []models.GameAction) []PlayerStat {
	byNumber := make(map[int]*PlayerStat)
	var order []int
	for _, a := range actions {
		if a.Player == nil {
			continue
		}
		stat, ok := byNumber[a.Player.Number]
		if !ok {
			stat = &PlayerStat{Player: *a.Player}
			byNumber[a.Player.Number] = stat
			order = append(order, a.Player.Number)
		}
		stat.Count++
		name := s.catalog.DisplayName(a.ActionType)
		if !contains(stat.Actions, name) {
			stat.Actions = append(stat.Actions, name)
		}
	}

	stats := make([]PlayerStat, 0, len(order))
	for _, number := range order {
		stats = append(stats, *byNumber[number])
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	return stats
}

// typeCounts groups actions by resolved type name, descending by count,
// stable by first occurrence, truncated to limit
func (s *StatsService) typeCounts(actions []models.GameAction, limit int) []TypeCount {
	counts := make(map[string]int)
	var order []string
	for _, a := range actions {
		name := s.catalog.DisplayName(a.ActionType)
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	out := make([]TypeCount, 0, len(order))
	for _, name := range order {
		out = append(out, TypeCount{Name: name, Count: counts[name]})
	}
	return out
}

func filterTeam(actions []models.GameAction, team models.TeamID) []models.GameAction {
	var out []models.GameAction
	for _, a := range actions {
		if a.Team == team {
			out = append(out, a)
		}
	}
	return out
}

func filterZone(actions []models.GameAction, zoneID string) []models.GameAction {
	var out []models.GameAction
	for _, a := range actions {
		if a.Zone == zoneID {
			out = append(out, a)
		}
	}
	return out
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
