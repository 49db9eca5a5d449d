package guide

// ProgramRole identifies what a program slot is for within a broadcast day.
type ProgramRole string

const (
	RolePregame  ProgramRole = "PREGAME"
	RoleGame     ProgramRole = "GAME"
	RolePostgame ProgramRole = "POSTGAME"
	RoleIdle     ProgramRole = "IDLE"
)

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
	StatusPostponed  GameStatus = "POSTPONED"
)

// Record captures a team's win/loss totals.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Team represents the normalized team shape used by context evaluation.
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	City         string `json:"city"`
	Abbreviation string `json:"abbreviation"`
	Division     string `json:"division"`
	Conference   string `json:"conference"`
	Record       Record `json:"record"`
	Rank         int    `json:"rank"` // 0 means unranked
}

// Score captures team and opponent points for one game view.
type Score struct {
	Team     int `json:"team"`
	Opponent int `json:"opponent"`
}

// Broadcast carries the airing details for one game view.
type Broadcast struct {
	Network  string `json:"network"`
	National bool   `json:"national"`
}

// GameView is one temporal slice of a context: the current, next, or last
// game for the subject team, with everything conditions and variables read.
type GameView struct {
	Opponent   Team       `json:"opponent"`
	StartTime  string     `json:"startTime"` // RFC3339
	Venue      string     `json:"venue"`
	Home       bool       `json:"home"`
	Status     GameStatus `json:"status"`
	Score      Score      `json:"score"`
	Broadcast  Broadcast  `json:"broadcast"`
	HasOdds    bool       `json:"hasOdds"`
	Spread     string     `json:"spread"`
	WinStreak  int        `json:"winStreak"`
	LossStreak int        `json:"lossStreak"`
}

// Won reports whether the view's game finished as a win for the subject team.
func (v GameView) Won() bool {
	return v.Status == StatusFinal && v.Score.Team > v.Score.Opponent
}

// Lost reports whether the view's game finished as a loss for the subject team.
func (v GameView) Lost() bool {
	return v.Status == StatusFinal && v.Score.Team < v.Score.Opponent
}

// GameContext is the fully materialized set of facts for one program slot.
// It is assembled upstream, immutable during resolution, and never fetched
// from inside this module.
type GameContext struct {
	Team     Team        `json:"team"`
	Sport    string      `json:"sport"`
	League   string      `json:"league"`
	Provider string      `json:"provider"`
	Role     ProgramRole `json:"role"`
	Home     bool        `json:"home"`
	Current  *GameView   `json:"current,omitempty"`
	Next     *GameView   `json:"next,omitempty"`
	Last     *GameView   `json:"last,omitempty"`
}
