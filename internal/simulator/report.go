package simulator

import (
	"time"

	"github.com/lox/notty/internal/statistics"
)

// Report is the JSON summary written by notty-sim --report
type Report struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Games       int          `json:"games"`
	Players     int          `json:"players"`
	Seed        int64        `json:"seed"`
	TurnLimit   int          `json:"turn_limit"`
	Strategy    string       `json:"strategy"`
	Seats       []SeatReport `json:"seats"`
	Stalemates  int          `json:"stalemates"`
	Turns       TurnReport   `json:"turns"`
	Draws       int          `json:"draws"`
	Snatches    int          `json:"snatches"`
	Discards    int          `json:"discards"`
}

// SeatReport is one seat's share of the wins
type SeatReport struct {
	Seat    int     `json:"seat"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

// TurnReport describes game length in turns
type TurnReport struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
}

// NewReport summarises stats from a run of s
func (s *Simulator) NewReport(stats *statistics.Statistics, strategy string, now time.Time) Report {
	r := Report{
		GeneratedAt: now.UTC(),
		Games:       stats.Games,
		Players:     s.config.Players,
		Seed:        s.config.Seed,
		TurnLimit:   s.config.TurnLimit,
		Strategy:    strategy,
		Stalemates:  stats.Stalemates,
		Turns: TurnReport{
			Mean:   stats.Mean(),
			StdDev: stats.StdDev(),
			Median: stats.Median(),
			P90:    stats.Percentile(0.9),
		},
		Draws:    stats.Draws,
		Snatches: stats.Snatches,
		Discards: stats.Discards,
	}
	for seat := 1; seat <= s.config.Players; seat++ {
		r.Seats = append(r.Seats, SeatReport{Seat: seat, Wins: stats.Wins[seat], WinRate: stats.WinRate(seat)})
	}
	return r
}
