package meeting

import (
	"slices"
	"time"

	"hrdesk/internal/domain/core"
)

type Meeting struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Topic             string          `json:"topic"`
	Theme             string          `json:"theme"`
	Division          core.Division   `json:"division"`
	Start             time.Time       `json:"start"`
	End               time.Time       `json:"end"`
	Summary           string          `json:"summary"`
	RequiredDivisions []core.Division `json:"requiredDivisions"`
	Participants      string          `json:"participants"`
	Room              string          `json:"room"`
}

// Concerns reports whether the division owns the meeting or is required to
// attend it.
func (m Meeting) Concerns(division core.Division) bool {
	return m.Division == division || slices.Contains(m.RequiredDivisions, division)
}

func (m Meeting) FormattedStart() string {
	return m.Start.Format("02/01/2006 15:04")
}

func (m Meeting) Clone() Meeting {
	m.RequiredDivisions = slices.Clone(m.RequiredDivisions)
	return m
}

type ScheduleInput struct {
	Name              string
	Topic             string
	Theme             string
	Start             time.Time
	End               time.Time
	Room              string
	Participants      string
	RequiredDivisions []core.Division
}
