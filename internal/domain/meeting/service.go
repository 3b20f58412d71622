package meeting

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"hrdesk/internal/domain/core"
)

type Service struct {
	store StoreAPI
	clock core.Clock
}

func NewService(store StoreAPI, clock core.Clock) *Service {
	return &Service{store: store, clock: clock}
}

// Schedule creates a meeting owned by the organizer's division. The owner
// division is always among the required divisions.
func (s *Service) Schedule(ctx context.Context, organizer core.Employee, in ScheduleInput) (Meeting, error) {
	if organizer.Role != core.RoleManager {
		return Meeting{}, ErrForbidden
	}
	name := strings.TrimSpace(in.Name)
	room := strings.TrimSpace(in.Room)
	if name == "" {
		return Meeting{}, fmt.Errorf("%w: name", ErrMissingField)
	}
	if room == "" {
		return Meeting{}, fmt.Errorf("%w: room", ErrMissingField)
	}
	if in.Start.IsZero() {
		return Meeting{}, fmt.Errorf("%w: start", ErrMissingField)
	}
	if !in.End.After(in.Start) {
		return Meeting{}, ErrInvalidTimeRange
	}

	participants := strings.TrimSpace(in.Participants)
	if participants == "" {
		participants = "Team " + string(organizer.Division)
	}

	return s.store.CreateMeeting(ctx, Meeting{
		Name:              name,
		Topic:             strings.TrimSpace(in.Topic),
		Theme:             strings.TrimSpace(in.Theme),
		Division:          organizer.Division,
		Start:             in.Start,
		End:               in.End,
		RequiredDivisions: requiredDivisions(organizer.Division, in.RequiredDivisions),
		Participants:      participants,
		Room:              room,
	})
}

func (s *Service) Today(ctx context.Context, division core.Division) []Meeting {
	return s.store.TodaysMeetingsForDivision(ctx, division, s.clock.Now())
}

// Upcoming lists meetings concerning the division that start after today,
// soonest first.
func (s *Service) Upcoming(ctx context.Context, division core.Division) []Meeting {
	now := s.clock.Now()
	var out []Meeting
	for _, m := range s.store.ListMeetings(ctx) {
		if m.Start.After(now) && !core.SameDay(now, m.Start) && m.Concerns(division) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

func (s *Service) OwnedBy(ctx context.Context, division core.Division) []Meeting {
	return s.store.MeetingsOwnedBy(ctx, division)
}

func requiredDivisions(owner core.Division, requested []core.Division) []core.Division {
	out := make([]core.Division, 0, len(requested)+1)
	for _, d := range requested {
		d = core.Division(strings.TrimSpace(string(d)))
		if d == "" || slices.Contains(out, d) {
			continue
		}
		out = append(out, d)
	}
	if !slices.Contains(out, owner) {
		out = append(out, owner)
	}
	return out
}
