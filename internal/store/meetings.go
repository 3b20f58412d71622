package store

import (
	"context"
	"time"

	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/meeting"
)

func (s *Store) CreateMeeting(ctx context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return meeting.Meeting{}, err
	}
	defer unlock()

	if m.ID == "" {
		m.ID = s.newID()
	}
	s.meetings = append(s.meetings, m.Clone())
	return m.Clone(), nil
}

func (s *Store) ListMeetings(ctx context.Context) []meeting.Meeting {
	defer s.rlock(ctx)()
	out := make([]meeting.Meeting, 0, len(s.meetings))
	for _, m := range s.meetings {
		out = append(out, m.Clone())
	}
	return out
}

// TodaysMeetingsForDivision returns meetings starting on now's calendar day
// that the division owns or must attend.
func (s *Store) TodaysMeetingsForDivision(ctx context.Context, division core.Division, now time.Time) []meeting.Meeting {
	defer s.rlock(ctx)()
	var out []meeting.Meeting
	for _, m := range s.meetings {
		if core.SameDay(now, m.Start) && m.Concerns(division) {
			out = append(out, m.Clone())
		}
	}
	return out
}

func (s *Store) MeetingsOwnedBy(ctx context.Context, division core.Division) []meeting.Meeting {
	defer s.rlock(ctx)()
	var out []meeting.Meeting
	for _, m := range s.meetings {
		if m.Division == division {
			out = append(out, m.Clone())
		}
	}
	return out
}
