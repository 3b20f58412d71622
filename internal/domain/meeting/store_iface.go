package meeting

import (
	"context"
	"time"

	"hrdesk/internal/domain/core"
)

type StoreAPI interface {
	CreateMeeting(ctx context.Context, m Meeting) (Meeting, error)
	ListMeetings(ctx context.Context) []Meeting
	TodaysMeetingsForDivision(ctx context.Context, division core.Division, now time.Time) []Meeting
	MeetingsOwnedBy(ctx context.Context, division core.Division) []Meeting
}
