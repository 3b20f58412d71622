package auth

import (
	"time"

	"hrdesk/internal/domain/core"
)

// UserContext is the authenticated caller attached to a request.
type UserContext struct {
	UserID   string
	RoleName string
	Division string
}

func (u UserContext) Role() core.Role {
	return core.Role(u.RoleName)
}

type Session struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Employee  core.Employee `json:"employee"`
}
