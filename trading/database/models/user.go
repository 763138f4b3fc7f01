package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID          string    `bun:"id,pk"`
	Username    string    `bun:"username,notnull"`
	DisplayName string    `bun:"display_name,type:text,default:''"`
	AvatarURL   string    `bun:"avatar_url,type:text,default:''"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}

// Name returns the preferred display string for the user.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
