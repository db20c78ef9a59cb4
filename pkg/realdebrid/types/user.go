package types

import "time"

type UserType string

const (
	UserTypeFree    UserType = "free"
	UserTypePremium UserType = "premium"
)

func (t *UserType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "user type", t, []UserType{UserTypeFree, UserTypePremium})
}

type User struct {
	ID         int64    `json:"id"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Points     int64    `json:"points"` // fidelity points
	Locale     string   `json:"locale"`
	Avatar     string   `json:"avatar"`
	Type       UserType `json:"type"`
	Premium    int64    `json:"premium"` // seconds left
	Expiration string   `json:"expiration"`
}

func (u User) PremiumDuration() time.Duration {
	return time.Duration(u.Premium) * time.Second
}
