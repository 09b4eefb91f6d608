package entity

import (
	"time"
)

// Profile defaults applied at registration when the client omits a field.
// Kept verbatim from the reference frontend contract.
const (
	DefaultName      = "Жак-Ив Кусто"
	DefaultAbout     = "Исследователь"
	DefaultAvatarURL = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// User is the aggregate root for the user domain.
// Password holds the bcrypt hash; it is never serialized to clients and the
// default repository reads do not load it.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	About     string    `json:"about"`
	AvatarURL string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
