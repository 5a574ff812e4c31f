package mapper

import (
	"time"

	"github.com/profiled/accounts/internal/account/domain"
)

// PublicUser is the wire shape of an account. The password hash and the
// token list never leave the service.
type PublicUser struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Description string    `json:"description,omitempty"`
	Picture     string    `json:"picture,omitempty"`
	Link        string    `json:"link,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToPublic(user domain.User) PublicUser {
	return PublicUser{
		ID:          string(user.ID),
		Username:    user.Username,
		Email:       user.Email,
		Description: user.Description,
		Picture:     user.Picture,
		Link:        user.Link,
		CreatedAt:   user.CreatedAt,
	}
}
