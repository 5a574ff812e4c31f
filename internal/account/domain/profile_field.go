package domain

type ProfileField string

const (
	FieldEmail       ProfileField = "email"
	FieldDescription ProfileField = "description"
	FieldPicture     ProfileField = "picture"
	FieldLink        ProfileField = "link"
)

// Updatable reports whether the field is on the profile-update
// allow-list. Username and password have dedicated flows.
func (f ProfileField) Updatable() bool {
	switch f {
	case FieldEmail, FieldDescription, FieldPicture, FieldLink:
		return true
	default:
		return false
	}
}

func (u *User) SetProfileField(f ProfileField, value string) {
	switch f {
	case FieldEmail:
		u.Email = value
	case FieldDescription:
		u.Description = value
	case FieldPicture:
		u.Picture = value
	case FieldLink:
		u.Link = value
	}
}
