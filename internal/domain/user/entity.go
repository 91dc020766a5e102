package user

import "errors"

var ErrMissingName = errors.New("name is required")

// User entity. The numeric id is assigned by the database on insert.
type User struct {
	id           int64
	name         string
	email        Email
	passwordHash string
	phone        string
	address      string
	role         Role
}

func NewUser(name string, email Email, passwordHash, phone, address string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        phone,
		address:      address,
		role:         role,
	}, nil
}

func (u *User) ID() int64            { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Phone() string        { return u.phone }
func (u *User) Address() string      { return u.address }
func (u *User) Role() Role           { return u.role }
