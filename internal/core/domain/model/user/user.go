package user

import (
	"errors"
	"time"

	"withus/internal/core/domain/model/kernel"

	"withus/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is the aggregate for a registered account. The password is stored only
// as a one-way digest produced outside the domain; the aggregate never sees
// the plain text. Role is fixed at construction.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates a user with the given identity and validated attributes.
// The password digest must already be hashed by the credential store.
func NewUser(id kernel.UUID, name, email, passwordHash string, role Role) (*User, error) {
	u := &User{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(
	id kernel.UUID, name, email, passwordHash string, role Role, createdAt time.Time,
) (*User, error) {
	u, err := NewUser(id, name, email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	u.createdAt = createdAt
	return u, nil
}

// Validate ensures the instance came from a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the unique login email.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored one-way password digest.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the authorization role fixed at registration.
func (u *User) Role() Role {
	return u.role
}

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// ChangePassword replaces the stored digest. Used by the password reset flow;
// the new digest must already be hashed.
func (u *User) ChangePassword(passwordHash string) error {
	return u.setPasswordHash(passwordHash)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
