package commands

import (
	"errors"

	"withus/internal/core/domain/model/kernel"

	"withus/internal/pkg/guard"
)

var (
	// ErrRegisterUserCommandIsNotConstructed is returned when the command
	// was not built via NewRegisterUserCommand.
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)

	// ErrNameIsRequired is returned for a registration without a name.
	ErrNameIsRequired = errors.New("name is required")

	// ErrEmailIsRequired is returned for a registration without an email.
	ErrEmailIsRequired = errors.New("email is required")

	// ErrPasswordIsRequired is returned for a registration without a password.
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterUserCommand represents a new account registration. Every account
// registered through this command gets the customer role; there is no
// operation that changes a role afterwards.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a validated registration request.
// The password travels in plain text only as far as the handler, which
// hashes it before anything is persisted.
func NewRegisterUserCommand(userID kernel.UUID, name, email, password string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new user.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the login email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plain-text password to be hashed by the handler.
func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	c.password = password
	return nil
}
