package account

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// User is the aggregate root for an account in the system.
//
// Invariants:
//   - Email is unique across all users (enforced by the persistence layer)
//     and required; it is the login identity.
//   - The role belongs to the closed Role set and changes only through
//     ChangeRole, an explicit administrative operation.
//   - The password exists only as a Credential; it is written only through
//     ChangeCredential and never read back out of the aggregate except as
//     the opaque hash for verification and persistence.
//   - Users are never hard-deleted; Deactivate is the end of the lifecycle.
type User struct {
	id         kernel.UUID
	email      string
	fullName   string
	role       Role
	phone      string
	credential Credential
	isActive   bool
	createdAt  time.Time

	isConstructed bool
}

// NewUser creates an active user account.
func NewUser(
	id kernel.UUID,
	email string,
	fullName string,
	role Role,
	phone string,
	credential Credential,
) (*User, error) {
	u := &User{
		phone:         phone,
		isActive:      true,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setFullName(fullName),
		u.setRole(role),
		u.setCredential(credential),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a user from persistence.
func RestoreUser(
	id kernel.UUID,
	email string,
	fullName string,
	role Role,
	phone string,
	credential Credential,
	isActive bool,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		phone:         phone,
		isActive:      isActive,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setFullName(fullName),
		u.setRole(role),
		u.setCredential(credential),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by identifier.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's login email.
func (u *User) Email() string {
	return u.email
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.fullName
}

// Role returns the user's permission role.
func (u *User) Role() Role {
	return u.role
}

// Phone returns the user's phone number, possibly empty.
func (u *User) Phone() string {
	return u.phone
}

// Credential returns the hashed password credential.
func (u *User) Credential() Credential {
	return u.credential
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	return u.isActive
}

// CreatedAt returns the account creation time.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// ChangeProfile updates the display name and phone number.
// Email, role and credential have their own dedicated channels.
func (u *User) ChangeProfile(fullName, phone string) error {
	if err := u.setFullName(fullName); err != nil {
		return err
	}
	u.phone = phone
	return nil
}

// ChangeRole replaces the user's role. This is an explicit administrative
// operation; nothing else in the system mutates the role.
func (u *User) ChangeRole(role Role) error {
	return u.setRole(role)
}

// ChangeCredential replaces the password credential with a freshly hashed one.
func (u *User) ChangeCredential(credential Credential) error {
	return u.setCredential(credential)
}

// Deactivate closes the account. Inactive users fail authentication the same
// way as wrong passwords; there is no hard delete.
func (u *User) Deactivate() {
	u.isActive = false
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = strings.ToLower(email)
	return nil
}

func (u *User) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	u.fullName = fullName
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setCredential(credential Credential) error {
	if err := credential.Validate(); err != nil {
		return err
	}
	u.credential = credential
	return nil
}
