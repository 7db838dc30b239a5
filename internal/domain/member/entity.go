package member

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Member identity as the ledger subsystem sees it. The ledger only ever reads
// members; profile fields beyond what the verification page shows live
// elsewhere.
type Member struct {
	id           uuid.UUID
	name         string
	surname      string
	username     Username
	passwordHash string
	profilePhoto *string
	isAdmin      bool
	isApproved   bool
	createdAt    time.Time
}

func NewMember(name, surname string, username Username, passwordHash string, isAdmin bool) (*Member, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(surname) == "" {
		return nil, ErrEmptyName
	}
	return &Member{
		id:           uuid.New(),
		name:         name,
		surname:      surname,
		username:     username,
		passwordHash: passwordHash,
		isAdmin:      isAdmin,
		isApproved:   false,
	}, nil
}

func ReconstructMember(
	id uuid.UUID,
	name, surname string,
	username Username,
	passwordHash string,
	profilePhoto *string,
	isAdmin, isApproved bool,
	createdAt time.Time,
) *Member {
	return &Member{
		id:           id,
		name:         name,
		surname:      surname,
		username:     username,
		passwordHash: passwordHash,
		profilePhoto: profilePhoto,
		isAdmin:      isAdmin,
		isApproved:   isApproved,
		createdAt:    createdAt,
	}
}

func (m *Member) Approve() {
	m.isApproved = true
}

func (m *Member) Role() Role {
	if m.isAdmin {
		return RoleAdmin
	}
	return RoleMember
}

func (m *Member) ID() uuid.UUID         { return m.id }
func (m *Member) Name() string          { return m.name }
func (m *Member) Surname() string       { return m.surname }
func (m *Member) Username() Username    { return m.username }
func (m *Member) PasswordHash() string  { return m.passwordHash }
func (m *Member) ProfilePhoto() *string { return m.profilePhoto }
func (m *Member) IsAdmin() bool         { return m.isAdmin }
func (m *Member) IsApproved() bool      { return m.isApproved }
func (m *Member) CreatedAt() time.Time  { return m.createdAt }
