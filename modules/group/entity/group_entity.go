package entity

import (
	"time"

	"familyhub/core/entity"
)

type GroupType string

const (
	GroupTypeFamily  GroupType = "family"
	GroupTypeCouple  GroupType = "couple"
	GroupTypeFriends GroupType = "friends"
	GroupTypeWork    GroupType = "work"
)

type MemberRole string

const (
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

type Group struct {
	entity.BaseEntity
	Name                 string            `db:"name" json:"name"`
	Slug                 string            `db:"slug" json:"slug"`
	Type                 GroupType         `db:"type" json:"type"`
	OwnerEmail           string            `db:"owner_email" json:"owner"`
	Members              entity.StringList `db:"members" json:"members"`
	MemberNames          entity.EmailMap   `db:"member_names" json:"member_names"`
	MemberRoles          entity.EmailMap   `db:"member_roles" json:"member_roles"`
	NotificationsEnabled bool              `db:"notifications_enabled" json:"notifications_enabled"`
	IsPrivate            bool              `db:"is_private" json:"is_private"`
	AnniversaryDate      *time.Time        `db:"anniversary_date" json:"anniversary_date,omitempty"`
}

func (g *Group) HasMember(email string) bool {
	return g.Members.Contains(email)
}

func (g *Group) RoleOf(email string) MemberRole {
	if role, ok := g.MemberRoles[email]; ok {
		return MemberRole(role)
	}
	return RoleMember
}

// IsAdmin reports whether the email may manage the group. The owner always
// counts as admin.
func (g *Group) IsAdmin(email string) bool {
	return email == g.OwnerEmail || g.RoleOf(email) == RoleAdmin
}

// AddMember appends the member and records their display name. Appending an
// existing member is a no-op on the members list, so the call is idempotent.
func (g *Group) AddMember(email, name string) {
	if !g.HasMember(email) {
		g.Members = append(g.Members, email)
	}
	if g.MemberNames == nil {
		g.MemberNames = entity.EmailMap{}
	}
	g.MemberNames[email] = name
	if g.MemberRoles == nil {
		g.MemberRoles = entity.EmailMap{}
	}
	if _, ok := g.MemberRoles[email]; !ok {
		g.MemberRoles[email] = string(RoleMember)
	}
}

func (g *Group) RemoveMember(email string) {
	filtered := g.Members[:0]
	for _, m := range g.Members {
		if m != email {
			filtered = append(filtered, m)
		}
	}
	g.Members = filtered
	delete(g.MemberNames, email)
	delete(g.MemberRoles, email)
}

type PaginatedGroupEntity = entity.Pagination[Group]
