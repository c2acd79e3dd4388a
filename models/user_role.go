package models

type UserRole string

const (
	UserRoleSystem UserRole = "SYSTEM"
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleUser   UserRole = "USER"
)

var roleHumanName = map[UserRole]string{
	UserRoleSystem: "System administrator",
	UserRoleAdmin:  "Administrator",
	UserRoleUser:   "Staff user",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsKnown() bool {
	_, exist := roleHumanName[r]
	return exist
}

// Token kinds carried in the "portal" JWT claim.
const (
	TokenKindStaff  = "staff"
	TokenKindWorker = "worker"
)
