package constants

const (
	InviteUser          = "invite_user"
	ManageUsers         = "manage_users"
	ManageInvitations   = "manage_invitations"
	ReviewAbstracts     = "review_abstracts"
	ManageNotifications = "manage_notifications"
	ManageCommittee     = "manage_committee"
	ManageAwards        = "manage_awards"
)

// PermissionRoles maps each permission to the roles allowed to perform it.
// Regular users may send invitations; everything else is admin-only.
var PermissionRoles = map[string][]string{
	InviteUser:          {User, Admin},
	ManageUsers:         {Admin},
	ManageInvitations:   {Admin},
	ReviewAbstracts:     {Admin},
	ManageNotifications: {Admin},
	ManageCommittee:     {Admin},
	ManageAwards:        {Admin},
}

// AllowedRole returns true if role is in the list of allowed roles for the permission.
func AllowedRole(permission, role string) bool {
	roles, ok := PermissionRoles[permission]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
