package domain

// Authorization policy: pure decision functions evaluated after the
// authentication gate has produced an Identity. Ownership is strict id
// equality; roles never imply ownership.

// CanManageAccounts gates registration and account deletion.
func CanManageAccounts(actor Identity) bool {
	return actor.Role == RoleAdmin
}

// CanReadProfile allows the owner or an admin to read one profile.
func CanReadProfile(actor Identity, ownerID int64) bool {
	return actor.ID == ownerID || actor.Role == RoleAdmin
}

// CanUpdateEmployee allows the owner or an admin to update profile and
// account fields.
func CanUpdateEmployee(actor Identity, ownerID int64) bool {
	return actor.ID == ownerID || actor.Role == RoleAdmin
}

// CanListProfiles gates the full directory listing.
func CanListProfiles(actor Identity) bool {
	return actor.Role == RoleAdmin
}
