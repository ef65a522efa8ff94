package domain

import "testing"

func TestCanManageAccounts(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleStaff, false},
		{RoleIntern, false},
	}
	for _, tc := range cases {
		got := CanManageAccounts(Identity{ID: 1, Role: tc.role})
		if got != tc.want {
			t.Fatalf("role %s: expected %v, got %v", tc.role, tc.want, got)
		}
	}
}

func TestCanReadProfile_OwnershipIsStrictIDEquality(t *testing.T) {
	staff := Identity{ID: 7, Role: RoleStaff}

	if !CanReadProfile(staff, 7) {
		t.Fatalf("owner must read own profile")
	}
	if CanReadProfile(staff, 8) {
		t.Fatalf("non-admin must not read another profile")
	}
	if !CanReadProfile(Identity{ID: 1, Role: RoleAdmin}, 8) {
		t.Fatalf("admin must read any profile")
	}
}

func TestCanUpdateEmployee(t *testing.T) {
	intern := Identity{ID: 3, Role: RoleIntern}

	if !CanUpdateEmployee(intern, 3) {
		t.Fatalf("owner must update own data")
	}
	if CanUpdateEmployee(intern, 4) {
		t.Fatalf("non-admin must not update another employee")
	}
	if !CanUpdateEmployee(Identity{ID: 9, Role: RoleAdmin}, 4) {
		t.Fatalf("admin must update any employee")
	}
}

func TestCanListProfiles(t *testing.T) {
	if CanListProfiles(Identity{ID: 2, Role: RoleStaff}) {
		t.Fatalf("staff must not list all profiles")
	}
	if !CanListProfiles(Identity{ID: 2, Role: RoleAdmin}) {
		t.Fatalf("admin must list all profiles")
	}
}
