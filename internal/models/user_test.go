package models

import "testing"

func TestUserRoleIsEmployee(t *testing.T) {
	employees := []UserRole{RoleAdmin, RoleBarista, RoleCashier}
	for _, r := range employees {
		if !r.IsEmployee() {
			t.Errorf("%s personel sayılmalıydı", r)
		}
	}

	if RoleClient.IsEmployee() {
		t.Error("client personel sayılmamalı")
	}
	if UserRole("unknown").IsEmployee() {
		t.Error("bilinmeyen rol personel sayılmamalı")
	}
}

func TestUserRoleIsAdmin(t *testing.T) {
	if !RoleAdmin.IsAdmin() {
		t.Error("admin rolü admin sayılmalıydı")
	}
	for _, r := range []UserRole{RoleClient, RoleBarista, RoleCashier} {
		if r.IsAdmin() {
			t.Errorf("%s admin sayılmamalı", r)
		}
	}
}
