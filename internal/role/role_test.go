package role

import (
	"encoding/json"
	"testing"
)

func TestToRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"ADMIN", RoleAdmin},
		{"user", RoleUser},
		{" User ", RoleUser},
		{"guest", RoleUnknown},
	}
	for _, tt := range tests {
		if got := ToRole(tt.in); got != tt.want {
			t.Errorf("ToRole(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoleJSON(t *testing.T) {
	var payload struct {
		Role Role `json:"role"`
	}
	if err := json.Unmarshal([]byte(`{"role": "ADMIN"}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Role != RoleAdmin {
		t.Errorf("expected admin, got %v", payload.Role)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"role":"ADMIN"}` {
		t.Errorf("unexpected encoding %s", data)
	}

	if err := json.Unmarshal([]byte(`{"role": "ROOT"}`), &payload); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestAtLeast(t *testing.T) {
	if !RoleAdmin.AtLeast(RoleUser) {
		t.Error("admin should satisfy user")
	}
	if RoleUser.AtLeast(RoleAdmin) {
		t.Error("user should not satisfy admin")
	}
	if RoleUnknown.AtLeast(RoleUser) {
		t.Error("unknown should not satisfy user")
	}
}
