package models

import "testing"

func TestNewUser(t *testing.T) {
	tests := []struct {
		name           string
		username       string
		hashedPassword string
	}{
		{
			name:           "regular user",
			username:       "kakashi",
			hashedPassword: "$2a$04$fakehashfakehashfakehash",
		},
		{
			name:           "empty fields are accepted as-is",
			username:       "",
			hashedPassword: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := NewUser(tt.username, tt.hashedPassword)

			if user.Username != tt.username {
				t.Errorf("NewUser().Username = %q, want %q", user.Username, tt.username)
			}
			if user.Password != tt.hashedPassword {
				t.Errorf("NewUser().Password = %q, want %q", user.Password, tt.hashedPassword)
			}
			if !user.Enabled {
				t.Error("NewUser().Enabled = false, want true")
			}
			if user.ID != "" {
				t.Errorf("NewUser().ID = %q, want empty (assigned on insert)", user.ID)
			}
			if !user.CreatedAt.IsZero() || !user.UpdatedAt.IsZero() {
				t.Error("NewUser() timestamps should be zero until persisted")
			}
		})
	}
}
