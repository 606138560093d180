package auth

import (
	"testing"

	"super20-academy/app/config"
	"super20-academy/app/models"
)

func TestJWTRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	tests := []struct {
		name      string
		principal models.Principal
	}{
		{
			name: "staff principal",
			principal: models.Principal{
				UserID:   "u1",
				Email:    "admin@super20.test",
				FullName: "Admin",
				Role:     models.RoleStaff,
			},
		},
		{
			name: "faculty principal carries faculty id",
			principal: models.Principal{
				UserID:    "u2",
				Email:     "faculty@super20.test",
				FullName:  "Faculty Member",
				Role:      models.RoleFaculty,
				FacultyID: "f1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateJWT(&tt.principal)
			if err != nil {
				t.Fatalf("GenerateJWT() failed: %v", err)
			}

			claims, err := ValidateJWT(token)
			if err != nil {
				t.Fatalf("ValidateJWT() failed: %v", err)
			}
			if claims.UserID != tt.principal.UserID {
				t.Errorf("UserID = %s, want %s", claims.UserID, tt.principal.UserID)
			}
			if claims.Role != tt.principal.Role {
				t.Errorf("Role = %s, want %s", claims.Role, tt.principal.Role)
			}
			if claims.FacultyID != tt.principal.FacultyID {
				t.Errorf("FacultyID = %s, want %s", claims.FacultyID, tt.principal.FacultyID)
			}
		})
	}
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	token, err := GenerateJWT(&models.Principal{UserID: "u1", Role: models.RoleStaff})
	if err != nil {
		t.Fatalf("GenerateJWT() failed: %v", err)
	}

	if _, err := ValidateJWT(token + "x"); err == nil {
		t.Error("ValidateJWT() accepted a tampered token")
	}

	config.AppConfig = &config.Config{JWTSecret: "different-secret"}
	if _, err := ValidateJWT(token); err == nil {
		t.Error("ValidateJWT() accepted a token signed with another key")
	}
}
