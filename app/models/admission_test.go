package models

import (
	"testing"
	"time"
)

func TestAdmissionFullName(t *testing.T) {
	tests := []struct {
		name      string
		admission Admission
		want      string
	}{
		{
			name:      "with middle name",
			admission: Admission{Surname: "Joshi", Name: "Meera", Middlename: "S"},
			want:      "Joshi Meera S",
		},
		{
			name:      "without middle name",
			admission: Admission{Surname: "Patil", Name: "Rohan"},
			want:      "Patil Rohan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.admission.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAdmissionAge(t *testing.T) {
	today := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{name: "birthday already passed this year", dob: time.Date(2010, 3, 1, 0, 0, 0, 0, time.UTC), want: 15},
		{name: "birthday later this year", dob: time.Date(2010, 12, 1, 0, 0, 0, 0, time.UTC), want: 14},
		{name: "birthday today", dob: time.Date(2010, 10, 15, 0, 0, 0, 0, time.UTC), want: 15},
		{name: "birthday tomorrow", dob: time.Date(2010, 10, 16, 0, 0, 0, 0, time.UTC), want: 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Admission{DateOfBirth: tt.dob}
			if got := a.Age(today); got != tt.want {
				t.Errorf("Age() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEnumLabels(t *testing.T) {
	if got := StandardLabel(Standard10); got != "10th" {
		t.Errorf("StandardLabel(10) = %q, want 10th", got)
	}
	if got := StandardLabel(JrKG); got != "Jr. KG" {
		t.Errorf("StandardLabel(jr_kg) = %q, want Jr. KG", got)
	}
	if got := StandardLabel(Standard("99")); got != "99" {
		t.Errorf("unknown standard should fall back to raw code, got %q", got)
	}

	if got := CourseLabel("11_science"); got != "11th Standard - Science" {
		t.Errorf("CourseLabel(11_science) = %q", got)
	}
	if got := StreamLabel(""); got != "" {
		t.Errorf("empty stream should render empty, got %q", got)
	}
	if got := EnquiryStatusLabel(NotInterested); got != "Not Interested" {
		t.Errorf("EnquiryStatusLabel(not_interested) = %q", got)
	}

	if len(CourseChoices) != len(CourseLabels) {
		t.Errorf("course choices (%d) and labels (%d) disagree", len(CourseChoices), len(CourseLabels))
	}
	if len(StandardChoices) != len(StandardLabels) {
		t.Errorf("standard choices (%d) and labels (%d) disagree", len(StandardChoices), len(StandardLabels))
	}
}
