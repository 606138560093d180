package services

import (
	"testing"
	"time"

	"super20-academy/app/models"
)

func testLecture() *models.Lecture {
	return &models.Lecture{
		ID:       "lec-1",
		Title:    "Algebra Revision",
		Date:     time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
		Standard: models.Standard10,
		Batch:    "Morning A",
	}
}

func testRoster() []*models.Admission {
	return []*models.Admission{
		{ID: "s1", Surname: "Deshmukh", Name: "Aarav"},
		{ID: "s2", Surname: "Joshi", Name: "Meera", Middlename: "S"},
		{ID: "s3", Surname: "Patil", Name: "Rohan"},
	}
}

func TestBuildMarks(t *testing.T) {
	roster := testRoster()

	tests := []struct {
		name      string
		submitted map[string]string
		want      map[string]models.AttendanceStatus
	}{
		{
			name:      "explicit present and absent",
			submitted: map[string]string{"s1": "present", "s2": "absent", "s3": "present"},
			want: map[string]models.AttendanceStatus{
				"s1": models.Present, "s2": models.Absent, "s3": models.Present,
			},
		},
		{
			name:      "missing fields default to present",
			submitted: map[string]string{"s2": "absent"},
			want: map[string]models.AttendanceStatus{
				"s1": models.Present, "s2": models.Absent, "s3": models.Present,
			},
		},
		{
			name:      "ids outside the roster are dropped",
			submitted: map[string]string{"s1": "absent", "intruder": "absent"},
			want: map[string]models.AttendanceStatus{
				"s1": models.Absent, "s2": models.Present, "s3": models.Present,
			},
		},
		{
			name:      "unknown status values fall back to present",
			submitted: map[string]string{"s1": "late", "s2": ""},
			want: map[string]models.AttendanceStatus{
				"s1": models.Present, "s2": models.Present, "s3": models.Present,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marks := BuildMarks(roster, func(id string) string { return tt.submitted[id] })
			if len(marks) != len(tt.want) {
				t.Fatalf("BuildMarks() returned %d marks, want %d", len(marks), len(tt.want))
			}
			for id, want := range tt.want {
				if got := marks[id]; got != want {
					t.Errorf("marks[%s] = %s, want %s", id, got, want)
				}
			}
			if _, ok := marks["intruder"]; ok {
				t.Error("BuildMarks() kept a student id outside the roster")
			}
		})
	}
}

func TestRollupMessage(t *testing.T) {
	lecture := testLecture()
	roster := testRoster()

	tests := []struct {
		name      string
		absentees []*models.Admission
		want      string
	}{
		{
			name:      "no absentees uses the all-present template",
			absentees: nil,
			want:      "All students present for Algebra Revision (10th-Morning A) on 14-10-2025.",
		},
		{
			name:      "single absentee lists exactly that student",
			absentees: roster[1:2],
			want:      "Absentees for Algebra Revision (10th-Morning A) on 14-10-2025: Joshi Meera S.",
		},
		{
			name:      "multiple absentees are comma-joined in roster order",
			absentees: []*models.Admission{roster[0], roster[2]},
			want:      "Absentees for Algebra Revision (10th-Morning A) on 14-10-2025: Deshmukh Aarav, Patil Rohan.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RollupMessage(lecture, tt.absentees)
			if got != tt.want {
				t.Errorf("RollupMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRollupMessageJuniorStandard(t *testing.T) {
	lecture := testLecture()
	lecture.Standard = models.JrKG
	lecture.Batch = "B"

	got := RollupMessage(lecture, nil)
	want := "All students present for Algebra Revision (Jr. KG-B) on 14-10-2025."
	if got != want {
		t.Errorf("RollupMessage() = %q, want %q", got, want)
	}
}
