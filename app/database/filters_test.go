package database

import (
	"strings"
	"testing"
)

func TestBuildEnquiryWhere(t *testing.T) {
	tests := []struct {
		name         string
		filters      EnquiryFilters
		wantClauses  []string
		wantArgCount int
	}{
		{
			name:         "no filters yields no clause",
			filters:      EnquiryFilters{},
			wantArgCount: 0,
		},
		{
			name:         "search matches name, guardian and phone with one arg",
			filters:      EnquiryFilters{Search: "rohan"},
			wantClauses:  []string{"student_name ILIKE $1", "guardian_name ILIKE $1", "phone_number ILIKE $1"},
			wantArgCount: 1,
		},
		{
			name:         "status filter",
			filters:      EnquiryFilters{Status: "converted"},
			wantClauses:  []string{"status = $1"},
			wantArgCount: 1,
		},
		{
			name:         "all filters combine with AND",
			filters:      EnquiryFilters{Search: "x", Status: "in_process", DateFrom: "2025-01-01", DateTo: "2025-01-31"},
			wantClauses:  []string{"status = $2", "enquiry_date::date >= $3", "enquiry_date::date <= $4", " AND "},
			wantArgCount: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildEnquiryWhere(tt.filters)
			if len(args) != tt.wantArgCount {
				t.Errorf("got %d args, want %d", len(args), tt.wantArgCount)
			}
			if tt.wantArgCount == 0 && where != "" {
				t.Errorf("expected empty clause, got %q", where)
			}
			for _, clause := range tt.wantClauses {
				if !strings.Contains(where, clause) {
					t.Errorf("clause %q missing from %q", clause, where)
				}
			}
		})
	}
}

func TestBuildEnquiryWhereEscapesSearch(t *testing.T) {
	_, args := buildEnquiryWhere(EnquiryFilters{Search: "ro'han"})
	if len(args) != 1 {
		t.Fatalf("got %d args, want 1", len(args))
	}
	if args[0] != "%ro'han%" {
		t.Errorf("search arg = %v, want parameterized %%ro'han%%", args[0])
	}
}

func TestBuildAdmissionWhere(t *testing.T) {
	tests := []struct {
		name         string
		filters      AdmissionFilters
		wantClauses  []string
		wantArgCount int
	}{
		{
			name:         "no filters yields no clause",
			filters:      AdmissionFilters{},
			wantArgCount: 0,
		},
		{
			name:         "standard is an exact match",
			filters:      AdmissionFilters{Standard: "10"},
			wantClauses:  []string{"standard = $1"},
			wantArgCount: 1,
		},
		{
			name:         "batch is a contains match",
			filters:      AdmissionFilters{Batch: "Morning"},
			wantClauses:  []string{"batch ILIKE $1"},
			wantArgCount: 1,
		},
		{
			name:         "search covers name, surname, mobile and school",
			filters:      AdmissionFilters{Search: "patil"},
			wantClauses:  []string{"name ILIKE $1", "surname ILIKE $1", "mobile_1 ILIKE $1", "school_college ILIKE $1"},
			wantArgCount: 1,
		},
		{
			name:         "date range binds both bounds",
			filters:      AdmissionFilters{DateFrom: "2025-06-01", DateTo: "2025-06-30"},
			wantClauses:  []string{"submitted_at::date >= $1", "submitted_at::date <= $2"},
			wantArgCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildAdmissionWhere(tt.filters)
			if len(args) != tt.wantArgCount {
				t.Errorf("got %d args, want %d", len(args), tt.wantArgCount)
			}
			for _, clause := range tt.wantClauses {
				if !strings.Contains(where, clause) {
					t.Errorf("clause %q missing from %q", clause, where)
				}
			}
		})
	}
}

func TestBuildLectureWhere(t *testing.T) {
	where, args := buildLectureWhere(LectureFilters{FacultyID: "f1", Query: "algebra"})
	if len(args) != 2 {
		t.Fatalf("got %d args, want 2", len(args))
	}
	for _, clause := range []string{"l.faculty_id = $1", "l.title ILIKE $2", "l.description ILIKE $2", "l.batch ILIKE $2"} {
		if !strings.Contains(where, clause) {
			t.Errorf("clause %q missing from %q", clause, where)
		}
	}

	where, args = buildLectureWhere(LectureFilters{})
	if where != "" || len(args) != 0 {
		t.Errorf("empty filters produced %q with %d args", where, len(args))
	}
}
