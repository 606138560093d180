package models

// EnquiryStatus defines the lifecycle states of an enquiry.
type EnquiryStatus string

const (
	InProcess     EnquiryStatus = "in_process"
	Converted     EnquiryStatus = "converted"
	NotInterested EnquiryStatus = "not_interested"
)

// EnquiryStatusLabels maps status codes to display labels.
var EnquiryStatusLabels = map[EnquiryStatus]string{
	InProcess:     "In Process",
	Converted:     "Converted",
	NotInterested: "Not Interested",
}

// EnquiryStatusChoices lists statuses in display order for select inputs.
var EnquiryStatusChoices = []EnquiryStatus{InProcess, Converted, NotInterested}

// EnquiryStatusLabel returns the display label for a status, falling back to
// the raw code for unknown values.
func EnquiryStatusLabel(s EnquiryStatus) string {
	if label, ok := EnquiryStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
)

// Standard is the grade/class level shared by admissions and lectures.
type Standard string

const (
	JrKG       Standard = "jr_kg"
	SrKG       Standard = "sr_kg"
	Standard1  Standard = "1"
	Standard2  Standard = "2"
	Standard3  Standard = "3"
	Standard4  Standard = "4"
	Standard5  Standard = "5"
	Standard6  Standard = "6"
	Standard7  Standard = "7"
	Standard8  Standard = "8"
	Standard9  Standard = "9"
	Standard10 Standard = "10"
	Standard11 Standard = "11"
	Standard12 Standard = "12"
)

// StandardLabels maps standard codes to display labels.
var StandardLabels = map[Standard]string{
	JrKG:       "Jr. KG",
	SrKG:       "Sr. KG",
	Standard1:  "1st",
	Standard2:  "2nd",
	Standard3:  "3rd",
	Standard4:  "4th",
	Standard5:  "5th",
	Standard6:  "6th",
	Standard7:  "7th",
	Standard8:  "8th",
	Standard9:  "9th",
	Standard10: "10th",
	Standard11: "11th",
	Standard12: "12th",
}

// StandardChoices lists standards in academic order for select inputs.
var StandardChoices = []Standard{
	JrKG, SrKG,
	Standard1, Standard2, Standard3, Standard4, Standard5,
	Standard6, Standard7, Standard8, Standard9, Standard10,
	Standard11, Standard12,
}

// StandardLabel returns the display label for a standard, falling back to the
// raw code for unknown values.
func StandardLabel(s Standard) string {
	if label, ok := StandardLabels[s]; ok {
		return label
	}
	return string(s)
}

// Stream is the optional senior-level academic stream.
type Stream string

const (
	Science  Stream = "science"
	Commerce Stream = "commerce"
	Arts     Stream = "arts"
)

// StreamLabels maps stream codes to display labels.
var StreamLabels = map[Stream]string{
	Science:  "Science",
	Commerce: "Commerce",
	Arts:     "Arts",
}

// StreamLabel returns the display label for a stream; empty input yields "".
func StreamLabel(s Stream) string {
	if s == "" {
		return ""
	}
	if label, ok := StreamLabels[s]; ok {
		return label
	}
	return string(s)
}

// Course is the preferred course selected on an enquiry. Senior standards
// carry a stream suffix, junior ones do not.
type Course string

// CourseLabels maps course codes to display labels.
var CourseLabels = map[Course]string{
	"jr_kg":       "Jr. KG",
	"sr_kg":       "Sr. KG",
	"1":           "1st Standard",
	"2":           "2nd Standard",
	"3":           "3rd Standard",
	"4":           "4th Standard",
	"5":           "5th Standard",
	"6":           "6th Standard",
	"7":           "7th Standard",
	"8":           "8th Standard",
	"9":           "9th Standard",
	"10":          "10th Standard",
	"11_science":  "11th Standard - Science",
	"11_commerce": "11th Standard - Commerce",
	"11_arts":     "11th Standard - Arts",
	"12_science":  "12th Standard - Science",
	"12_commerce": "12th Standard - Commerce",
	"12_arts":     "12th Standard - Arts",
}

// CourseChoices lists courses in academic order for select inputs.
var CourseChoices = []Course{
	"jr_kg", "sr_kg",
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "10",
	"11_science", "11_commerce", "11_arts",
	"12_science", "12_commerce", "12_arts",
}

// CourseLabel returns the display label for a course, falling back to the raw
// code for unknown values.
func CourseLabel(c Course) string {
	if label, ok := CourseLabels[c]; ok {
		return label
	}
	return string(c)
}

// Role identifies the capability set attached to a request principal.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleFaculty   Role = "faculty"
	RoleStaff     Role = "staff"
)
