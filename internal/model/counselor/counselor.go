package counselor

// SessionType is the modality a counseling session is held in.
type SessionType string

const (
	SessionOnline   SessionType = "online"
	SessionPhone    SessionType = "phone"
	SessionInPerson SessionType = "in-person"
)

// Label returns the human readable name shown in summaries.
func (t SessionType) Label() string {
	switch t {
	case SessionOnline:
		return "Video Call"
	case SessionPhone:
		return "Phone Call"
	case SessionInPerson:
		return "In-Person"
	default:
		return string(t)
	}
}

// Valid reports whether t is one of the known modalities.
func (t SessionType) Valid() bool {
	switch t {
	case SessionOnline, SessionPhone, SessionInPerson:
		return true
	}
	return false
}

// Counselor captures the provider attributes exposed to the frontend.
type Counselor struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Specializations []string      `json:"specializations"`
	Rating          float64       `json:"rating"`
	Experience      string        `json:"experience"`
	NextAvailable   string        `json:"nextAvailable"`
	SessionTypes    []SessionType `json:"sessionTypes"`
}

// Seed provides the counselor roster offered by the campus counseling center.
func Seed() []Counselor {
	return []Counselor{
		{
			ID:              "1",
			Name:            "Dr. Sarah Johnson",
			Specializations: []string{"Anxiety", "Depression", "Stress Management"},
			Rating:          4.9,
			Experience:      "8 years",
			NextAvailable:   "Tomorrow",
			SessionTypes:    []SessionType{SessionOnline, SessionInPerson, SessionPhone},
		},
		{
			ID:              "2",
			Name:            "Dr. Michael Chen",
			Specializations: []string{"Academic Stress", "Social Anxiety", "Life Transitions"},
			Rating:          4.8,
			Experience:      "6 years",
			NextAvailable:   "Today",
			SessionTypes:    []SessionType{SessionOnline, SessionPhone},
		},
		{
			ID:              "3",
			Name:            "Dr. Emily Rodriguez",
			Specializations: []string{"Trauma", "PTSD", "Relationship Issues"},
			Rating:          4.9,
			Experience:      "10 years",
			NextAvailable:   "Next Week",
			SessionTypes:    []SessionType{SessionOnline, SessionInPerson},
		},
	}
}
