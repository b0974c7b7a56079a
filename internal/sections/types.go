package sections

// Section identifies one anchored block of the page
type Section int

// Section constants list every block in document order
const (
	Home Section = iota
	About
	Skills
	Education
	Experience
	Services
	Projects
	Volunteer
	Languages
	Contact
)

// All returns every section in document order
func All() []Section {
	return []Section{
		Home,
		About,
		Skills,
		Education,
		Experience,
		Services,
		Projects,
		Volunteer,
		Languages,
		Contact,
	}
}

// String returns the section's display title
func (s Section) String() string {
	switch s {
	case Home:
		return "Home"
	case About:
		return "About"
	case Skills:
		return "Skills"
	case Education:
		return "Education"
	case Experience:
		return "Experience"
	case Services:
		return "Services"
	case Projects:
		return "Projects"
	case Volunteer:
		return "Volunteer"
	case Languages:
		return "Languages"
	case Contact:
		return "Contact"
	default:
		return "Unknown"
	}
}

// ID returns the stable anchor id used by navigation
func (s Section) ID() string {
	switch s {
	case Home:
		return "home"
	case About:
		return "about"
	case Skills:
		return "skills"
	case Education:
		return "education"
	case Experience:
		return "experience"
	case Services:
		return "services"
	case Projects:
		return "projects"
	case Volunteer:
		return "volunteer"
	case Languages:
		return "languages"
	case Contact:
		return "contact"
	default:
		return ""
	}
}

// FromID resolves an anchor id back to its section
func FromID(id string) (Section, bool) {
	for _, s := range All() {
		if s.ID() == id {
			return s, true
		}
	}
	return Home, false
}
