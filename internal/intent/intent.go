// Package intent maps free-text visitor messages onto a closed set of intents
// using weighted keyword matching against a fixed catalogue.
package intent

// Intent is the category of need a message is classified into.
type Intent int

const (
	Unknown Intent = iota
	Greeting
	Name
	Skills
	Frontend
	Backend
	Experience
	Education
	Projects
	ProjectDetails
	ResumeBuilder
	Analytics
	Ecommerce
	CRM
	Portfolio3D
	Contact
	Location
	Availability
	Hobbies
	Help
	Thanks
	Goodbye
	Pricing
	Timeline
)

var intentNames = map[Intent]string{
	Unknown:        "unknown",
	Greeting:       "greeting",
	Name:           "name",
	Skills:         "skills",
	Frontend:       "frontend",
	Backend:        "backend",
	Experience:     "experience",
	Education:      "education",
	Projects:       "projects",
	ProjectDetails: "project_details",
	ResumeBuilder:  "resume_builder",
	Analytics:      "analytics",
	Ecommerce:      "ecommerce",
	CRM:            "crm",
	Portfolio3D:    "3d_portfolio",
	Contact:        "contact",
	Location:       "location",
	Availability:   "availability",
	Hobbies:        "hobbies",
	Help:           "help",
	Thanks:         "thanks",
	Goodbye:        "goodbye",
	Pricing:        "pricing",
	Timeline:       "timeline",
}

// String returns the wire label for the intent (used in API responses and logs).
func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}
