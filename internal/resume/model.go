package resume

// Resume is the structured résumé state owned by the editor.
type Resume struct {
	Basics         Basics          `json:"basics"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []SkillGroup    `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
	Achievements   []Achievement   `json:"achievements"`
	Languages      []Language      `json:"languages"`
	Theme          Theme           `json:"theme"`
}

// Basics holds contact and headline fields.
type Basics struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Photo    string `json:"photo,omitempty"`
}

type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

type Education struct {
	ID           string   `json:"id"`
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	Field        string   `json:"field"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	GPA          string   `json:"gpa,omitempty"`
	Achievements []string `json:"achievements"`
}

type SkillGroup struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Items    []Skill `json:"items"`
}

// Skill level is one of Beginner, Intermediate, Advanced, Expert.
type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Certification struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Issuer        string `json:"issuer"`
	IssueDate     string `json:"issueDate"`
	ExpiryDate    string `json:"expiryDate,omitempty"`
	CredentialURL string `json:"credentialUrl,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
}

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Language proficiency is one of Basic, Intermediate, Fluent, Native.
type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// Theme controls preview styling.
type Theme struct {
	FontFamily      string `json:"fontFamily"`
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	IsDarkMode      bool   `json:"isDarkMode"`
}

// DefaultTheme is applied to new drafts.
func DefaultTheme() Theme {
	return Theme{
		FontFamily:      "Inter, sans-serif",
		PrimaryColor:    "#2563eb",
		SecondaryColor:  "#1e40af",
		BackgroundColor: "#ffffff",
		TextColor:       "#111827",
	}
}

// Empty returns a blank résumé with empty sections and the default theme.
func Empty() Resume {
	return Resume{
		Experience:     []Experience{},
		Education:      []Education{},
		Skills:         []SkillGroup{},
		Certifications: []Certification{},
		Projects:       []Project{},
		Achievements:   []Achievement{},
		Languages:      []Language{},
		Theme:          DefaultTheme(),
	}
}
