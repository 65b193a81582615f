package resume

import (
	"encoding/json"
	"fmt"
)

// Partial is a sparse Resume produced by an import. A nil section is absent;
// an empty non-nil section means the import looked and found nothing.
type Partial struct {
	Basics         *Basics         `json:"basics,omitempty"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []SkillGroup    `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
	Achievements   []Achievement   `json:"achievements"`
	Languages      []Language      `json:"languages"`
	Theme          *PartialTheme   `json:"theme,omitempty"`
}

// PartialTheme is Theme with an optional dark-mode flag, so an import that
// leaves isDarkMode out keeps the caller's setting.
type PartialTheme struct {
	FontFamily      string `json:"fontFamily,omitempty"`
	PrimaryColor    string `json:"primaryColor,omitempty"`
	SecondaryColor  string `json:"secondaryColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	IsDarkMode      *bool  `json:"isDarkMode,omitempty"`
}

func (t PartialTheme) isZero() bool {
	return t.FontFamily == "" && t.PrimaryColor == "" && t.SecondaryColor == "" &&
		t.BackgroundColor == "" && t.TextColor == "" && t.IsDarkMode == nil
}

// IsEmpty reports whether p carries nothing that Merge would apply.
func (p Partial) IsEmpty() bool {
	if p.Basics != nil && *p.Basics != (Basics{}) {
		return false
	}
	if p.Theme != nil && !p.Theme.isZero() {
		return false
	}
	return len(p.Experience) == 0 &&
		len(p.Education) == 0 &&
		len(p.Skills) == 0 &&
		len(p.Certifications) == 0 &&
		len(p.Projects) == 0 &&
		len(p.Achievements) == 0 &&
		len(p.Languages) == 0
}

// FromFields builds the partial emitted for text imports: the recovered
// basics plus empty list sections.
func FromFields(name, email, phone string) Partial {
	return Partial{
		Basics: &Basics{
			Name:  name,
			Email: email,
			Phone: phone,
		},
		Experience: []Experience{},
		Education:  []Education{},
		Skills:     []SkillGroup{},
	}
}

// FromTree converts a decoded JSON document into a Partial. Unknown keys are
// ignored; a tree whose known keys have the wrong shape is rejected.
func FromTree(tree any) (Partial, error) {
	if _, ok := tree.(map[string]any); !ok {
		return Partial{}, fmt.Errorf("resume document must be a JSON object, got %T", tree)
	}
	raw, err := json.Marshal(tree)
	if err != nil {
		return Partial{}, fmt.Errorf("re-encode resume document: %w", err)
	}
	var p Partial
	if err := json.Unmarshal(raw, &p); err != nil {
		return Partial{}, fmt.Errorf("decode resume document: %w", err)
	}
	return p, nil
}
