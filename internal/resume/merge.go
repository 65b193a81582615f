package resume

// Merge applies p on top of base. Non-empty basics and theme fields overwrite,
// non-empty sections replace the existing section, and anything empty or
// absent leaves base untouched. base is not modified.
func Merge(base Resume, p Partial) Resume {
	out := base
	if p.Basics != nil {
		out.Basics = mergeBasics(base.Basics, *p.Basics)
	}
	if len(p.Experience) > 0 {
		out.Experience = append([]Experience(nil), p.Experience...)
	}
	if len(p.Education) > 0 {
		out.Education = append([]Education(nil), p.Education...)
	}
	if len(p.Skills) > 0 {
		out.Skills = append([]SkillGroup(nil), p.Skills...)
	}
	if len(p.Certifications) > 0 {
		out.Certifications = append([]Certification(nil), p.Certifications...)
	}
	if len(p.Projects) > 0 {
		out.Projects = append([]Project(nil), p.Projects...)
	}
	if len(p.Achievements) > 0 {
		out.Achievements = append([]Achievement(nil), p.Achievements...)
	}
	if len(p.Languages) > 0 {
		out.Languages = append([]Language(nil), p.Languages...)
	}
	if p.Theme != nil {
		out.Theme = mergeTheme(base.Theme, *p.Theme)
	}
	return out
}

func mergeBasics(dst, src Basics) Basics {
	setIf(&dst.Name, src.Name)
	setIf(&dst.Email, src.Email)
	setIf(&dst.Phone, src.Phone)
	setIf(&dst.Location, src.Location)
	setIf(&dst.Title, src.Title)
	setIf(&dst.Summary, src.Summary)
	setIf(&dst.LinkedIn, src.LinkedIn)
	setIf(&dst.GitHub, src.GitHub)
	setIf(&dst.Website, src.Website)
	setIf(&dst.Photo, src.Photo)
	return dst
}

func mergeTheme(dst Theme, src PartialTheme) Theme {
	setIf(&dst.FontFamily, src.FontFamily)
	setIf(&dst.PrimaryColor, src.PrimaryColor)
	setIf(&dst.SecondaryColor, src.SecondaryColor)
	setIf(&dst.BackgroundColor, src.BackgroundColor)
	setIf(&dst.TextColor, src.TextColor)
	if src.IsDarkMode != nil {
		dst.IsDarkMode = *src.IsDarkMode
	}
	return dst
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
