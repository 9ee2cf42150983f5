package app

// Section is one page of the editor. The set is closed; dispatch switches
// over it exhaustively.
type Section int

const (
	SectionSettings Section = iota
	SectionModels
	SectionStacks
	SectionSkills
	SectionTools
	SectionHooks
)

var sectionNames = [...]string{"Settings", "Models", "Stacks", "Skills", "Tools", "Hooks"}

func (s Section) String() string {
	if int(s) < len(sectionNames) {
		return sectionNames[s]
	}
	return "Unknown"
}

// Sections lists every section in display order.
func Sections() []Section {
	return []Section{
		SectionSettings,
		SectionModels,
		SectionStacks,
		SectionSkills,
		SectionTools,
		SectionHooks,
	}
}

// Next cycles forward through the sections.
func (s Section) Next() Section {
	return Section((int(s) + 1) % len(sectionNames))
}

// Prev cycles backward through the sections.
func (s Section) Prev() Section {
	return Section((int(s) + len(sectionNames) - 1) % len(sectionNames))
}

// SectionFromDigit maps the number row (1..6) to a section.
func SectionFromDigit(d int) (Section, bool) {
	if d < 1 || d > len(sectionNames) {
		return 0, false
	}
	return Section(d - 1), true
}

// View is the mode within a section.
type View int

const (
	ViewList View = iota
	ViewDetail
)
