package faker

import "strings"

// Name generates person names and job titles.
type Name struct {
	f *Faker
}

func (n *Name) FirstName() string { return n.f.pick("name", "first_name") }

func (n *Name) LastName() string { return n.f.pick("name", "last_name") }

func (n *Name) Prefix() string { return n.f.pick("name", "prefix") }

func (n *Name) Suffix() string { return n.f.pick("name", "suffix") }

// FullName renders one of the locale's name formats. Locales without formats
// get "first last".
func (n *Name) FullName() string {
	if format := n.f.pick("name", "name"); format != "" {
		return n.f.Fake(format)
	}
	return n.FirstName() + " " + n.LastName()
}

// JobTitle combines a descriptor, a level and a job, e.g. "Senior Data Analyst".
func (n *Name) JobTitle() string {
	parts := []string{
		n.f.pick("name", "title_descriptor"),
		n.f.pick("name", "title_level"),
		n.f.pick("name", "title_job"),
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
