package faker

import "strings"

// Company generates business names and marketing copy.
type Company struct {
	f *Faker
}

// Name renders one of the locale's company name formats, e.g.
// "Will, Fisher and Marks".
func (c *Company) Name() string {
	if format := c.f.pick("company", "name"); format != "" {
		return c.f.Fake(format)
	}
	return c.f.Name.LastName() + " " + c.Suffix()
}

func (c *Company) Suffix() string { return c.f.pick("company", "suffix") }

// CatchPhrase joins an adjective, a descriptor and a noun, e.g.
// "Multi-layered client-server neural-net".
func (c *Company) CatchPhrase() string {
	return c.join("adjective", "descriptor", "noun")
}

// BS returns business speak such as "synergize scalable e-markets".
func (c *Company) BS() string {
	return c.join("bs_verb", "bs_adjective", "bs_noun")
}

func (c *Company) join(keys ...string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := c.f.pick("company", k); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}
