package faker

// Phone generates phone numbers.
type Phone struct {
	f *Faker
}

// Number fills format, or one of the locale's formats when format is empty.
// '#' becomes any digit and '!' a digit from 2 to 9.
func (p *Phone) Number(format string) string {
	if format == "" {
		format = p.f.pick("phone_number", "formats")
	}
	return p.f.Helpers.ReplaceSymbolWithNumber(format, 0)
}
