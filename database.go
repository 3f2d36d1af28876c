package faker

// Database generates SQL schema vocabulary.
type Database struct {
	f *Faker
}

func (d *Database) Column() string { return d.f.pick("database", "column") }

func (d *Database) Type() string { return d.f.pick("database", "type") }

func (d *Database) Collation() string { return d.f.pick("database", "collation") }

func (d *Database) Engine() string { return d.f.pick("database", "engine") }
