package faker

import "strconv"

// registerMethods maps the names usable in Call and Fake to generators.
// Parameterized generators run with their defaults.
func (f *Faker) registerMethods() map[string]func() string {
	n, a, l, in, d, fi, c := f.Name, f.Address, f.Lorem, f.Internet, f.Database, f.Finance, f.Company

	return map[string]func() string{
		"name.firstName": n.FirstName,
		"name.lastName":  n.LastName,
		"name.prefix":    n.Prefix,
		"name.suffix":    n.Suffix,
		"name.fullName":  n.FullName,
		"name.jobTitle":  n.JobTitle,

		"address.zipCode":          func() string { return a.ZipCode("") },
		"address.city":             a.City,
		"address.cityPrefix":       a.CityPrefix,
		"address.citySuffix":       a.CitySuffix,
		"address.cityName":         a.CityName,
		"address.streetName":       a.StreetName,
		"address.streetSuffix":     a.StreetSuffix,
		"address.streetAddress":    func() string { return a.StreetAddress(false) },
		"address.buildingNumber":   a.BuildingNumber,
		"address.secondaryAddress": a.SecondaryAddress,
		"address.county":           a.County,
		"address.country":          a.Country,
		"address.countryCode":      func() string { return a.CountryCode(false) },
		"address.state":            func() string { return a.State(false) },
		"address.streetPrefix":     a.StreetPrefix,
		"address.stateAbbr":        a.StateAbbr,
		"address.latitude":         a.Latitude,
		"address.longitude":        a.Longitude,
		"address.direction":        func() string { return a.Direction(false) },
		"address.timeZone":         a.TimeZone,

		"lorem.word":       l.Word,
		"lorem.words":      func() string { return l.Words(3) },
		"lorem.sentence":   func() string { return l.Sentence(0) },
		"lorem.sentences":  func() string { return l.Sentences(0, "") },
		"lorem.paragraph":  func() string { return l.Paragraph(0) },
		"lorem.paragraphs": func() string { return l.Paragraphs(0, "") },
		"lorem.slug":       func() string { return l.Slug(3) },
		"lorem.lines":      func() string { return l.Lines(0) },
		"lorem.text":       l.Text,

		"internet.userName":     func() string { return in.UserName("", "") },
		"internet.email":        func() string { return in.Email("", "", "") },
		"internet.exampleEmail": func() string { return in.ExampleEmail("", "") },
		"internet.protocol":     in.Protocol,
		"internet.httpMethod":   in.HTTPMethod,
		"internet.url":          in.URL,
		"internet.domainName":   in.DomainName,
		"internet.domainSuffix": in.DomainSuffix,
		"internet.domainWord":   in.DomainWord,
		"internet.ip":           in.IP,
		"internet.ipv6":         in.IPv6,
		"internet.port":         func() string { return strconv.Itoa(in.Port()) },
		"internet.mac":          func() string { return in.Mac(DefaultMacSeparator) },
		"internet.color":        func() string { return in.Color(0, 0, 0) },
		"internet.password":     func() string { return in.Password(0) },
		"internet.avatar":       in.Avatar,
		"internet.userAgent":    in.UserAgent,

		"database.column":    d.Column,
		"database.type":      d.Type,
		"database.collation": d.Collation,
		"database.engine":    d.Engine,

		"finance.account":          func() string { return fi.Account(0) },
		"finance.amount": func() string {
			s, _ := fi.Amount(0, 1000, 2)
			return s
		},
		"finance.creditCardNumber": func() string { return fi.CreditCardNumber("") },
		"finance.creditCardCVV":    fi.CreditCardCVV,
		"finance.creditCardIssuer": fi.CreditCardIssuer,
		"finance.accountName":      fi.AccountName,
		"finance.transactionType":  fi.TransactionType,
		"finance.mask":             func() string { return fi.Mask(0, true, true) },

		"phone.number": func() string { return f.Phone.Number("") },

		"company.companyName":   c.Name,
		"company.companySuffix": c.Suffix,
		"company.catchPhrase":   c.CatchPhrase,
		"company.bs":            c.BS,

		"time.recent": func() string { return f.Time.RecentFormat(TimeFormatUnix) },

		"datatype.number": func() string {
			v, _ := f.Datatype.Number(0, 99999)
			return strconv.Itoa(v)
		},
		"datatype.float": func() string {
			v, _ := f.Datatype.Float(0, 99999, 2)
			return strconv.FormatFloat(v, 'f', 2, 64)
		},
		"datatype.boolean":     func() string { return strconv.FormatBool(f.Datatype.Boolean()) },
		"datatype.uuid":        func() string { return f.Datatype.UUID().String() },
		"datatype.hexadecimal": func() string { return f.Datatype.Hexadecimal(1) },
		"datatype.string":      func() string { return f.Datatype.String(10) },
	}
}
