package faker

import "time"

// Fixed dates carried over from the reference data set.
var (
	transactionDate = time.Date(2012, time.February, 2, 0, 0, 0, 0, time.UTC)
	birthReference  = time.Date(1992, time.September, 20, 19, 35, 2, 0, time.UTC)
)

const (
	cardPosts        = 3
	cardTransactions = 3
	maxAgeYears      = 50
)

// Transaction is a single account movement.
type Transaction struct {
	Amount   string    `json:"amount" yaml:"amount"`
	Date     time.Time `json:"date" yaml:"date"`
	Business string    `json:"business" yaml:"business"`
	Name     string    `json:"name" yaml:"name"`
	Type     string    `json:"type" yaml:"type"`
	Account  string    `json:"account" yaml:"account"`
}

// Geo is a latitude and longitude pair.
type Geo struct {
	Lat string `json:"lat" yaml:"lat"`
	Lng string `json:"lng" yaml:"lng"`
}

// CompanyInfo describes an employer.
type CompanyInfo struct {
	Name        string `json:"name" yaml:"name"`
	CatchPhrase string `json:"catchPhrase" yaml:"catchPhrase"`
	BS          string `json:"bs" yaml:"bs"`
}

// Post is a block of placeholder text.
type Post struct {
	Words     string `json:"words" yaml:"words"`
	Sentence  string `json:"sentence" yaml:"sentence"`
	Sentences string `json:"sentences" yaml:"sentences"`
	Paragraph string `json:"paragraph" yaml:"paragraph"`
}

// CardAddress is the address block of a Card.
type CardAddress struct {
	StreetA string `json:"streetA" yaml:"streetA"`
	StreetB string `json:"streetB" yaml:"streetB"`
	StreetC string `json:"streetC" yaml:"streetC"`
	StreetD string `json:"streetD" yaml:"streetD"`
	City    string `json:"city" yaml:"city"`
	State   string `json:"state" yaml:"state"`
	Country string `json:"country" yaml:"country"`
	Zipcode string `json:"zipcode" yaml:"zipcode"`
	Geo     Geo    `json:"geo" yaml:"geo"`
}

// Card is a full profile with posts and account history.
type Card struct {
	Name           string        `json:"name" yaml:"name"`
	Username       string        `json:"username" yaml:"username"`
	Email          string        `json:"email" yaml:"email"`
	Address        CardAddress   `json:"address" yaml:"address"`
	Phone          string        `json:"phone" yaml:"phone"`
	Website        string        `json:"website" yaml:"website"`
	Company        CompanyInfo   `json:"company" yaml:"company"`
	Posts          []Post        `json:"posts" yaml:"posts"`
	AccountHistory []Transaction `json:"accountHistory" yaml:"accountHistory"`
}

// UserAddress is the address block of UserCard and ContextualCard.
type UserAddress struct {
	Street  string `json:"street" yaml:"street"`
	Suite   string `json:"suite" yaml:"suite"`
	City    string `json:"city" yaml:"city"`
	Zipcode string `json:"zipcode" yaml:"zipcode"`
	Geo     Geo    `json:"geo" yaml:"geo"`
}

// UserCard is a user profile.
type UserCard struct {
	Name     string      `json:"name" yaml:"name"`
	Username string      `json:"username" yaml:"username"`
	Email    string      `json:"email" yaml:"email"`
	Address  UserAddress `json:"address" yaml:"address"`
	Phone    string      `json:"phone" yaml:"phone"`
	Website  string      `json:"website" yaml:"website"`
	Company  CompanyInfo `json:"company" yaml:"company"`
}

// ContextualCard is a user profile whose user name and e-mail derive from
// the first name.
type ContextualCard struct {
	Name     string      `json:"name" yaml:"name"`
	Username string      `json:"username" yaml:"username"`
	Avatar   string      `json:"avatar" yaml:"avatar"`
	Email    string      `json:"email" yaml:"email"`
	DOB      time.Time   `json:"dob" yaml:"dob"`
	Phone    string      `json:"phone" yaml:"phone"`
	Address  UserAddress `json:"address" yaml:"address"`
	Website  string      `json:"website" yaml:"website"`
	Company  CompanyInfo `json:"company" yaml:"company"`
}

// CreateTransaction returns a transaction with an amount up to 1000, e.g.
// "Investment Account (...8755)" paying "Will, Fisher and Marks".
func (h *Helpers) CreateTransaction() Transaction {
	fi := h.f.Finance
	amount, _ := fi.Amount(0, 1000, 2)
	return Transaction{
		Amount:   amount,
		Date:     transactionDate,
		Business: h.f.Company.Name(),
		Name:     fi.AccountName() + " " + fi.Mask(0, true, true),
		Type:     fi.TransactionType(),
		Account:  fi.Account(0),
	}
}

// CreateCard returns a full profile with three posts and three transactions.
func (h *Helpers) CreateCard() Card {
	f := h.f
	name := f.Name.FullName()
	username := f.Internet.UserName(name, "")

	c := Card{
		Name:     name,
		Username: username,
		Email:    f.Internet.Email(username, "", ""),
		Address: CardAddress{
			StreetA: f.Address.StreetName(),
			StreetB: f.Address.StreetAddress(false),
			StreetC: f.Address.StreetAddress(true),
			StreetD: f.Address.SecondaryAddress(),
			City:    f.Address.City(),
			State:   f.Address.State(false),
			Country: f.Address.Country(),
			Zipcode: f.Address.ZipCode(""),
			Geo:     h.geo(),
		},
		Phone:          f.Phone.Number(""),
		Website:        f.Internet.DomainName(),
		Company:        h.company(),
		Posts:          make([]Post, 0, cardPosts),
		AccountHistory: make([]Transaction, 0, cardTransactions),
	}
	for range cardPosts {
		c.Posts = append(c.Posts, Post{
			Words:     f.Lorem.Words(3),
			Sentence:  f.Lorem.Sentence(0),
			Sentences: f.Lorem.Sentences(0, ""),
			Paragraph: f.Lorem.Paragraph(0),
		})
	}
	for range cardTransactions {
		c.AccountHistory = append(c.AccountHistory, h.CreateTransaction())
	}
	return c
}

// UserCard returns a user profile.
func (h *Helpers) UserCard() UserCard {
	f := h.f
	return UserCard{
		Name:     f.Name.FullName(),
		Username: f.Internet.UserName("", ""),
		Email:    f.Internet.Email("", "", ""),
		Address:  h.userAddress(),
		Phone:    f.Phone.Number(""),
		Website:  f.Internet.DomainName(),
		Company:  h.company(),
	}
}

// ContextualCard returns a user profile built around one first name, born
// within fifty years before September 1992.
func (h *Helpers) ContextualCard() ContextualCard {
	f := h.f
	name := f.Name.FirstName()
	username := f.Internet.UserName(name, "")
	return ContextualCard{
		Name:     name,
		Username: username,
		Avatar:   f.Internet.Avatar(),
		Email:    f.Internet.Email(username, "", ""),
		DOB:      f.Time.past(maxAgeYears, birthReference),
		Phone:    f.Phone.Number(""),
		Address:  h.userAddress(),
		Website:  f.Internet.DomainName(),
		Company:  h.company(),
	}
}

func (h *Helpers) userAddress() UserAddress {
	a := h.f.Address
	return UserAddress{
		Street:  a.StreetName(),
		Suite:   a.SecondaryAddress(),
		City:    a.City(),
		Zipcode: a.ZipCode(""),
		Geo:     h.geo(),
	}
}

func (h *Helpers) geo() Geo {
	return Geo{Lat: h.f.Address.Latitude(), Lng: h.f.Address.Longitude()}
}

func (h *Helpers) company() CompanyInfo {
	c := h.f.Company
	return CompanyInfo{Name: c.Name(), CatchPhrase: c.CatchPhrase(), BS: c.BS()}
}
