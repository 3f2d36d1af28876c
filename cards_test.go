package faker_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mshima/faker"
)

func TestHelpers_CreateTransaction(t *testing.T) {
	f := newFaker(t, faker.WithSeed(20))

	for range 20 {
		tx := f.Helpers.CreateTransaction()
		assert.Regexp(t, `^\d+\.\d{2}$`, tx.Amount)
		assert.Equal(t, time.Date(2012, time.February, 2, 0, 0, 0, 0, time.UTC), tx.Date)
		assert.NotEmpty(t, tx.Business)
		assert.NotContains(t, tx.Business, "{{")
		assert.Regexp(t, `^[A-Z][\w ]+ Account \(\.\.\.\d{4}\)$`, tx.Name)
		assert.Contains(t, []string{"deposit", "withdrawal", "payment", "invoice"}, tx.Type)
		assert.Regexp(t, `^\d{8}$`, tx.Account)
	}
}

func TestHelpers_CreateCard(t *testing.T) {
	f := newFaker(t, faker.WithSeed(21))
	c := f.Helpers.CreateCard()

	assert.NotEmpty(t, c.Name)
	assert.NotContains(t, c.Username, " ")
	assert.Contains(t, c.Email, "@")
	assert.Regexp(t, `(Apt\.|Suite) \d{3}$`, c.Address.StreetC)
	assert.Regexp(t, `^(Apt\.|Suite) \d{3}$`, c.Address.StreetD)
	assert.Contains(t, f.Definitions().Values("address", "state"), c.Address.State)
	assert.Regexp(t, `^-?\d+\.\d{4}$`, c.Address.Geo.Lat)
	assert.Regexp(t, `^-?\d+\.\d{4}$`, c.Address.Geo.Lng)
	assert.NotEmpty(t, c.Company.BS)
	require.Len(t, c.Posts, 3)
	assert.Len(t, strings.Fields(c.Posts[0].Words), 3)
	require.Len(t, c.AccountHistory, 3)
	assert.NotEmpty(t, c.AccountHistory[2].Business)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	for _, key := range []string{`"streetA"`, `"catchPhrase"`, `"accountHistory"`, `"geo"`} {
		assert.Contains(t, string(data), key)
	}
}

func TestHelpers_UserCard(t *testing.T) {
	f := newFaker(t, faker.WithSeed(22))
	c := f.Helpers.UserCard()

	assert.NotEmpty(t, c.Name)
	assert.NotEmpty(t, c.Username)
	assert.Regexp(t, `@(gmail\.com|yahoo\.com|hotmail\.com)$`, c.Email)
	assert.NotEmpty(t, c.Address.Street)
	assert.Regexp(t, `^(Apt\.|Suite) \d{3}$`, c.Address.Suite)
	assert.Regexp(t, `^\d{5}(-\d{4})?$`, c.Address.Zipcode)
	assert.Regexp(t, `^\w+\.\w+$`, c.Website)
	assert.NotEmpty(t, c.Company.Name)

	out, err := yaml.Marshal(c)
	require.NoError(t, err)
	var back faker.UserCard
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, c, back)
}

func TestHelpers_ContextualCard(t *testing.T) {
	f := newFaker(t, faker.WithSeed(23))
	ref := time.Date(1992, time.September, 20, 19, 35, 2, 0, time.UTC)

	for range 20 {
		c := f.Helpers.ContextualCard()
		assert.Contains(t, f.Definitions().Values("name", "first_name"), c.Name)
		assert.True(t, strings.HasPrefix(c.Username, c.Name), c.Username)
		assert.True(t, strings.HasPrefix(c.Email, c.Username), c.Email)
		assert.Contains(t, c.Avatar, "/avatar/")
		assert.True(t, c.DOB.Before(ref))
		assert.True(t, c.DOB.After(ref.AddDate(-51, 0, 0)))
	}
}

func TestHelpers_CardsAreDeterministic(t *testing.T) {
	a := newFaker(t, faker.WithSeed(24))
	b := newFaker(t, faker.WithSeed(24))
	assert.Equal(t, a.Helpers.CreateCard(), b.Helpers.CreateCard())
	assert.Equal(t, a.Helpers.ContextualCard(), b.Helpers.ContextualCard())
}
