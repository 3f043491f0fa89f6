package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrintAccounts(t *testing.T) {
	var out bytes.Buffer
	printAccounts(&out, []Account{
		{Org: "Example Bank", Name: "Checking", Currency: "USD", Balance: "1024.50", BalanceDate: time.Unix(1698800000, 0)},
		{Org: "Credit Union", Name: "Savings", Currency: "https://www.example.com/flight-miles", Balance: "88"},
	})

	got := out.String()
	assert.Contains(t, got, "ACCOUNTS")
	assert.Contains(t, got, "Example Bank")
	assert.Contains(t, got, "1024.50 USD")
	assert.Contains(t, got, "Savings")
	assert.NotContains(t, got, "flight-miles")
}

func TestPrintAccounts_Empty(t *testing.T) {
	var out bytes.Buffer
	printAccounts(&out, nil)
	assert.Contains(t, out.String(), "No accounts returned.")
}

func TestAccountWidths(t *testing.T) {
	short := []Account{{Org: "Bank", Name: "Checking"}}
	assert.Nil(t, accountWidths(short, 120))

	long := []Account{{Org: strings.Repeat("o", 100), Name: strings.Repeat("n", 100)}}
	w := accountWidths(long, 80)
	assert.Equal(t, 80-20-12-13, w[0]+w[1])
	assert.Equal(t, 20, w[2])
}
