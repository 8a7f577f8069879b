package commands

import (
	"testing"
)

func TestSpreadsheetId(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
	}

	for _, test := range tests {
		id, err := spreadsheetId(test.url)
		if err != nil {
			t.Fatalf("Unexpected error returned from spreadsheetId (%v)", err)
		}

		if id != test.expected {
			t.Errorf("Incorrect spreadsheet ID\n   expected: %v\n   got:      %v\n", test.expected, id)
		}
	}
}

func TestSpreadsheetIdWithInvalidURL(t *testing.T) {
	for _, url := range []string{"", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", "https://example.com/spreadsheets/d/xxx"} {
		if _, err := spreadsheetId(url); err == nil {
			t.Errorf("Expected error return for URL '%s', got %v", url, err)
		}
	}
}

func TestValidate(t *testing.T) {
	c := command{
		credentials: "credentials.json",
		url:         "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		worksheet:   "Sheet1",
	}

	if err := c.validate(); err != nil {
		t.Errorf("Unexpected error returned from validate (%v)", err)
	}

	missing := []command{
		{url: c.url, worksheet: c.worksheet},
		{credentials: c.credentials, worksheet: c.worksheet},
		{credentials: c.credentials, url: c.url},
	}

	for _, c := range missing {
		if err := c.validate(); err == nil {
			t.Errorf("Expected error return for incomplete command %+v, got %v", c, err)
		}
	}
}
