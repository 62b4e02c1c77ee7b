package models

import (
	"reflect"
	"testing"
)

func TestSplitTagList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"a", []string{"a"}},
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{"a,,b", []string{"a", "b"}},
	}
	for _, tt := range tests {
		if got := SplitTagList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitTagList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseBusinessCriteria(t *testing.T) {
	c := ParseBusinessCriteria(" Joe's Cafe ", "NaIrObI", "t1,t2")
	if c.Name != "Joe's Cafe" {
		t.Errorf("Name = %q", c.Name)
	}
	if c.City != "nairobi" {
		t.Errorf("City = %q, want lower-cased", c.City)
	}
	if !reflect.DeepEqual(c.Tags, []string{"t1", "t2"}) {
		t.Errorf("Tags = %v", c.Tags)
	}
}

func TestParseBusinessCriteriaEmpty(t *testing.T) {
	c := ParseBusinessCriteria("", "", "")
	if c.Name != "" || c.City != "" || c.Tags != nil {
		t.Errorf("empty parse produced constraints: %+v", c)
	}
}

func TestParsePostCriteria(t *testing.T) {
	c := ParsePostCriteria("t1, t2")
	if !reflect.DeepEqual(c.Tags, []string{"t1", "t2"}) {
		t.Errorf("Tags = %v", c.Tags)
	}
}
