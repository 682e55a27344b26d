package domain

import "testing"

func TestConditionsOrderAndRender(t *testing.T) {
	c := NewConditions()
	c.Set("first", "a.x = 1")
	c.Set("second", "a.y = 2")
	c.Set("third", "a.z = 3")

	if got := c.SQL(); got != "WHERE a.x = 1 AND a.y = 2 AND a.z = 3" {
		t.Fatalf("SQL = %q", got)
	}

	// replacing keeps position
	c.Set("second", "a.y = 9")
	if got := c.SQL(); got != "WHERE a.x = 1 AND a.y = 9 AND a.z = 3" {
		t.Fatalf("SQL after replace = %q", got)
	}

	c.Delete("first")
	if got := c.SQL(); got != "WHERE a.y = 9 AND a.z = 3" {
		t.Fatalf("SQL after delete = %q", got)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
}

func TestConditionsEmptyRendersNothing(t *testing.T) {
	if got := NewConditions().SQL(); got != "" {
		t.Fatalf("empty SQL = %q, want empty", got)
	}
	var nilConds *Conditions
	if got := nilConds.SQL(); got != "" {
		t.Fatalf("nil SQL = %q, want empty", got)
	}
}

func TestConditionsCloneIsIndependent(t *testing.T) {
	c := NewConditions()
	c.Set("a", "x = 1")
	cp := c.Clone()
	cp.Set("b", "y = 2")
	cp.Set("a", "x = 5")

	if got := c.SQL(); got != "WHERE x = 1" {
		t.Fatalf("original mutated: %q", got)
	}
	if got := cp.SQL(); got != "WHERE x = 5 AND y = 2" {
		t.Fatalf("clone SQL = %q", got)
	}
}

func TestInSQLEscaping(t *testing.T) {
	cases := []struct {
		name   string
		col    string
		values []string
		want   string
	}{
		{"single", "a.type", []string{"activity_comment"}, "a.type IN ('activity_comment')"},
		{"multi", "c.type", []string{"x", "y"}, "c.type IN ('x','y')"},
		{"quote", "a.type", []string{"o'brien"}, "a.type IN ('o''brien')"},
		{"empty", "a.type", nil, ""},
	}
	for _, tc := range cases {
		if got := InSQL(tc.col, tc.values...); got != tc.want {
			t.Fatalf("%s: InSQL = %q, want %q", tc.name, got, tc.want)
		}
	}

	if got := NotInSQL("a.type", "activity_comment"); got != "a.type NOT IN ('activity_comment')" {
		t.Fatalf("NotInSQL = %q", got)
	}
}
