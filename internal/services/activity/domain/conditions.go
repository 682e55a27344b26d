package domain

import "strings"

// Conditions is an ordered clause-name to SQL-fragment mapping, the
// shape the listing pipeline hands to its WHERE extension point.
// Names are unique; setting an existing name replaces its fragment in
// place so the rendered order stays deterministic.
type Conditions struct {
	names []string
	frags map[string]string
}

// NewConditions returns an empty Conditions
func NewConditions() *Conditions {
	return &Conditions{frags: map[string]string{}}
}

// Set adds or replaces the fragment for name
func (c *Conditions) Set(name, frag string) {
	if c.frags == nil {
		c.frags = map[string]string{}
	}
	if _, ok := c.frags[name]; !ok {
		c.names = append(c.names, name)
	}
	c.frags[name] = frag
}

// Get returns the fragment for name
func (c *Conditions) Get(name string) (string, bool) {
	f, ok := c.frags[name]
	return f, ok
}

// Delete removes name, preserving the order of the remaining entries
func (c *Conditions) Delete(name string) {
	if _, ok := c.frags[name]; !ok {
		return
	}
	delete(c.frags, name)
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i], c.names[i+1:]...)
			break
		}
	}
}

// Len reports the number of conditions
func (c *Conditions) Len() int { return len(c.names) }

// Names returns the clause names in insertion order
func (c *Conditions) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Fragments returns the SQL fragments in insertion order
func (c *Conditions) Fragments() []string {
	out := make([]string, 0, len(c.names))
	for _, n := range c.names {
		out = append(out, c.frags[n])
	}
	return out
}

// Clone returns an independent copy
func (c *Conditions) Clone() *Conditions {
	cp := NewConditions()
	for _, n := range c.names {
		cp.Set(n, c.frags[n])
	}
	return cp
}

// SQL renders "WHERE a AND b", or "" when empty
func (c *Conditions) SQL() string {
	if c == nil || len(c.names) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(c.Fragments(), " AND ")
}

// InSQL renders "column IN ('a','b')", single-quoting and escaping each
// value. Mirrors the host builder's IN-operator helper so rewritten
// clauses are byte-compatible with the generic ones.
func InSQL(column string, values ...string) string {
	if len(values) == 0 {
		return ""
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return column + " IN (" + strings.Join(quoted, ",") + ")"
}

// NotInSQL renders "column NOT IN ('a','b')" with the same quoting as InSQL
func NotInSQL(column string, values ...string) string {
	if len(values) == 0 {
		return ""
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return column + " NOT IN (" + strings.Join(quoted, ",") + ")"
}
