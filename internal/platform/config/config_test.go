package config

import (
	"testing"
	"time"

	kit "activityreplies/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	api := root.Prefix("API_")
	if got := api.key("PORT"); got != "API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "API_PORT")
	}
	// nested prefix
	apiLog := api.Prefix("LOG_")
	if got := apiLog.key("LEVEL"); got != "API_LOG_LEVEL" {
		t.Fatalf("nested key() = %q, want %q", got, "API_LOG_LEVEL")
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  replies ")
	if got := c.MustString("NAME"); got != "replies" {
		t.Fatalf("MustString = %q, want %q", got, "replies")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString = %q, want default", got)
	}
	t.Setenv("S_SET", " x ")
	if got := c.MayString("SET", "def"); got != "x" {
		t.Fatalf("MayString = %q, want %q", got, "x")
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	if got := c.MayInt("MISSING", 7); got != 7 {
		t.Fatalf("MayInt missing = %d, want 7", got)
	}
	t.Setenv("I_N", " 12 ")
	if got := c.MayInt("N", 7); got != 12 {
		t.Fatalf("MayInt = %d, want 12", got)
	}
	t.Setenv("I_BAD", "x")
	if got := c.MayInt("BAD", 7); got != 7 {
		t.Fatalf("MayInt invalid = %d, want default", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool missing should default true")
	}
	t.Setenv("B_ON", "false")
	if c.MayBool("ON", true) {
		t.Fatalf("MayBool = true, want false")
	}
	t.Setenv("B_BAD", "notabool")
	if !c.MayBool("BAD", true) {
		t.Fatalf("MayBool invalid should default")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("D_")
	if got := c.MayDuration("MISSING", time.Second); got != time.Second {
		t.Fatalf("MayDuration missing = %v", got)
	}
	t.Setenv("D_D", "250ms")
	if got := c.MayDuration("D", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	t.Setenv("D_BAD", "soon")
	if got := c.MayDuration("BAD", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v, want default", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("C_")
	def := []string{"a"}
	if got := c.MayCSV("MISSING", def); len(got) != 1 || got[0] != "a" {
		t.Fatalf("MayCSV missing = %v", got)
	}
	t.Setenv("C_LIST", " x, y ,,z ")
	got := c.MayCSV("LIST", def)
	want := []string{"x", "y", "z"}
	if len(got) != len(want) {
		t.Fatalf("MayCSV = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MayCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
