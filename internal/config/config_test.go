package config

import "testing"

func TestCanonicalizeLowercases(t *testing.T) {
	m := New()
	m.set("DB.Host", "x")
	if _, ok := m.Raw("db.host"); !ok {
		t.Error("expected lowercase lookup to find value set with mixed case")
	}
}

func TestLaterWriteWins(t *testing.T) {
	m := New()
	m.set("a", "1")
	m.set("a", "2")
	v, _ := m.Raw("a")
	if v != "2" {
		t.Errorf("got %q, want %q", v, "2")
	}
}

func TestExpandFromMapThenEnv(t *testing.T) {
	t.Setenv("VITLC_TEST_EXPAND", "from-env")
	m := New()
	m.set("name", "vitlc")
	if got := m.Expand("hello ${name}"); got != "hello vitlc" {
		t.Errorf("Expand from map = %q", got)
	}
	if got := m.Expand("${VITLC_TEST_EXPAND}"); got != "from-env" {
		t.Errorf("Expand from env = %q", got)
	}
	if got := m.Expand("${totally.missing}"); got != "" {
		t.Errorf("Expand missing key = %q, want empty", got)
	}
}

func TestExpandBoundedRecursion(t *testing.T) {
	m := New()
	// a cycle: a -> ${b}, b -> ${a}. Must terminate rather than loop
	// forever; the result's exact shape is unspecified, only its
	// termination is (spec.md invariant 7).
	m.set("a", "${b}")
	m.set("b", "${a}")
	_ = m.Expand("${a}")
}

func TestExpandUnterminatedReference(t *testing.T) {
	m := New()
	if got := m.Expand("prefix ${unterminated"); got != "prefix ${unterminated" {
		t.Errorf("Expand with no closing brace = %q", got)
	}
}
