package config

import "testing"

func TestLoadEnv(t *testing.T) {
	t.Setenv("APP_DB__HOST", "dbhost")
	t.Setenv("APP_DB__PORT", "5432")
	t.Setenv("OTHER_VAR", "ignored")

	m := New()
	m.LoadEnv("APP_")

	if v, _ := m.Raw("db.host"); v != "dbhost" {
		t.Errorf("db.host = %q, want %q", v, "dbhost")
	}
	if v, _ := m.Raw("db.port"); v != "5432" {
		t.Errorf("db.port = %q, want %q", v, "5432")
	}
	if _, ok := m.Raw("other_var"); ok {
		t.Error("variable without the prefix should not be loaded")
	}
}

func TestEnvKeyToCanonical(t *testing.T) {
	if got := envKeyToCanonical("DB__HOST"); got != "db.host" {
		t.Errorf("got %q, want %q", got, "db.host")
	}
	if got := envKeyToCanonical("SINGLE_WORD"); got != "single_word" {
		t.Errorf("got %q, want %q", got, "single_word")
	}
}

func TestLoadArgv(t *testing.T) {
	m := New()
	m.LoadArgv([]string{"--db.host=b", "--trace", "--no-cache", "positional", "ignored"})

	if v, _ := m.Raw("db.host"); v != "b" {
		t.Errorf("db.host = %q, want %q", v, "b")
	}
	if v, _ := m.Raw("trace"); v != "1" {
		t.Errorf("trace = %q, want %q", v, "1")
	}
	if v, _ := m.Raw("cache"); v != "0" {
		t.Errorf("cache = %q, want %q", v, "0")
	}
}

func TestLoadArgvPrecedenceOverFileAndEnv(t *testing.T) {
	// spec.md S7: file < env < argv, later always wins.
	t.Setenv("APP_DB__PORT", "2")

	m := New()
	m.set("db.host", "a") // stands in for a loaded file
	m.set("db.port", "1")
	m.LoadEnv("APP_")
	m.LoadArgv([]string{"--db.host=b"})

	if v, _ := m.Raw("db.host"); v != "b" {
		t.Errorf("db.host = %q, want %q (argv wins)", v, "b")
	}
	if v, _ := m.Raw("db.port"); v != "2" {
		t.Errorf("db.port = %q, want %q (env wins over file)", v, "2")
	}
}
