package main

import "testing"

func TestEnvOr(t *testing.T) {
	t.Setenv(`VERISUM_TEST_KEY`, `sha1`)
	if v := EnvOr(`VERISUM_TEST_KEY`, `sha256`); v != `sha1` {
		t.Errorf(`expected env value sha1, got %s`, v)
	}
	if v := EnvOr(`VERISUM_TEST_UNSET`, `sha256`); v != `sha256` {
		t.Errorf(`expected default sha256, got %s`, v)
	}

	t.Setenv(`VERISUM_TEST_EMPTY`, ``)
	if v := EnvOr(`VERISUM_TEST_EMPTY`, `fallback`); v != `fallback` {
		t.Errorf(`empty env value must yield the default, got %s`, v)
	}
}

func TestEnvToBool(t *testing.T) {
	for val, expected := range map[string]bool{`1`: true, `true`: true, `TRUE`: true, `0`: false, `false`: false} {
		t.Setenv(`VERISUM_TEST_BOOL`, val)
		actual, err := EnvToBool(`VERISUM_TEST_BOOL`)
		if err != nil {
			t.Fatalf(`value %q: unexpected error %v`, val, err)
		}
		if actual != expected {
			t.Errorf(`value %q: expected %t, got %t`, val, expected, actual)
		}
	}

	t.Setenv(`VERISUM_TEST_BOOL`, `yes please`)
	if _, err := EnvToBool(`VERISUM_TEST_BOOL`); err == nil {
		t.Error(`non-boolean value must yield an error`)
	}
}
