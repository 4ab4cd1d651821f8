package rules

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/pyspan/pyspan/internal/compat"
)

func TestEncodeJSON(t *testing.T) {
	ruleSet := compat.Rules()

	out, err := encodeJSON(ruleSet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	encoded := gjson.Get(out, "rules")
	if !encoded.IsArray() {
		t.Fatalf("expected rules array, got: %s", out)
	}
	if int(gjson.Get(out, "rules.#").Int()) != len(ruleSet) {
		t.Errorf("expected %d rules, got %d", len(ruleSet), gjson.Get(out, "rules.#").Int())
	}

	first := gjson.Get(out, "rules.0")
	for _, field := range []string{"construct", "effect", "version"} {
		if !first.Get(field).Exists() {
			t.Errorf("expected field %q on encoded rule, got: %s", field, first.Raw)
		}
	}
}

func TestEncodeJSON_EffectValues(t *testing.T) {
	out, err := encodeJSON(compat.Rules())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	valid := true
	gjson.Get(out, "rules.#.effect").ForEach(func(_, effect gjson.Result) bool {
		if effect.String() != string(compat.EffectFloor) && effect.String() != string(compat.EffectPin) {
			valid = false
		}
		return true
	})
	if !valid {
		t.Error("expected every effect to be floor or pin")
	}
}
