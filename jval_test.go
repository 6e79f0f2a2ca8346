package jval

import (
	"strings"
	"testing"

	"github.com/signadot/go-jval/ast"
)

const orderDoc = `{
  "id": 77,
  "customer": {"name": "ada", "tier": "gold"},
  "items": [
    {"sku": "a-1", "qty": 2},
    {"sku": "b-2", "qty": 1}
  ]
}`

func mustParse(t *testing.T, doc string) *ast.Json {
	t.Helper()
	j, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return j
}

func TestGetByPath(t *testing.T) {
	j := mustParse(t, orderDoc)
	got, err := Get(j, "items[1].sku")
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(got, ast.FromString("b-2")) {
		t.Errorf("got %v", got)
	}
	if _, err := Get(j, "customer.age"); err == nil || err.Error() != "No such field: 'age'" {
		t.Errorf("err = %v", err)
	}
}

func TestDeleteByPath(t *testing.T) {
	j := mustParse(t, orderDoc)
	got, err := Delete(j, "customer.tier")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Get(got, "customer.tier"); err == nil {
		t.Error("tier still present")
	}
	if _, err := Get(j, "customer.tier"); err != nil {
		t.Error("original modified")
	}
}

func TestPatch(t *testing.T) {
	j := mustParse(t, orderDoc)
	patch := mustParse(t, `[
		{"op": "replace", "path": "/customer/tier", "value": "silver"},
		{"op": "remove", "path": "/items/0"}
	]`)
	got, err := Patch(j, patch)
	if err != nil {
		t.Fatal(err)
	}
	tier, err := Get(got, "customer.tier")
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(tier, ast.FromString("silver")) {
		t.Errorf("tier = %v", tier)
	}
	items, err := Get(got, "items")
	if err != nil {
		t.Fatal(err)
	}
	if len(items.Values) != 1 {
		t.Errorf("items = %v", items)
	}
}

func TestPatchBadOp(t *testing.T) {
	j := mustParse(t, orderDoc)
	patch := mustParse(t, `[{"op": "replace", "path": "/nope/x", "value": 1}]`)
	if _, err := Patch(j, patch); err == nil {
		t.Error("expected error for bad path")
	}
}

func TestMerge(t *testing.T) {
	j := mustParse(t, orderDoc)
	got, err := Merge(j, mustParse(t, `{"customer": {"tier": null, "vip": true}}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Get(got, "customer.tier"); err == nil {
		t.Error("null merge should remove tier")
	}
	vip, err := Get(got, "customer.vip")
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(vip, ast.FromBool(true)) {
		t.Errorf("vip = %v", vip)
	}
}

func TestDiff(t *testing.T) {
	a := mustParse(t, orderDoc)
	// same content, reordered fields
	b := mustParse(t, `{
	  "customer": {"tier": "gold", "name": "ada"},
	  "items": [
	    {"sku": "a-1", "qty": 2},
	    {"qty": 1, "sku": "b-2"}
	  ],
	  "id": 77
	}`)
	if got := DiffText(a, b); got != "" {
		t.Errorf("reordered trees should not diff:\n%s", got)
	}
	if got := DiffPretty(a, b); got != "" {
		t.Errorf("reordered trees should not diff (pretty):\n%s", got)
	}

	c := mustParse(t, strings.Replace(orderDoc, `"gold"`, `"silver"`, 1))
	if got := DiffText(a, c); got == "" {
		t.Error("changed trees should diff")
	}
}

func TestFilter(t *testing.T) {
	j := mustParse(t, orderDoc)
	got, err := Filter(j, `sum(map(doc.items, #.qty))`)
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(got, ast.FromInt(3)) {
		t.Errorf("sum = %v", got)
	}
	got, err = Filter(j, `doc.customer.name`)
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(got, ast.FromString("ada")) {
		t.Errorf("name = %v", got)
	}
	if _, err := Filter(j, `doc.items[`); err == nil {
		t.Error("expected compile error")
	}
}

func TestYamlRoundTrip(t *testing.T) {
	j := mustParse(t, orderDoc)
	d, err := ToYaml(j)
	if err != nil {
		t.Fatal(err)
	}
	got, err := FromYaml(d)
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(got, j) {
		t.Errorf("yaml round trip:\n%s", d)
	}
}
