package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/ports"
)

func TestListFilter_Empty(t *testing.T) {
	if got := listFilter(ports.ProductFilter{}); len(got) != 0 {
		t.Fatalf("expected empty filter, got %v", got)
	}
}

func TestListFilter_EscapesSearch(t *testing.T) {
	got := listFilter(ports.ProductFilter{Search: "air.max"})
	or, ok := got["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("expected $or with two clauses, got %v", got)
	}
	name := or[0].(bson.M)["name"].(bson.M)
	if name["$regex"] != `air\.max` || name["$options"] != "i" {
		t.Fatalf("unexpected regex clause: %v", name)
	}
}

func TestPatchSet_OnlyPresentFields(t *testing.T) {
	price := 99.5
	discount := 0
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	set := patchSet(domain.ProductPatch{Price: &price, Discount: &discount, Colors: []string{"black"}}, now)

	if len(set) != 4 {
		t.Fatalf("expected 4 keys, got %v", set)
	}
	if set["price"] != 99.5 || set["discount"] != 0 || set["updated_at"] != now {
		t.Fatalf("unexpected set document: %v", set)
	}
	if _, ok := set["name"]; ok {
		t.Fatalf("absent field must not be written")
	}
}
