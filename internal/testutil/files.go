package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CartResultsJSON is a cucumber results document with one passing and one
// failing scenario in the "Add Item to Cart" feature.
const CartResultsJSON = `[
  {
    "uri": "features/cart.feature",
    "name": "Add Item to Cart",
    "keyword": "Feature",
    "elements": [
      {
        "type": "scenario",
        "keyword": "Scenario",
        "name": "Add a single item",
        "line": 4,
        "steps": [
          {"keyword": "Before", "hidden": true, "result": {"status": "passed", "duration": 100}},
          {"keyword": "Given ", "name": "I am on the product page", "result": {"status": "passed", "duration": 1200000}},
          {"keyword": "When ", "name": "I click add to cart", "result": {"status": "passed", "duration": 3400000}},
          {"keyword": "Then ", "name": "the cart shows 1 item", "result": {"status": "passed", "duration": 800000}}
        ]
      },
      {
        "type": "scenario",
        "keyword": "Scenario",
        "name": "Add an out of stock item",
        "line": 10,
        "steps": [
          {"keyword": "Given ", "name": "I am on the product page", "result": {"status": "passed", "duration": 1000000}},
          {"keyword": "When ", "name": "I open an unavailable item", "result": {"status": "passed", "duration": 2000000}},
          {"keyword": "Then ", "name": "the add button is visible", "result": {"status": "failed", "duration": 5000000, "error_message": "Element not found"}},
          {"keyword": "And ", "name": "the cart is empty", "result": {"status": "skipped"}}
        ]
      }
    ]
  }
]`

// WriteFile writes contents to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
