package report

import (
	"testing"

	"cukereport/internal/cucumber"
)

func TestAuditPriorities(t *testing.T) {
	scenarios := []cucumber.FeatureScenario{
		{FeaturePath: "cart.feature", Feature: "Cart", Name: "a", Tags: []string{"@P1", "@P2"}},
		{FeaturePath: "cart.feature", Feature: "Cart", Name: "b", Tags: []string{"@P3"}},
		{FeaturePath: "login.feature", Feature: "Login", Name: "c", Tags: []string{"@smoke"}},
		{FeaturePath: "cart.feature", Feature: "Cart", Name: "d"},
	}
	audit := AuditPriorities(scenarios, nil)

	if audit.Total() != 4 || audit.UntaggedCount() != 2 {
		t.Fatalf("unexpected totals %d/%d", audit.Total(), audit.UntaggedCount())
	}
	if len(audit.Features) != 2 || audit.Features[0].Path != "cart.feature" || audit.Features[1].Path != "login.feature" {
		t.Fatalf("unexpected feature order %+v", audit.Features)
	}
	cart := audit.Features[0]
	if cart.Total != 3 || cart.Counts["@P1"] != 1 || cart.Counts["@P2"] != 0 || cart.Counts["@P3"] != 1 {
		t.Fatalf("unexpected cart counts %+v", cart)
	}
	if len(cart.Untagged) != 1 || cart.Untagged[0].Name != "d" {
		t.Fatalf("unexpected untagged %+v", cart.Untagged)
	}
}

func TestAuditPrioritiesCustomTags(t *testing.T) {
	scenarios := []cucumber.FeatureScenario{
		{FeaturePath: "x.feature", Tags: []string{"@Sanity"}},
		{FeaturePath: "x.feature", Tags: []string{"@P1"}},
	}
	audit := AuditPriorities(scenarios, []string{"Sanity"})
	if audit.Features[0].Counts["Sanity"] != 1 || audit.UntaggedCount() != 1 {
		t.Fatalf("unexpected audit %+v", audit.Features[0])
	}
}
