package crust

import (
	"errors"
	"strings"
	"testing"
)

func mustLookup(t *testing.T, name string) *Endpoint {
	t.Helper()
	ep, err := Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q) failed: %v", name, err)
	}
	return ep
}

func wantValidationError(t *testing.T, err error, field string) *ValidationError {
	t.Helper()
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %T: %v", err, err)
	}
	if verr.Field != field {
		t.Fatalf("Expected error on field %q, got %q (%v)", field, verr.Field, err)
	}
	if !strings.Contains(err.Error(), field) {
		t.Errorf("Error message %q should name field %q", err.Error(), field)
	}
	return verr
}

func TestValidate_MissingRequiredParam(t *testing.T) {
	ep := mustLookup(t, "crustdata_enrich_company")

	_, err := Validate(ep, map[string]any{})
	verr := wantValidationError(t, err, "domain")
	if !strings.Contains(verr.Constraint, "required") {
		t.Errorf("Constraint %q should mention required", verr.Constraint)
	}
}

func TestValidate_EveryEndpointNamesMissingRequired(t *testing.T) {
	// Omitting a required parameter must always yield an error naming it,
	// never a built request.
	for _, ep := range Catalog {
		for _, p := range ep.Params {
			if !p.Required {
				continue
			}
			_, err := Validate(&ep, map[string]any{})
			if err == nil {
				t.Errorf("%s: expected error for missing %q", ep.Name, p.Name)
				continue
			}
			if !strings.Contains(err.Error(), p.Name) {
				t.Errorf("%s: error %q should name %q", ep.Name, err.Error(), p.Name)
			}
		}
	}
}

func TestValidate_SeniorityEnum(t *testing.T) {
	ep := mustLookup(t, "crustdata_search_people")

	// Not a real seniority level
	_, err := Validate(ep, map[string]any{"seniority": "Intern-Level-Execs"})
	verr := wantValidationError(t, err, "seniority")
	if !strings.Contains(verr.Constraint, "one of") {
		t.Errorf("Constraint %q should list allowed values", verr.Constraint)
	}

	// Every published level passes
	for _, level := range SeniorityLevels {
		params, err := Validate(ep, map[string]any{"seniority": level})
		if err != nil {
			t.Errorf("Seniority %q should validate: %v", level, err)
			continue
		}
		if params["seniority"] != level {
			t.Errorf("Normalized seniority = %v, want %q", params["seniority"], level)
		}
	}
}

func TestValidate_TrimsStrings(t *testing.T) {
	ep := mustLookup(t, "crustdata_enrich_company")

	params, err := Validate(ep, map[string]any{"domain": "  hubspot.com  "})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if params["domain"] != "hubspot.com" {
		t.Errorf("domain = %q, want trimmed value", params["domain"])
	}
}

func TestValidate_WhitespaceOnlyRequiredString(t *testing.T) {
	ep := mustLookup(t, "crustdata_enrich_company")

	_, err := Validate(ep, map[string]any{"domain": "   "})
	wantValidationError(t, err, "domain")
}

func TestValidate_NumberCoercion(t *testing.T) {
	ep := mustLookup(t, "crustdata_screen_companies")

	// Both int (direct callers) and float64 (JSON decoding) are accepted.
	for _, v := range []any{500, int64(500), float64(500)} {
		params, err := Validate(ep, map[string]any{"headcount_min": v})
		if err != nil {
			t.Errorf("headcount_min %T should validate: %v", v, err)
			continue
		}
		if params["headcount_min"] != float64(500) {
			t.Errorf("headcount_min normalized to %v (%T), want float64(500)",
				params["headcount_min"], params["headcount_min"])
		}
	}

	_, err := Validate(ep, map[string]any{"headcount_min": "five hundred"})
	wantValidationError(t, err, "headcount_min")
}

func TestValidate_NumberFloor(t *testing.T) {
	ep := mustLookup(t, "crustdata_search_people")

	_, err := Validate(ep, map[string]any{"company": "HubSpot", "page": 0})
	verr := wantValidationError(t, err, "page")
	if !strings.Contains(verr.Constraint, "at least 1") {
		t.Errorf("Constraint %q should mention the floor", verr.Constraint)
	}
}

func TestValidate_PageDefault(t *testing.T) {
	ep := mustLookup(t, "crustdata_search_people")

	params, err := Validate(ep, map[string]any{"company": "HubSpot"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if params["page"] != float64(1) {
		t.Errorf("page default = %v, want 1", params["page"])
	}
}

func TestValidate_RequireOneOfFilters(t *testing.T) {
	ep := mustLookup(t, "crustdata_screen_companies")

	_, err := Validate(ep, map[string]any{})
	verr := wantValidationError(t, err, "filters")
	if !strings.Contains(verr.Constraint, "at least one") {
		t.Errorf("Constraint %q should mention at least one filter", verr.Constraint)
	}

	if _, err := Validate(ep, map[string]any{"country": "USA"}); err != nil {
		t.Errorf("Single filter should satisfy the requirement: %v", err)
	}
}

func TestValidate_ArrayBounds(t *testing.T) {
	ep := mustLookup(t, "crustdata_enrich_person")

	_, err := Validate(ep, map[string]any{"linkedin_urls": []any{}})
	wantValidationError(t, err, "linkedin_urls")

	urls := make([]any, 26)
	for i := range urls {
		urls[i] = "https://www.linkedin.com/in/someone/"
	}
	_, err = Validate(ep, map[string]any{"linkedin_urls": urls})
	verr := wantValidationError(t, err, "linkedin_urls")
	if !strings.Contains(verr.Constraint, "25") {
		t.Errorf("Constraint %q should mention the 25-item cap", verr.Constraint)
	}

	params, err := Validate(ep, map[string]any{
		"linkedin_urls": []any{"https://www.linkedin.com/in/satyanadella/"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got, ok := params["linkedin_urls"].([]string)
	if !ok || len(got) != 1 {
		t.Fatalf("linkedin_urls normalized to %v (%T)", params["linkedin_urls"], params["linkedin_urls"])
	}
}

func TestValidate_URLSchemeRequired(t *testing.T) {
	ep := mustLookup(t, "crustdata_web_fetch")

	_, err := Validate(ep, map[string]any{"urls": []any{"example.com"}})
	verr := wantValidationError(t, err, "urls")
	if !strings.Contains(verr.Constraint, "http") {
		t.Errorf("Constraint %q should mention the scheme requirement", verr.Constraint)
	}

	if _, err := Validate(ep, map[string]any{"urls": []any{"https://example.com"}}); err != nil {
		t.Errorf("https URL should validate: %v", err)
	}
}

func TestValidate_QueryLength(t *testing.T) {
	ep := mustLookup(t, "crustdata_web_search")

	_, err := Validate(ep, map[string]any{"query": strings.Repeat("a", 1001)})
	verr := wantValidationError(t, err, "query")
	if !strings.Contains(verr.Constraint, "1000") {
		t.Errorf("Constraint %q should mention the length cap", verr.Constraint)
	}
}

func TestValidate_SourcesEnum(t *testing.T) {
	ep := mustLookup(t, "crustdata_web_search")

	_, err := Validate(ep, map[string]any{
		"query":   "golang",
		"sources": []any{"news", "tiktok"},
	})
	wantValidationError(t, err, "sources")

	if _, err := Validate(ep, map[string]any{
		"query":   "golang",
		"sources": []any{"news", "scholar-articles"},
	}); err != nil {
		t.Errorf("Valid sources should pass: %v", err)
	}
}

func TestValidate_GeolocationEnum(t *testing.T) {
	ep := mustLookup(t, "crustdata_web_search")

	_, err := Validate(ep, map[string]any{"query": "golang", "geolocation": "XX"})
	wantValidationError(t, err, "geolocation")

	if _, err := Validate(ep, map[string]any{"query": "golang", "geolocation": "DE"}); err != nil {
		t.Errorf("Valid geolocation should pass: %v", err)
	}
}

func TestValidate_WrongTypes(t *testing.T) {
	cases := []struct {
		tool  string
		args  map[string]any
		field string
	}{
		{"crustdata_enrich_company", map[string]any{"domain": 42}, "domain"},
		{"crustdata_web_search", map[string]any{"query": "x", "fetch_content": "yes"}, "fetch_content"},
		{"crustdata_web_fetch", map[string]any{"urls": "https://example.com"}, "urls"},
		{"crustdata_web_fetch", map[string]any{"urls": []any{1, 2}}, "urls"},
	}
	for _, tc := range cases {
		ep := mustLookup(t, tc.tool)
		_, err := Validate(ep, tc.args)
		wantValidationError(t, err, tc.field)
	}
}

func TestValidate_YearsAtCurrentCompanyEnum(t *testing.T) {
	ep := mustLookup(t, "crustdata_search_people")

	_, err := Validate(ep, map[string]any{"years_at_current_company": "forever"})
	wantValidationError(t, err, "years_at_current_company")

	if _, err := Validate(ep, map[string]any{"years_at_current_company": "3 to 5 years"}); err != nil {
		t.Errorf("Valid band should pass: %v", err)
	}
}

func TestValidate_FalseBooleanFilterDoesNotCount(t *testing.T) {
	ep := mustLookup(t, "crustdata_search_people")

	// An explicit false is a no-op and must not satisfy the filter requirement.
	_, err := Validate(ep, map[string]any{"in_the_news": false})
	wantValidationError(t, err, "filters")

	if _, err := Validate(ep, map[string]any{"in_the_news": true}); err != nil {
		t.Errorf("True boolean filter should satisfy the requirement: %v", err)
	}
}

func TestValidate_IgnoresUnknownKeys(t *testing.T) {
	ep := mustLookup(t, "crustdata_enrich_company")

	params, err := Validate(ep, map[string]any{"domain": "hubspot.com", "verbose": true})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := params["verbose"]; ok {
		t.Error("Unknown key should not survive normalization")
	}
}
