package catalog

import (
	"strings"
	"testing"
)

func TestGenerateSites_Deterministic(t *testing.T) {
	a := NewGenerator(0).GenerateSites()
	b := NewGenerator(0).GenerateSites()

	if len(a) != len(facilityRoster) {
		t.Fatalf("expected %d sites, got %d", len(facilityRoster), len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("site %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateSites_SequentialIDs(t *testing.T) {
	sites := NewGenerator(0).GenerateSites()
	for i, s := range sites {
		if s.SiteID != i+1 {
			t.Errorf("expected site id %d, got %d", i+1, s.SiteID)
		}
	}
}

func TestGenerateSites_CoordinatesInKenyaRange(t *testing.T) {
	for _, s := range NewGenerator(0).GenerateSites() {
		if s.Latitude < -1.0 || s.Latitude >= -0.8 {
			t.Errorf("%s: latitude %v out of range", s.Name, s.Latitude)
		}
		if s.Longitude < 36.5 || s.Longitude >= 36.7 {
			t.Errorf("%s: longitude %v out of range", s.Name, s.Longitude)
		}
	}
}

func TestSiteTypeFor(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Bamburi Dispensary", "Dispensary"},
		{"Wote Health Centre", "Health Centre"},
		{"Makueni County Referral Hospital", "Hospital"},
		{"Kenyatta National Hospital", "Hospital"},
		{"Ol Joro Orok Medical Clinic", "Health Centre"},
	}
	for _, tc := range cases {
		if got := siteTypeFor(tc.name); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestOrganisationFor(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Makueni County Referral Hospital", "Ministry of Health"},
		{"Kibwezi Sub-County Hospital", "Ministry of Health"},
		{"Tumutumu PCEA Hospital", "Faith-Based Organization"},
		{"Maua Methodist Hospital", "Faith-Based Organization"},
		{"Bamburi Dispensary", "Private Practice"},
		{"Diani Beach Hospital Limited - Shika Adabu", "Private Hospital"},
		{"Kenyatta National Hospital", "Ministry of Health"},
	}
	for _, tc := range cases {
		if got := organisationFor(tc.name); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestGenerateUsers(t *testing.T) {
	gen := NewGenerator(0)
	sites := gen.GenerateSites()
	users, err := gen.GenerateUsers(sites)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(users) != len(sites)*UsersPerSite {
		t.Fatalf("expected %d users, got %d", len(sites)*UsersPerSite, len(users))
	}

	seen := map[string]bool{}
	for i, u := range users {
		if u.ID != i+1 {
			t.Errorf("expected user id %d, got %d", i+1, u.ID)
		}
		if !strings.HasSuffix(u.Email, "@gmail.com") {
			t.Errorf("unexpected email format: %s", u.Email)
		}
		if seen[u.Email] {
			t.Errorf("duplicate email: %s", u.Email)
		}
		seen[u.Email] = true
		if u.PasswordHash == "" || u.PasswordHash == devPassword {
			t.Error("expected hashed password")
		}
	}
}

func TestGenerateUsers_RoleMix(t *testing.T) {
	gen := NewGenerator(0)
	sites := gen.GenerateSites()
	users, err := gen.GenerateUsers(sites)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts := map[string]int{}
	for _, u := range users {
		counts[u.Role]++
	}

	// CHVs outnumber doctors roughly four to one.
	if counts["CHV"] <= counts["Doctor"] {
		t.Errorf("expected more CHVs than doctors, got %d vs %d", counts["CHV"], counts["Doctor"])
	}
	if counts["Nurse"] <= counts["Pharmacist"] {
		t.Errorf("expected more nurses than pharmacists, got %d vs %d", counts["Nurse"], counts["Pharmacist"])
	}
}
