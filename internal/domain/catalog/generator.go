package catalog

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// RosterSeed fixes the roster RNG so the facility network and its staff
// stay stable across cohort regenerations.
const RosterSeed = 42

// UsersPerSite is the staffing level applied uniformly across the network.
const UsersPerSite = 3

// devPassword is hashed once per generation run and shared by all
// generated users. Real deployments replace the users table wholesale.
const devPassword = "afyalink-dev"

// Generator produces the site and user roster.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a roster generator. If seed is 0 the fixed
// RosterSeed is used.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = RosterSeed
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

// GenerateSites materializes the facility roster with sequential site ids
// starting at 1. Coordinates derive from a hash of the facility name so
// they never move between runs; activity flags are drawn from the RNG.
func (g *Generator) GenerateSites() []Site {
	sites := make([]Site, 0, len(facilityRoster))
	for i, f := range facilityRoster {
		h := nameHash(f.name)
		sites = append(sites, Site{
			SiteID:      i + 1,
			Name:        f.name,
			SiteType:    siteTypeFor(f.name),
			CountyID:    countyIDs[f.county],
			SubCountyID: subCountyIDs[f.county][f.subCounty],
			Latitude:    -1.0 + float64(h%2000)/10000.0,
			Longitude:   36.5 + float64(h%2000)/10000.0,
			IsActive:    g.rng.Intn(2) == 0,
		})
	}
	return sites
}

// GenerateUsers staffs every site with UsersPerSite users. Roles cycle
// through the weighted pool, emails are derived from the name and deduped
// with a numeric suffix, and all users share the dev password hash.
func (g *Generator) GenerateUsers(sites []Site) ([]User, error) {
	if len(sites) == 0 {
		return nil, fmt.Errorf("generate users: no sites")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(devPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash dev password: %w", err)
	}

	total := len(sites) * UsersPerSite
	users := make([]User, 0, total)
	seenEmails := make(map[string]int, total)

	for i := 0; i < total; i++ {
		id := i + 1
		first := g.pick(firstNames)
		last := g.pick(lastNames)
		name := first + " " + last

		email := strings.ToLower(strings.ReplaceAll(name, " ", "")) + "@gmail.com"
		if n := seenEmails[email]; n > 0 {
			seenEmails[email] = n + 1
			email = fmt.Sprintf("%s%d@gmail.com", strings.ToLower(strings.ReplaceAll(name, " ", "")), n)
		} else {
			seenEmails[email] = 1
		}

		site := sites[g.rng.Intn(len(sites))]
		orgSite := sites[id%len(sites)]

		users = append(users, User{
			ID:           id,
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         rolePool[id%len(rolePool)],
			Organisation: organisationFor(orgSite.Name),
			SiteID:       site.SiteID,
			IsActive:     g.rng.Intn(2) == 0,
		})
	}
	return users, nil
}

// nameHash gives a stable non-negative hash for coordinate derivation.
func nameHash(name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return h.Sum64()
}
