// Package catalog owns the facility and staff roster: the fixed set of
// Kenyan health facilities the network operates, and the generated users
// attached to them. The roster is generated from its own fixed seed so it
// stays stable across cohort regenerations.
package catalog

import "strconv"

type Site struct {
	SiteID      int     `json:"site_id"`
	Name        string  `json:"name"`
	SiteType    string  `json:"site_type"`
	CountyID    int     `json:"county_id"`
	SubCountyID int     `json:"sub_county_id"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsActive    bool    `json:"is_active"`
}

type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Organisation string `json:"organisation"`
	SiteID       int    `json:"site_id"`
	IsActive     bool   `json:"is_active"`
}

func SiteHeader() []string {
	return []string{"site_id", "name", "site_type", "county_id", "sub_county_id", "latitude", "longitude", "is_active"}
}

func (s Site) Record() []string {
	return []string{
		strconv.Itoa(s.SiteID),
		s.Name,
		s.SiteType,
		strconv.Itoa(s.CountyID),
		strconv.Itoa(s.SubCountyID),
		strconv.FormatFloat(s.Latitude, 'f', 4, 64),
		strconv.FormatFloat(s.Longitude, 'f', 4, 64),
		strconv.FormatBool(s.IsActive),
	}
}

func UserHeader() []string {
	return []string{"id", "name", "email", "password", "role", "organisation", "site_id", "is_active"}
}

func (u User) Record() []string {
	return []string{
		strconv.Itoa(u.ID),
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.Organisation,
		strconv.Itoa(u.SiteID),
		strconv.FormatBool(u.IsActive),
	}
}

func SiteFromRecord(rec []string) (Site, error) {
	var s Site
	var err error
	if s.SiteID, err = strconv.Atoi(rec[0]); err != nil {
		return s, err
	}
	s.Name = rec[1]
	s.SiteType = rec[2]
	if s.CountyID, err = strconv.Atoi(rec[3]); err != nil {
		return s, err
	}
	if s.SubCountyID, err = strconv.Atoi(rec[4]); err != nil {
		return s, err
	}
	if s.Latitude, err = strconv.ParseFloat(rec[5], 64); err != nil {
		return s, err
	}
	if s.Longitude, err = strconv.ParseFloat(rec[6], 64); err != nil {
		return s, err
	}
	if s.IsActive, err = strconv.ParseBool(rec[7]); err != nil {
		return s, err
	}
	return s, nil
}

func UserFromRecord(rec []string) (User, error) {
	var u User
	var err error
	if u.ID, err = strconv.Atoi(rec[0]); err != nil {
		return u, err
	}
	u.Name = rec[1]
	u.Email = rec[2]
	u.PasswordHash = rec[3]
	u.Role = rec[4]
	u.Organisation = rec[5]
	if u.SiteID, err = strconv.Atoi(rec[6]); err != nil {
		return u, err
	}
	if u.IsActive, err = strconv.ParseBool(rec[7]); err != nil {
		return u, err
	}
	return u, nil
}
