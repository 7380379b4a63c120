package model

import "time"

// Profile is a transient projection of a public GitHub profile. It is
// built per preview lookup and never persisted.
type Profile struct {
	Login       string
	Name        string
	Bio         string
	AvatarURL   string
	Location    string
	Email       string
	Website     string
	Twitter     string
	Company     string
	Followers   int
	Following   int
	PublicRepos int
	JoinedAt    time.Time
}

// DisplayName returns the profile name, falling back to the login
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}
