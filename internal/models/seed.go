package models

import (
	"math/rand"
	"time"

	"forum/internal/display"
)

var seedComments = []string{
	"Agreed.", "Check your sources.", "FUD.", "Interesting.",
	"Patched already.", "lol", "nice find",
}

// SeedDummyData loads the stock users and threads the forum boots with.
// Seed content is trusted server-side text and stored as written, raw markup
// included; only user-submitted content goes through the escape policy.
func SeedDummyData(users *UserStore, posts *PostStore) {
	seedUsers := []struct {
		name, password string
		role           Role
	}{
		{"ZeroCool", "hacktheplanet", RoleAdmin},
		{"AcidBurn", "crashoverride", RoleVIP},
		{"Morpheus", "bluepill", RoleVIP},
		{"Trinity", "nmap", RoleUser},
		{"Neo", "knockknock", RoleUser},
		{"Cypher", "steak", RoleUser},
		{"Switch", "notlikethis", RoleUser},
		{"Tank", "operator", RoleUser},
		{"Dozer", "realworld", RoleUser},
		{"Mouse", "tastywheat", RoleUser},
	}

	now := time.Now()
	names := make([]string, 0, len(seedUsers))
	for _, su := range seedUsers {
		users.put(User{
			Username:    su.name,
			Password:    su.password,
			Alias:       su.name,
			Role:        su.role,
			AvatarColor: display.AvatarColor(su.name),
			Joined:      now.AddDate(0, 0, -(1 + rand.Intn(365))),
		})
		names = append(names, su.name)
	}

	threads := []struct {
		author, title, content string
	}{
		{"ZeroCool", "New 0-day in Kernal.sys??", "Anyone seen the new CVE-2077-9001? Looks like heap overflow in the mainframe access layer. Messing with the stack pointers triggers a segfault but I think RCE is possible if we groom the heap correctly."},
		{"Morpheus", "The signal is getting stronger", "We are monitoring increased activity on port 443 across the grid. Something big is coming. Verify your GPG keys."},
		{"AcidBurn", "TrashFile cleanup script release", "Just dropped a new python script to scrub logs. Check it out on the repo. It uses advanced overwriting passes. <br><br><code>rm -rf /trace/logs/*</code>"},
		{"Neo", "Strange pattern in the static", "I keep seeing this sequence: 0010110 in the raw packet dumps. Is it a signature?"},
		{"Cypher", "Best virtual steak house in Sector 7?", "Tired of the nutrient goop. Need recommendations."},
		{"Trinity", "Nmap scan results for target 192.168.0.x", "Found open ports: 22, 80, 8080. SSH seems vulnerable to brute force."},
		{"Switch", "Anyone got a spare deck?", "Mine fried during the last run. Need a Gibson 5000 equivalent."},
		{"Mouse", "Did you know...", "That the machines actually designed the mouse pointer? Irony."},
		{"Tank", "Operator status: GREEN", "Connection stable. Upload speeds nominal. ready for extraction."},
		{"Dozer", "Real world food > sim food", "Fight me."},
	}

	for i, th := range threads {
		author, err := users.Get(th.author)
		if err != nil {
			continue
		}
		postTime := now.Add(-time.Duration(5+rand.Intn(4996)) * time.Minute)
		p := Post{
			ID:          i + 1,
			Username:    author.Username,
			Alias:       author.Alias,
			Role:        author.Role,
			AvatarColor: author.AvatarColor,
			Title:       th.title,
			Content:     th.content,
			Views:       50 + rand.Intn(4951),
			Timestamp:   postTime,
		}
		// Random subset of likers; likes are a set, so no repeats.
		for _, name := range names {
			if rand.Intn(3) == 0 {
				p.Likes = append(p.Likes, name)
			}
		}
		for n := rand.Intn(6); n > 0; n-- {
			commenter, err := users.Get(names[rand.Intn(len(names))])
			if err != nil {
				continue
			}
			p.Comments = append(p.Comments, Comment{
				Username:    commenter.Username,
				Alias:       commenter.Alias,
				Role:        commenter.Role,
				AvatarColor: commenter.AvatarColor,
				Content:     seedComments[rand.Intn(len(seedComments))],
				Timestamp:   postTime.Add(time.Duration(1+rand.Intn(60)) * time.Minute),
			})
		}
		posts.put(p)
	}
}
