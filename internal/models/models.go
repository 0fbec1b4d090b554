package models

import "time"

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleVIP   Role = "VIP"
	RoleUser  Role = "User"
)

type User struct {
	Username    string
	Password    string
	Alias       string
	Role        Role
	AvatarColor string
	Joined      time.Time
}

// Post carries a snapshot of the author's alias, role and avatar color taken
// at creation time. Later profile edits do not rewrite existing posts.
type Post struct {
	ID          int
	Username    string
	Alias       string
	Role        Role
	AvatarColor string
	Title       string
	Content     string
	Likes       []string
	Comments    []Comment
	Views       int
	Timestamp   time.Time
}

type Comment struct {
	Username    string
	Alias       string
	Role        Role
	AvatarColor string
	Content     string
	Timestamp   time.Time
}
