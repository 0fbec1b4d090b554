package models

import (
	"errors"
	"sort"
	"sync"
	"time"

	"forum/internal/sanitize"
)

var (
	ErrNotFound     = errors.New("post not found")
	ErrUnauthorized = errors.New("not allowed")
	ErrMissingField = errors.New("missing required field")
)

// PostStore owns the post list and all nested comment and like state. A post
// either exists or has been removed; removal is terminal and leaves no
// tombstone.
type PostStore struct {
	mu    sync.RWMutex
	posts []Post
}

func NewPostStore() *PostStore {
	return &PostStore{}
}

// Create appends a post authored by author. Title and content are escaped at
// write time and the author's display attributes are snapshotted.
//
// IDs are assigned as live-post-count+1, matching the system this replaces;
// deleting a post and then creating one can repeat an id.
func (s *PostStore) Create(author User, title, content string) (Post, error) {
	if title == "" || content == "" {
		return Post{}, ErrMissingField
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := Post{
		ID:          len(s.posts) + 1,
		Username:    author.Username,
		Alias:       author.Alias,
		Role:        author.Role,
		AvatarColor: author.AvatarColor,
		Title:       sanitize.Escape(title),
		Content:     sanitize.Escape(content),
		Timestamp:   time.Now(),
	}
	s.posts = append(s.posts, p)
	return p.clone(), nil
}

// Delete removes the post iff requester authored it or is an admin.
func (s *PostStore) Delete(requester User, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		if s.posts[i].Username != requester.Username && requester.Role != RoleAdmin {
			return ErrUnauthorized
		}
		s.posts = append(s.posts[:i], s.posts[i+1:]...)
		return nil
	}
	return ErrNotFound
}

// ToggleLike flips username's membership in the post's like set: present
// removes, absent adds. Two identical calls restore the original state.
func (s *PostStore) ToggleLike(username string, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.find(id)
	if p == nil {
		return ErrNotFound
	}
	for i, liker := range p.Likes {
		if liker == username {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return nil
		}
	}
	p.Likes = append(p.Likes, username)
	return nil
}

// AddComment appends an escaped comment carrying the commenter's current
// alias, role and avatar color. Comments are never edited or removed.
func (s *PostStore) AddComment(commenter User, id int, content string) error {
	if content == "" {
		return ErrMissingField
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.find(id)
	if p == nil {
		return ErrNotFound
	}
	p.Comments = append(p.Comments, Comment{
		Username:    commenter.Username,
		Alias:       commenter.Alias,
		Role:        commenter.Role,
		AvatarColor: commenter.AvatarColor,
		Content:     sanitize.Escape(content),
		Timestamp:   time.Now(),
	})
	return nil
}

// ListSorted returns copies of all posts, newest first. Ordering of posts
// with equal timestamps is unspecified.
func (s *PostStore) ListSorted() []Post {
	s.mu.RLock()
	out := make([]Post, 0, len(s.posts))
	for i := range s.posts {
		out = append(out, s.posts[i].clone())
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

func (s *PostStore) Get(id int) (Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p := s.find(id); p != nil {
		return p.clone(), nil
	}
	return Post{}, ErrNotFound
}

// find returns a pointer into the backing slice; the caller holds the lock.
func (s *PostStore) find(id int) *Post {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return &s.posts[i]
		}
	}
	return nil
}

// clone detaches the like and comment slices from store-owned memory.
func (p Post) clone() Post {
	out := p
	out.Likes = append([]string(nil), p.Likes...)
	out.Comments = append([]Comment(nil), p.Comments...)
	return out
}

// put appends a fully-formed post directly, bypassing creation rules.
// Used by seeding.
func (s *PostStore) put(p Post) {
	s.mu.Lock()
	s.posts = append(s.posts, p)
	s.mu.Unlock()
}
