package server

import (
	"html/template"
	"log/slog"
	"math/rand"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"forum/internal/display"
	"forum/internal/models"
)

var trendingTags = []string{"#exploit", "#zero-day", "#crypto", "#cyberdeck", "#netsec"}

type Server struct {
	Users    *models.UserStore
	Posts    *models.PostStore
	Sessions *models.SessionStore

	tmpl map[string]*template.Template
	log  *slog.Logger

	CookieName string
}

func New(users *models.UserStore, posts *models.PostStore, sessions *models.SessionStore, templateDir string, logger *slog.Logger) (*Server, error) {
	funcs := template.FuncMap{
		"timeAgo": display.TimeAgo,
		"raw":     func(s string) template.HTML { return template.HTML(s) },
		// Avatar colors are server-derived hsl() strings; without this the
		// CSS value filter rejects the parentheses.
		"css": func(s string) template.CSS { return template.CSS(s) },
	}
	templates := map[string]*template.Template{}
	layout := filepath.Join(templateDir, "layout.html")
	pages, err := filepath.Glob(filepath.Join(templateDir, "*.html"))
	if err != nil {
		return nil, err
	}
	for _, page := range pages {
		if filepath.Base(page) == "layout.html" {
			continue
		}
		t, err := template.New("layout.html").Funcs(funcs).ParseFiles(layout, page)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(page), ".html")
		templates[name] = t
	}
	return &Server{
		Users:      users,
		Posts:      posts,
		Sessions:   sessions,
		tmpl:       templates,
		log:        logger,
		CookieName: "session_id",
	}, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/logout", s.requireAuth(s.handleLogout))
	mux.HandleFunc("/dashboard", s.requireAuth(s.handleDashboard))
	mux.HandleFunc("/post/new", s.requireAuth(s.handleNewPost))
	mux.HandleFunc("/post/delete", s.requireAuth(s.handleDeletePost))
	mux.HandleFunc("/post/like", s.requireAuth(s.handleLike))
	mux.HandleFunc("/post/comment", s.requireAuth(s.handleComment))
	mux.HandleFunc("/profile/alias", s.requireAuth(s.handleAlias))
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	return s.logRequests(mux)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.routes().ServeHTTP(w, r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	t, ok := s.tmpl[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		s.log.Error("render", "template", name, "err", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.currentUser(r) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	kind, msg := s.popFlash(w, r)
	s.render(w, "login", map[string]any{"FlashKind": kind, "Flash": msg})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if s.currentUser(r) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	username := r.FormValue("username")
	password := r.FormValue("password")
	if _, err := s.Users.Register(username, password); err != nil {
		s.setFlash(w, "error", "Username already exists!")
	} else {
		s.setFlash(w, "success", "Registration successful! Please login.")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.currentUser(r) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	user, err := s.Users.Authenticate(r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		s.setFlash(w, "error", "Access Denied: Invalid Credentials")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	token := s.Sessions.Create(user.Username)
	http.SetCookie(w, &http.Cookie{Name: s.CookieName, Value: token, Path: "/", HttpOnly: true})
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request, _ models.User) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if cookie, err := r.Cookie(s.CookieName); err == nil {
		s.Sessions.Destroy(cookie.Value)
		http.SetCookie(w, &http.Cookie{Name: s.CookieName, Path: "/", MaxAge: -1})
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, user models.User) {
	n := s.Users.Count()
	data := map[string]any{
		"User":         user,
		"Posts":        s.Posts.ListSorted(),
		"OnlineCount":  n + rand.Intn(2*n+1),
		"TrendingTags": trendingTags,
	}
	s.render(w, "dashboard", data)
}

func (s *Server) handleNewPost(w http.ResponseWriter, r *http.Request, user models.User) {
	if r.Method == http.MethodPost {
		// Empty fields degrade to a plain redirect, same as every other
		// invalid mutation.
		if _, err := s.Posts.Create(user, r.FormValue("title"), r.FormValue("content")); err != nil {
			s.log.Info("post rejected", "user", user.Username, "err", err)
		}
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request, user models.User) {
	if r.Method == http.MethodPost {
		if err := s.Posts.Delete(user, atoi(r.FormValue("post_id"))); err != nil {
			s.log.Info("delete rejected", "user", user.Username, "err", err)
		}
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleLike(w http.ResponseWriter, r *http.Request, user models.User) {
	if r.Method == http.MethodPost {
		if err := s.Posts.ToggleLike(user.Username, atoi(r.FormValue("post_id"))); err != nil {
			s.log.Info("like rejected", "user", user.Username, "err", err)
		}
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleComment(w http.ResponseWriter, r *http.Request, user models.User) {
	if r.Method == http.MethodPost {
		if err := s.Posts.AddComment(user, atoi(r.FormValue("post_id")), r.FormValue("content")); err != nil {
			s.log.Info("comment rejected", "user", user.Username, "err", err)
		}
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleAlias(w http.ResponseWriter, r *http.Request, user models.User) {
	if r.Method == http.MethodPost {
		// Aliases are stored verbatim, markup and all.
		if alias := r.FormValue("alias"); alias != "" {
			s.Users.SetAlias(user.Username, alias)
		}
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// middleware
func (s *Server) requireAuth(next func(http.ResponseWriter, *http.Request, models.User)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := s.currentUser(r)
		if user == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next(w, r, *user)
	}
}

// currentUser resolves the session cookie against the identity store. Done
// per request; authorization is never cached.
func (s *Server) currentUser(r *http.Request) *models.User {
	cookie, err := r.Cookie(s.CookieName)
	if err != nil {
		return nil
	}
	username, ok := s.Sessions.Resolve(cookie.Value)
	if !ok {
		return nil
	}
	u, err := s.Users.Get(username)
	if err != nil {
		return nil
	}
	return &u
}

// helpers
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
