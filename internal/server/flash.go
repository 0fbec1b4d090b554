package server

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookie = "flash"

// setFlash queues a one-shot notice for the next page load.
func (s *Server) setFlash(w http.ResponseWriter, kind, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:  flashCookie,
		Value: url.QueryEscape(kind + "|" + msg),
		Path:  "/",
	})
}

// popFlash returns the pending notice, if any, and clears it.
func (s *Server) popFlash(w http.ResponseWriter, r *http.Request) (kind, msg string) {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return "", ""
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1})
	decoded, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return "", ""
	}
	kind, msg, _ = strings.Cut(decoded, "|")
	return kind, msg
}
