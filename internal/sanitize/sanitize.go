// Package sanitize holds the escaping policy for user-supplied text.
//
// Escaping is applied where user input becomes stored state that is rendered
// as markup: registration usernames, post titles, post bodies and comment
// bodies. Alias updates are exempt; see models.UserStore.SetAlias.
package sanitize

import "html"

// Escape neutralizes markup-significant characters so the result can be
// embedded verbatim in an HTML document.
func Escape(s string) string {
	return html.EscapeString(s)
}
