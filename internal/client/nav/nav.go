// Package nav names the client views and the Navigator that switches
// between them after login, logout and form submits.
package nav

type View string

const (
	// ViewEntry is the anonymous entry view (login / register).
	ViewEntry View = "entry"
	// ViewPosts is the post and comment list.
	ViewPosts View = "posts"
)

type Navigator interface {
	Navigate(view View)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(View)

func (f NavigatorFunc) Navigate(v View) { f(v) }
