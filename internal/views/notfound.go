package views

import (
	"github.com/a-h/templ"
)

// RedirectTarget is where the not-found page sends the visitor.
const RedirectTarget = "/"

const (
	redirectingHeadline = "Redirecting..."
	redirectingSubline  = "Taking you back to the home page"
)

// Navigator turns a navigation request into a directive the browser
// executes once the document has loaded.
type Navigator interface {
	Navigate(path string) templ.Component
}

// MetaRefresh navigates with <meta http-equiv="refresh">.
type MetaRefresh struct{}

func (MetaRefresh) Navigate(path string) templ.Component {
	return metaRefresh(path)
}

// ScriptReplace navigates with location.replace so the missing URL is not
// left in the history stack.
type ScriptReplace struct{}

func (ScriptReplace) Navigate(path string) templ.Component {
	return scriptReplace(path)
}

// NavigatorFor maps a config value to a Navigator, defaulting to MetaRefresh.
func NavigatorFor(name string) Navigator {
	if name == "script" {
		return ScriptReplace{}
	}
	return MetaRefresh{}
}
