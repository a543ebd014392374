package scaffold

import "github.com/gorewood/sprout/internal/config"

// ResolveBool returns the first non-nil value and true, or false and false
// when every value is nil.
func ResolveBool(values ...*bool) (value, ok bool) {
	for _, v := range values {
		if v != nil {
			return *v, true
		}
	}
	return false, false
}

// Policy is the git setup applied to a new project.
type Policy struct {
	Init bool `json:"init"`
	Add  bool `json:"add"`
}

// Resolve computes the effective policy for tmpl under cfg.
//
// Init takes the template's value, then the config's, then defaults to true.
// Add requires Init, and is on when either the template or the config sets
// it to true. The add flags are not layered: a template add=false does not
// override a config add=true.
func Resolve(cfg *config.Config, tmpl *config.Template) Policy {
	var cfgGit, tmplGit config.GitPolicy
	if cfg != nil {
		cfgGit = cfg.Git
	}
	if tmpl != nil {
		tmplGit = tmpl.Git
	}

	init, ok := ResolveBool(tmplGit.Init, cfgGit.Init)
	if !ok {
		init = true
	}
	add := init && (isTrue(tmplGit.Add) || isTrue(cfgGit.Add))
	return Policy{Init: init, Add: add}
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
