// Package config loads and edits the sprout user configuration.
//
// The configuration is a single YAML file holding the template tree shown by
// the interactive menu and the default git policy applied to new projects:
//
//	git:
//	  init: true
//	  add: false
//	templates:
//	  - name: Frontend
//	    color: cyan
//	    children:
//	      - name: react-app
//	        url: user/react-template
//
// A template is either a leaf (url set) or a group (children set). Any other
// shape is reported as a *BadTemplateError by the code that walks the tree.
//
// The file lives under Dir (see there for the resolution order). Get writes
// the built-in default on first use and reports that it did so, which lets the
// config subcommand skip opening an editor on a file the user has never seen.
package config
