package fsworkspace

import "embed"

// templatesFS holds the files written by Init, rooted at "templates/".
//
//go:embed templates
var templatesFS embed.FS
