// Package prompt holds the system and user prompt templates.
package prompt

import (
	"embed"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
)

//go:embed templates/*.tmpl
var files embed.FS

var (
	templates = template.Must(template.ParseFS(files, "templates/*.tmpl"))

	// System templates take no parameters.
	System = SystemTemplates{
		Default: strings.TrimSpace(mustRender("system_default.tmpl", Context{})),
	}

	User = UserTemplates{
		Default: func(c Context) (string, error) { return render("user_default.tmpl", c) },
		Code:    func(c Context) (string, error) { return render("user_code.tmpl", c) },
	}
)

// Context is the data a user template is rendered with. Message is the
// serialised inbound message; CodePath and Code are only used by User.Code.
type Context struct {
	Message  string
	CodePath string
	Code     string
}

type SystemTemplates struct {
	Default string
}

type UserTemplates struct {
	Default func(Context) (string, error)
	Code    func(Context) (string, error)
}

func render(name string, c Context) (string, error) {
	var sb strings.Builder

	if err := templates.ExecuteTemplate(&sb, name, c); err != nil {
		return "", errors.Wrapf(err, "render prompt %s", name)
	}

	return sb.String(), nil
}

func mustRender(name string, c Context) string {
	out, err := render(name, c)
	if err != nil {
		panic(err)
	}

	return out
}
