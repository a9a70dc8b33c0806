package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

var welcomeHTML = template.Must(template.New("welcome").Parse(`
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Welcome to Long Châu Pharmacy{{if .Name}}, {{.Name}}{{end}}!</h2>
    <p>Your account <b>{{.Email}}</b> is ready. You can now track orders,
    manage prescriptions and check out faster.</p>
    {{if .Newsletter}}<p>You are subscribed to our health newsletter.</p>{{end}}
    <p>— The Long Châu Pharmacy team</p>
  </body>
</html>`))

// Render produces subject, text and HTML bodies for a template name.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case "welcome":
		var buf bytes.Buffer
		if err := welcomeHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "Welcome to Long Châu Pharmacy"
		text = fmt.Sprintf("Welcome to Long Châu Pharmacy! Your account %v is ready.", data["Email"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
