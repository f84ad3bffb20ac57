package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Built-in templates keep the sender usable without a templates directory
// on disk. The shared layout wraps each body in the same shell.
const baseLayout = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 24px;">
    <h2 style="color: #8e2157;">Rishta</h2>
    {{block "content" .}}{{end}}
    <hr style="border: none; border-top: 1px solid #eee; margin-top: 32px;"/>
    <p style="font-size: 12px; color: #999;">You are receiving this email because you have a Rishta account.</p>
  </div>
</body>
</html>`

var builtinTemplates = map[string]string{
	"welcome": `{{define "content"}}
<p>Assalamu alaikum {{.UserName}},</p>
<p>Welcome to Rishta. Complete your profile to start discovering compatible matches.</p>
{{if .ActionURL}}<p><a href="{{.ActionURL}}">{{.ActionText}}</a></p>{{end}}
{{end}}`,

	"verification": `{{define "content"}}
<p>Please confirm your email address to activate your account.</p>
<p><a href="{{.ActionURL}}">{{.ActionText}}</a></p>
{{end}}`,

	"password_reset": `{{define "content"}}
<p>We received a request to reset your password. The link below is valid for one hour.</p>
<p><a href="{{.ActionURL}}">{{.ActionText}}</a></p>
<p>If you did not request this, you can ignore this email.</p>
{{end}}`,

	"new_match": `{{define "content"}}
<p>Congratulations {{.UserName}},</p>
<p>You and {{.MatchName}} liked each other. It's a match!</p>
{{end}}`,

	"referral_reward": `{{define "content"}}
<p>Thank you {{.UserName}},</p>
<p>A friend you invited has joined and been approved. {{.RewardDays}} days of premium have been added to your account.</p>
{{end}}`,

	"notification": `{{define "content"}}
<p>{{.Message}}</p>
{{end}}`,
}

// TemplateManager parses and renders the built-in email templates.
type TemplateManager struct {
	templates map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}
	for name, content := range builtinTemplates {
		tpl, err := template.New(name).Parse(baseLayout)
		if err != nil {
			return nil, fmt.Errorf("failed to parse base layout for %s: %w", name, err)
		}
		if _, err := tpl.Parse(content); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		tm.templates[name] = tpl
	}
	return tm, nil
}

// Render executes the named template with the given data.
func (tm *TemplateManager) Render(name string, data interface{}) (string, error) {
	tpl, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}
