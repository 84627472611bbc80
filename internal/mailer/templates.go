package mailer

import (
	"bytes"
	"html/template"
)

var newApplicationTemplate = template.Must(template.New("new_application").Parse(`
<html>
<body>
<p>Hello {{.EmployerName}},</p>
<p><strong>{{.SeekerName}}</strong> has applied for your advert <strong>{{.AdvertTitle}}</strong>.</p>
<p>Cover letter:</p>
<blockquote>{{.CoverLetter}}</blockquote>
<p>Log in to review the application.</p>
</body>
</html>`))

var statusUpdateTemplate = template.Must(template.New("status_update").Parse(`
<html>
<body>
<p>Hello {{.SeekerName}},</p>
<p>The status of your application for <strong>{{.AdvertTitle}}</strong> changed
from <strong>{{.OldStatus}}</strong> to <strong>{{.NewStatus}}</strong>.</p>
</body>
</html>`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<html>
<body>
<p>Hello {{.Username}},</p>
<p>Welcome to the job board! Your account has been created.</p>
</body>
</html>`))

type NewApplicationData struct {
	EmployerName string
	SeekerName   string
	AdvertTitle  string
	CoverLetter  string
}

type StatusUpdateData struct {
	SeekerName  string
	AdvertTitle string
	OldStatus   string
	NewStatus   string
}

type WelcomeData struct {
	Username string
}

func RenderNewApplication(data NewApplicationData) (string, error) {
	return render(newApplicationTemplate, data)
}

func RenderStatusUpdate(data StatusUpdateData) (string, error) {
	return render(statusUpdateTemplate, data)
}

func RenderWelcome(data WelcomeData) (string, error) {
	return render(welcomeTemplate, data)
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
