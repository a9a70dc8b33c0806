package mailer

// EmailJob is the message published to the email queue. The worker
// renders Template with Data unless Subject/Text/HTML are set directly.
type EmailJob struct {
	To       string         `json:"to"`
	Template string         `json:"template,omitempty"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// Template names understood by the worker.
const (
	TemplateWelcome = "welcome"
)
