package mail

import (
	"bytes"
	"html/template"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// VerificationSubject is the subject line of every verification message.
const VerificationSubject = "Verify your email"

var verificationTemplate = template.Must(template.New("verification").Parse(
	`<p>Welcome to Contactbook!</p>` +
		`<p>Please confirm your email address by following the link below:</p>` +
		`<p><a target="_blank" href="{{.Link}}">Verify email</a></p>`,
))

// VerificationLink builds the link a user follows to verify their address.
func VerificationLink(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/users/verify/" + url.PathEscape(token)
}

func renderVerification(link string) (string, error) {
	var buf bytes.Buffer
	if err := verificationTemplate.Execute(&buf, struct{ Link string }{Link: link}); err != nil {
		return "", errors.Wrap(err, "render verification mail")
	}

	return buf.String(), nil
}
