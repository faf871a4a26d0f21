package mailer

// ResetCodeSubject is the subject line for password reset mail.
const ResetCodeSubject = "Your password reset code (valid for 10 min)"

// ResetCodeBody greets the user by first name and carries the 6-digit code.
const ResetCodeBody = `Hi {{ .Name | trim | title }},

We received a request to reset the password on your {{ .AppName }} account.

Your reset code: {{ .Code }}

Enter this code to complete the reset. The code expires in 10 minutes.

If you did not request a password reset, you can safely ignore this email.

The {{ .AppName }} team`

// ResetCodeData feeds ResetCodeBody.
type ResetCodeData struct {
	Name    string
	AppName string
	Code    string
}
