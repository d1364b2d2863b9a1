package emails

import "fmt"

func welcomeContent(name string) string {
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`
    <h1>Welcome to Confera, %s!</h1>
    <p>Your account has been created. You can now submit abstracts, track their review status, and manage your registration from your dashboard.</p>
    <center><a href="https://confera.app/dashboard" class="confera-button">Go to your dashboard</a></center>
    <p style="margin-top:20px;font-size:14px;color:#666;">If you did not sign up for this account, please contact support.</p>
`, EscapeHTML(name))
}

func accountInviteContent(name, link, role, message string) string {
	extra := ""
	if message != "" {
		extra = fmt.Sprintf(`<p style="border-left:3px solid #E5E7EB;padding-left:12px;color:#4B5563;">%s</p>`, EscapeHTML(message))
	}
	return fmt.Sprintf(`
    <h1>You've been invited to Confera</h1>
    <p>Hi %s, you have been invited to create a <strong>%s</strong> account on Confera.</p>
    %s
    <center><a href="%s" class="confera-button">Accept invitation</a></center>
    <p style="margin-top:20px;font-size:14px;color:#666;">This link expires in 14 days. If you were not expecting this invitation, you can safely ignore this email.</p>
`, EscapeHTML(name), EscapeHTML(role), extra, link)
}

func attendanceInviteContent(name, link, message string) string {
	extra := ""
	if message != "" {
		extra = fmt.Sprintf(`<p style="border-left:3px solid #E5E7EB;padding-left:12px;color:#4B5563;">%s</p>`, EscapeHTML(message))
	}
	return fmt.Sprintf(`
    <h1>Please confirm your attendance</h1>
    <p>Hi %s, you have been invited to attend the conference. Let us know whether you can make it:</p>
    %s
    <center><a href="%s" class="confera-button">Respond to invitation</a></center>
    <p style="margin-top:20px;font-size:14px;color:#666;">This link expires in 14 days.</p>
`, EscapeHTML(name), extra, link)
}

func abstractDecisionContent(name, title, status, note string) string {
	extra := ""
	if note != "" {
		extra = fmt.Sprintf(`<p><strong>Committee note:</strong> %s</p>`, EscapeHTML(note))
	}
	return fmt.Sprintf(`
    <h1>Your abstract has been %s</h1>
    <p>Hi %s, the programme committee has reviewed your abstract <strong>%s</strong>.</p>
    %s
    <center><a href="https://confera.app/abstracts" class="confera-button">View your submissions</a></center>
`, EscapeHTML(status), EscapeHTML(name), EscapeHTML(title), extra)
}
