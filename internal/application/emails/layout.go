package emails

import (
	"fmt"
	"strings"
	"time"
)

const (
	themePrimary = "#1D4ED8"
	themeBgBody  = "#F3F4F6"
	themeMuted   = "#6B7280"
)

// Layout wraps content in the shared HTML email frame used by every
// transactional message.
func Layout(contentHTML string) string {
	year := time.Now().Year()
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Confera</title>
  <style>
    body { margin: 0; padding: 0; background-color: %s; font-family: -apple-system, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; }
    .content p { margin: 0 0 20px 0; font-size: 16px; line-height: 1.6; color: #374151; }
    .content h1 { color: #111827; font-size: 22px; margin: 0 0 16px 0; }
    .confera-button { display: inline-block; background-color: %s; color: #ffffff !important; padding: 12px 32px; text-decoration: none !important; border-radius: 6px; font-weight: 600; }
    .footer { color: %s; font-size: 13px; }
  </style>
</head>
<body style="background-color: %s;">
  <table role="presentation" width="100%%" border="0" cellspacing="0" cellpadding="0">
    <tr>
      <td align="center" style="padding: 40px 0;">
        <table role="presentation" width="600" border="0" cellspacing="0" cellpadding="0" style="background-color: #ffffff; border-radius: 8px;">
          <tr>
            <td align="center" style="padding: 40px 0 24px 0;">
              <a href="https://confera.app" style="font-size: 24px; font-weight: 700; color: %s; text-decoration: none;">Confera</a>
            </td>
          </tr>
          <tr>
            <td class="content" style="padding: 0 48px 32px 48px;">%s</td>
          </tr>
          <tr>
            <td align="center" class="footer" style="padding: 24px 48px 40px 48px; border-top: 1px solid #E5E7EB;">
              <p style="margin: 0 0 8px 0;">Questions? Write to <a href="mailto:support@confera.app">support@confera.app</a></p>
              <p style="margin: 0;">© %d Confera. All rights reserved.</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, themeBgBody, themePrimary, themeMuted, themeBgBody, themePrimary, contentHTML, year)
}

// EscapeHTML escapes HTML specials for safe interpolation.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}
