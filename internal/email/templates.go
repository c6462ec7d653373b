// AngelaMos | 2026
// templates.go

package email

import (
	"fmt"
	"html"
	"time"
)

func newsletterAdminHTML(subscriber string, now time.Time) string {
	escaped := html.EscapeString(subscriber)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="font-size: 24px;">New Newsletter Subscriber</h1>
    <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
    <p style="color: #666;"><strong>Subscribed:</strong> %s</p>
  </body>
</html>`,
		escaped, escaped, now.Format("Monday, January 2, 2006 at 3:04 PM"),
	)
}

func contactHTML(name, from, message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="font-size: 24px;">New Contact Message</h1>
    <p><strong>From:</strong> %s &lt;%s&gt;</p>
    <div style="background: #f9f9f9; padding: 20px; border-radius: 8px; white-space: pre-wrap;">%s</div>
  </body>
</html>`,
		html.EscapeString(name),
		html.EscapeString(from),
		html.EscapeString(message),
	)
}
