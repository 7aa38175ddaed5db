package contact

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// EncodeURIComponent escapes s the way browsers do for a URI component:
// everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is percent-encoded as
// UTF-8.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// MailtoURL builds the prefilled mailto link for s.
func MailtoURL(to string, s Submission) string {
	return "mailto:" + to +
		"?subject=" + EncodeURIComponent(s.Subject()) +
		"&body=" + EncodeURIComponent(s.Body())
}

// Opener hands a URL to the desktop.
type Opener func(ctx context.Context, url string) error

// MailClient relays a submission by opening the user's mail client.
type MailClient struct {
	To   string
	Open Opener
}

func (m MailClient) Send(ctx context.Context, s Submission) error {
	open := m.Open
	if open == nil {
		open = OpenURL
	}
	return open(ctx, MailtoURL(m.To, s))
}

func (m MailClient) Acknowledgement() string {
	return "Thanks! Your email client should open shortly."
}

// OpenURL asks the platform's default handler to open url. The launcher
// outlives ctx: it is only checked before the process starts, since
// killing a launcher halfway through loses the URL.
func OpenURL(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", cmd.Path, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
