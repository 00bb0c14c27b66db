// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bot

import (
	"fmt"
	"strings"

	"github.com/phuslu/log"

	"github.com/pdiddy/techaware/pkg/types"
)

// digestSize caps the number of papers per digest message.
const digestSize = 5

// FormatDigest renders the daily digest as a Telegram Markdown message.
// At most five papers are included.
func FormatDigest(list []types.Paper, frontendURL string) string {
	if len(list) > digestSize {
		list = list[:digestSize]
	}

	var b strings.Builder
	b.WriteString("🔬 *TechAware Daily Digest*\n\n")
	fmt.Fprintf(&b, "Here are today's top %d research papers:\n\n", len(list))

	for i, p := range list {
		fmt.Fprintf(&b, "*%d. %s*\n", i+1, p.Title)
		fmt.Fprintf(&b, "📝 %s\n", p.SummaryShort)
		fmt.Fprintf(&b, "🔗 [Read Paper](%s)\n\n", p.PDFURL)
	}

	fmt.Fprintf(&b, "\n🌐 [Explore more papers](%s/explore)", frontendURL)
	return b.String()
}

// SendDigest delivers the digest to every subscriber. Per-user delivery
// failures are logged and skipped; the digest reaches whoever it can.
// It returns the number of successful deliveries.
func (b *Bot) SendDigest(list []types.Paper) int {
	if len(list) == 0 {
		log.Info().Msg("no papers for daily digest, skipping")
		return 0
	}

	message := FormatDigest(list, b.frontendURL)
	ids := b.subs.IDs()

	sent := 0
	for _, id := range ids {
		if err := b.sendMarkdown(id, message); err != nil {
			log.Error().Err(err).Str("user_id", id).Msg("failed to send digest")
			continue
		}
		sent++
	}

	log.Info().Int("sent", sent).Int("subscribers", len(ids)).Msg("daily digest delivered")
	return sent
}
