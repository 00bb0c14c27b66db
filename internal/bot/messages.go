// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bot

import "fmt"

func welcomeMessage(firstName string) string {
	return fmt.Sprintf(`👋 Welcome to TechAware, %s!

I'm your AI-powered research companion, helping you stay ahead of the latest breakthroughs in AI, software engineering, and data science.

🔬 What I can do:
• Send you daily digests of the most impactful research papers
• Provide AI-generated summaries so you can quickly understand key findings
• Help you discover papers that matter to your work

Ready to stay informed effortlessly?`, firstName)
}

func helpMessage(frontendURL string) string {
	return fmt.Sprintf(`🤖 TechAware Bot Commands:

/start - Subscribe to daily research digests
/unsubscribe - Stop receiving daily digests
/help - Show this help message
/status - Check your subscription status

📚 About TechAware:
TechAware helps you stay aware of emerging advances in AI, software engineering, and data science. Get AI-powered summaries of the latest research papers delivered daily.

Visit our website: %s`, frontendURL)
}

const subscribedMessage = `🎉 Successfully subscribed!

You'll now receive daily digests of breakthrough research papers at 9:00 AM UTC.

Each digest includes:
• AI-generated summaries
• Key findings and impact
• Direct links to papers

Use /unsubscribe anytime to stop receiving digests.`

const alreadySubscribedMessage = `✅ You're already subscribed to daily digests!

You'll receive curated research papers every day at 9:00 AM UTC.

Use /unsubscribe to stop receiving digests.`

const unsubscribedMessage = `😢 You've been unsubscribed from daily digests.

We're sorry to see you go! You can resubscribe anytime with /start.`

const notSubscribedMessage = `You're not currently subscribed to daily digests.

Use /start to subscribe and stay informed!`

const statusInactiveMessage = `❌ Subscription Status: Not subscribed

Use /start to subscribe to daily research digests!`

func statusActiveMessage(subscribedAt string) string {
	return fmt.Sprintf(`✅ Subscription Status: Active

Subscribed since: %s
Daily digests: Enabled
Delivery time: 9:00 AM UTC

Use /unsubscribe to stop receiving digests.`, subscribedAt)
}
