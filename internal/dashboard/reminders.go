package dashboard

import "time"

var reminders = []string{
	"Your career break is not a gap — it's a chapter. Every chapter adds depth to your story.",
	"Today, one small step. Tomorrow, momentum. You are already further along than you realise.",
	"The skills you built during your break — patience, adaptability, resilience — are exactly what teams need.",
	"Imposter syndrome means you care about doing well. That's a strength, not a weakness.",
	"Three years from now, you'll barely remember the nervousness. You'll remember the courage.",
	"Every expert was once a beginner. Every returner was once where you are right now.",
	"You don't need to be perfect. You need to be present, prepared, and authentically you.",
	"The best time to restart was yesterday. The second best time is right now.",
	"Companies that value career returners are the companies worth working for.",
	"Your unique perspective after a career break is an asset no straight-line career can replicate.",
	"Progress isn't always linear. Some days you'll leap forward, others you'll rest. Both matter.",
	"You've already done the hardest part — deciding to come back. Everything else follows.",
	"Confidence isn't feeling ready. It's starting before you feel ready.",
	"The market needs experienced professionals who've lived real life. That's you.",
}

// ReminderFor returns the motivational reminder for the day containing t.
// Every user sees the same reminder on a given day.
func ReminderFor(t time.Time) string {
	return reminders[t.YearDay()%len(reminders)]
}
