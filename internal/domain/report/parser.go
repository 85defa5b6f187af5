package report

import (
	"regexp"
	"strings"

	"github.com/diegoclair/daily-report-bot/internal/domain"
)

// ParsedReport is the structured form of a report message.
type ParsedReport struct {
	Date    string
	Summary string
	Pending string
	Reason  string
	GitPush bool
}

// A label must start its line, optionally after the field's emoji. Slack
// delivers emoji as shortcodes, so those are accepted too. A value runs
// from the label to the end of that line.
var (
	dateLabel = label(
		[]string{`📅`, `🗓`, `:date:`, `:calendar:`, `:spiral_calendar_pad:`},
		`Date:`,
	)
	summaryLabel = label(
		[]string{`🧾`, `:receipt:`},
		`(?:Today['’]?s\s+)?Work\s*Summary:`,
	)
	pendingLabel = label(
		[]string{`⏳`, `⌛`, `:hourglass_flowing_sand:`, `:hourglass:`},
		`Pending\s+Work(?:\s+or\s+Reason)?:`,
	)
	gitPushLabel = label(
		[]string{`💡`, `:bulb:`},
		`Git\s*Push:`,
	)
)

func label(markers []string, name string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[^\S\n]*(?:(?:` + strings.Join(markers, "|") + `)\x{FE0F}?[^\S\n]*)?` +
		name + `[^\S\n]*([^\n]*)`)
}

// Parse extracts a report from rawText. It returns nil unless all four
// labels are present.
func Parse(rawText string) *ParsedReport {
	date, ok := extract(rawText, dateLabel)
	if !ok {
		return nil
	}
	summary, ok := extract(rawText, summaryLabel)
	if !ok {
		return nil
	}
	pending, ok := extract(rawText, pendingLabel)
	if !ok {
		return nil
	}
	gitPush, ok := extract(rawText, gitPushLabel)
	if !ok {
		return nil
	}

	return &ParsedReport{
		Date:    date,
		Summary: summary,
		Pending: pending,
		// TODO: read a dedicated reason label once the report format has one.
		Reason:  pending,
		GitPush: IsAffirmative(gitPush),
	}
}

func extract(text string, re *regexp.Regexp) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// IsAffirmative reports whether a Git Push answer contains one of the
// affirmative words, ignoring case.
func IsAffirmative(answer string) bool {
	answer = strings.ToLower(answer)
	for _, word := range domain.GitPushAffirmatives {
		if strings.Contains(answer, word) {
			return true
		}
	}
	return false
}

// LooksLikeReport is true for messages that mention a report, so a
// rejected one can be answered with the expected format.
func LooksLikeReport(text string) bool {
	return strings.Contains(strings.ToLower(text), "report")
}

func FormatHelp() string {
	return "⚠️ Please send report in format:\n\n" +
		"📅 Date: YYYY-MM-DD\n" +
		"🧾 Today’s Work Summary: ...\n" +
		"⏳ Pending Work or Reason: ...\n" +
		"💡 Git Push: Yes/No"
}
