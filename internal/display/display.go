// Package display renders store entities for the terminal. Everything here is
// a pure function over the data model so it can be tested without a database.
package display

import (
	"fmt"
	"sort"
	"strings"

	"cdn_manager/internal/model"
	"cdn_manager/internal/store"
)

// ANSI escape codes
const (
	Green  = "\033[0;32m"
	Red    = "\033[0;31m"
	Yellow = "\033[1;33m"
	Cyan   = "\033[0;36m"
	Blue   = "\033[0;34m"
	Bold   = "\033[1m"
	Reset  = "\033[0m"
)

// TTLLabel renders a TTL in seconds as a compact human label. Fractional
// remainders are discarded.
func TTLLabel(ttl int) string {
	switch {
	case ttl < 60:
		return fmt.Sprintf("%ds", ttl)
	case ttl < 3600:
		return fmt.Sprintf("%dm", ttl/60)
	case ttl < 86400:
		return fmt.Sprintf("%dh", ttl/3600)
	default:
		return fmt.Sprintf("%dd", ttl/86400)
	}
}

// StatusColor maps an origin status to its display color: active is healthy,
// error is alarm, paused is warning, anything else neutral.
func StatusColor(status string) string {
	switch status {
	case model.OriginStatusActive:
		return Green
	case model.OriginStatusError:
		return Red
	case model.OriginStatusPaused:
		return Yellow
	default:
		return Reset
	}
}

// Banner is the header printed before every command's output.
func Banner() string {
	return fmt.Sprintf("\n%s%s╔══ BlackRoad CDN Manager ══╗%s\n", Bold, Blue, Reset)
}

// Origin renders one origin as an indented block.
func Origin(o model.Origin) string {
	var b strings.Builder
	sc := StatusColor(o.Status)

	fmt.Fprintf(&b, "  %s[%3d]%s %s%s%s  %s(%s)%s\n", Bold, o.ID, Reset, Cyan, o.Name, Reset, Blue, o.Provider, Reset)
	fmt.Fprintf(&b, "        Status : %s%s%s   TTL: %s\n", sc, o.Status, Reset, TTLLabel(o.CacheTTL))
	fmt.Fprintf(&b, "        Origin : %s\n", o.OriginURL)
	fmt.Fprintf(&b, "        CDN    : %s\n", o.CDNURL)
	if o.LastPurge != nil {
		fmt.Fprintf(&b, "        Purged : %s%s%s\n", Yellow, o.LastPurge.Format("2006-01-02T15:04:05"), Reset)
	}
	if o.Notes != "" {
		fmt.Fprintf(&b, "        Notes  : %s\n", o.Notes)
	}
	b.WriteString("\n")
	return b.String()
}

// OriginList renders the list command output, including the empty case.
func OriginList(origins []model.Origin) string {
	if len(origins) == 0 {
		return fmt.Sprintf("  %sNo origins registered.%s\n\n", Yellow, Reset)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %sCDN Origins (%d)%s\n\n", Bold, len(origins), Reset)
	for _, o := range origins {
		b.WriteString(Origin(o))
	}
	return b.String()
}

// StatusSummary renders the fleet summary. Provider lines come out in
// alphabetical order so the output is stable.
func StatusSummary(s *store.StatusSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %sCDN Fleet Status%s\n", Bold, Reset)
	fmt.Fprintf(&b, "  %-22s  %s%d%s\n", "Origins", Cyan, s.TotalOrigins, Reset)
	fmt.Fprintf(&b, "  %-22s  %d\n", "Cache Rules", s.TotalRules)
	fmt.Fprintf(&b, "  %-22s  %d\n", "Total Purges", s.TotalPurges)
	fmt.Fprintf(&b, "  %-22s  %s%d%s\n", "Purges (24 h)", Yellow, s.Purges24h, Reset)

	if len(s.ByProvider) > 0 {
		providers := make([]string, 0, len(s.ByProvider))
		for p := range s.ByProvider {
			providers = append(providers, p)
		}
		sort.Strings(providers)

		fmt.Fprintf(&b, "\n  %sBy Provider:%s\n", Bold, Reset)
		for _, p := range providers {
			fmt.Fprintf(&b, "    %s%-20s%s %d\n", Cyan, p, Reset, s.ByProvider[p])
		}
	}
	b.WriteString("\n")
	return b.String()
}
