package normalize

import (
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/models"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// present reports whether v carries a value: nil and "" do not.
func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	default:
		return true
	}
}

func toNumber(v any) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseCurrency keeps digits and dots, then reads the longest leading
// decimal: "₦1,250,000.50" -> 1250000.5, "1.2.3" -> 1.2. It reports false
// when nothing numeric remains.
func ParseCurrency(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	s := b.String()

	end, dot, digits := 0, false, false
	for end < len(s) {
		c := s[end]
		if c == '.' {
			if dot {
				break
			}
			dot = true
		} else {
			digits = true
		}
		end++
	}
	if !digits {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// DigitsOnly drops every non-digit rune.
func DigitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func toText(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case json.Number:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return "", false
	}
}

func toBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "1", "yes":
			return true, true
		case "false", "0", "no":
			return false, true
		}
	case float64:
		return val != 0, true
	case int:
		return val != 0, true
	}
	return false, false
}

// toList accepts []any and []string. ok is false for anything else.
func toList(v any) ([]any, bool) {
	switch val := v.(type) {
	case []any:
		return val, true
	case []string:
		out := make([]any, len(val))
		for i := range val {
			out[i] = val[i]
		}
		return out, true
	case []models.SiteID:
		out := make([]any, len(val))
		for i := range val {
			out[i] = string(val[i])
		}
		return out, true
	}
	return nil, false
}

func toStrings(v any) ([]string, bool) {
	list, ok := toList(v)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, isStr := item.(string); isStr && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out, true
}

// toSites reads a site list. Unknown ids are kept so an item tagged only for
// a site this layer does not serve stays hidden rather than falling back to
// every site.
func toSites(v any) ([]string, bool) {
	return siteList(v, func(s string) bool { return models.SiteID(s) != models.SiteAll })
}

// toKnownSites is the write form: only concrete sites reach the backend.
func toKnownSites(v any) ([]string, bool) {
	return siteList(v, func(s string) bool { return models.SiteID(s).Valid() })
}

func siteList(v any, keep func(string) bool) ([]string, bool) {
	list, ok := toStrings(v)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		if keep(s) && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out, true
}

func toTime(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, !val.IsZero()
	case string:
		s := strings.TrimSpace(val)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func toObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}
