package normalize

import (
	"slices"
	"time"
)

// FromWire coerces a backend row into canonical shape. It never fails:
// malformed values become absent, list fields always become lists, and keys
// the schema does not declare are dropped.
func (s *Schema) FromWire(wire map[string]any) map[string]any {
	return fromWire(s.Fields, wire)
}

func fromWire(fields []Field, wire map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		raw, ok := wire[f.Name]
		if !ok || raw == nil {
			if isList(f.Kind) {
				out[f.Name] = []string{}
			}
			continue
		}
		if v, keep := readValue(f, raw); keep {
			out[f.Name] = v
		}
	}
	return out
}

func isList(k Kind) bool { return k == KindStrings || k == KindSites }

func readValue(f Field, raw any) (any, bool) {
	switch f.Kind {
	case KindNumber:
		if n, ok := toNumber(raw); ok {
			return n, true
		}
		if str, isStr := raw.(string); isStr && f.Currency {
			return ParseCurrency(str)
		}
		return nil, false
	case KindString:
		return toText(raw)
	case KindBool:
		return toBool(raw)
	case KindStrings:
		if list, ok := toStrings(raw); ok {
			return list, true
		}
		return []string{}, true
	case KindSites:
		if list, ok := toSites(raw); ok {
			return list, true
		}
		return []string{}, true
	case KindEnum:
		if str, ok := raw.(string); ok && slices.Contains(f.Enum, str) {
			return str, true
		}
		return nil, false
	case KindObject:
		m, ok := toObject(raw)
		if !ok {
			return nil, false
		}
		if f.Fields == nil {
			return m, true
		}
		return fromWire(f.Fields, m), true
	case KindTime:
		return toTime(raw)
	}
	return nil, false
}

// ToWire builds the request payload for in. With Update only fields present
// in the input are written, so a partial patch stays partial. SiteAll is
// never written.
func (s *Schema) ToWire(in map[string]any, mode Mode) map[string]any {
	out := toWire(s.Fields, in, mode)

	for _, fold := range s.Folds {
		nested := make(map[string]any, len(fold.From))
		for _, key := range fold.From {
			if v, ok := in[key]; ok && present(v) {
				if str, isText := toText(v); isText {
					nested[key] = str
				}
			}
		}
		if len(nested) == 0 {
			continue
		}
		if existing, ok := out[fold.Into].(map[string]any); ok {
			for k, v := range nested {
				existing[k] = v
			}
			continue
		}
		out[fold.Into] = nested
	}
	return out
}

func toWire(fields []Field, in map[string]any, mode Mode) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		if f.ReadOnly {
			continue
		}

		raw, found := lookup(f, in)
		if !found && f.DigitsFrom != "" {
			if src, ok := in[f.DigitsFrom].(string); ok {
				if n, ok := toNumber(DigitsOnly(src)); ok {
					raw, found = n, true
				}
			}
		}

		if found {
			if v, keep := writeValue(f, raw, mode); keep {
				out[f.Name] = v
				continue
			}
		}
		if mode == Create && f.Default != nil {
			out[f.Name] = f.Default
		}
	}
	return out
}

// lookup returns the first present value among the aliases and the
// canonical name. A key that is set but empty is still reported as found
// when it is the only candidate, so updates can clear a field.
func lookup(f Field, in map[string]any) (any, bool) {
	var (
		fallback any
		seen     bool
	)
	for _, key := range append(slices.Clone(f.Aliases), f.Name) {
		v, ok := in[key]
		if !ok {
			continue
		}
		if present(v) {
			return v, true
		}
		if !seen {
			fallback, seen = v, true
		}
	}
	return fallback, seen
}

func writeValue(f Field, raw any, mode Mode) (any, bool) {
	switch f.Kind {
	case KindNumber:
		if str, ok := raw.(string); ok && f.Currency {
			n, _ := ParseCurrency(str)
			return n, true
		}
		return toNumber(raw)
	case KindString:
		if raw == nil {
			return "", true
		}
		return toText(raw)
	case KindBool:
		return toBool(raw)
	case KindStrings:
		return toStrings(raw)
	case KindSites:
		return toKnownSites(raw)
	case KindEnum:
		if str, ok := raw.(string); ok && slices.Contains(f.Enum, str) {
			return str, true
		}
		return nil, false
	case KindObject:
		m, ok := toObject(raw)
		if !ok {
			return nil, false
		}
		if f.Fields == nil {
			return m, true
		}
		nested := toWire(f.Fields, m, Update)
		return nested, len(nested) > 0
	case KindTime:
		t, ok := toTime(raw)
		if !ok {
			return nil, false
		}
		return t.UTC().Format(time.RFC3339), true
	}
	return nil, false
}
