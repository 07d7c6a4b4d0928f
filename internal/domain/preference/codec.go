package preference

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Key is a preference_key stored in user_preferences.
type Key string

const (
	KeyPreferredActivities  Key = "preferred_activities"
	KeyFavoriteDestinations Key = "favorite_destinations"
	KeyTravelStyle          Key = "travel_style"
	KeyBudgetRangeMin       Key = "budget_range_min"
	KeyBudgetRangeMax       Key = "budget_range_max"
	KeySchemaVersion        Key = "schema_version"
)

// SchemaVersion is written alongside every saved preference set.
const SchemaVersion = 1

// Row is one stored (preference_key, preference_value) pair.
type Row struct {
	Key   string
	Value string
}

// Decode never fails. Values are parsed as JSON with a fallback to the raw
// string; entries of the wrong shape and unknown keys are skipped.
func Decode(rows []Row) Preferences {
	var p Preferences
	for _, r := range rows {
		v := parseValue(r.Value)
		switch Key(r.Key) {
		case KeyPreferredActivities:
			p.PreferredActivities = toStringList(v)
		case KeyFavoriteDestinations:
			p.FavoriteDestinations = toStringList(v)
		case KeyTravelStyle:
			p.TravelStyles = toStringList(v)
		case KeyBudgetRangeMin:
			p.BudgetMin = toNumber(v)
		case KeyBudgetRangeMax:
			p.BudgetMax = toNumber(v)
		}
	}
	return p
}

// Encode produces the rows that fully replace a user's stored preferences.
func Encode(p Preferences) []Row {
	rows := make([]Row, 0, 6)
	rows = appendList(rows, KeyPreferredActivities, p.PreferredActivities)
	rows = appendList(rows, KeyFavoriteDestinations, p.FavoriteDestinations)
	rows = appendList(rows, KeyTravelStyle, p.TravelStyles)
	if p.BudgetMin != nil {
		rows = append(rows, Row{Key: string(KeyBudgetRangeMin), Value: formatNumber(*p.BudgetMin)})
	}
	if p.BudgetMax != nil {
		rows = append(rows, Row{Key: string(KeyBudgetRangeMax), Value: formatNumber(*p.BudgetMax)})
	}
	rows = append(rows, Row{Key: string(KeySchemaVersion), Value: strconv.Itoa(SchemaVersion)})
	return rows
}

func appendList(rows []Row, key Key, values []string) []Row {
	if values == nil {
		return rows
	}
	// []string always marshals
	b, _ := json.Marshal(values)
	return append(rows, Row{Key: string(key), Value: string(b)})
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

func toStringList(v any) []string {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
	}
	return nil
}

func toNumber(v any) *float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
