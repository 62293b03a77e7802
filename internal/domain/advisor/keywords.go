package advisor

import "strings"

// CriticalSymptoms short-circuits the citizen profile to the emergency
// response. The landing profile uses SeriousSymptoms, a broader list; the
// two are kept separate on purpose.
var CriticalSymptoms = []string{
	"chest pain", "difficulty breathing", "unconscious", "bleeding",
	"high fever", "fainting", "can't breathe", "heart attack", "stroke",
}

// SeriousSymptoms short-circuits the landing profile to the log-in prompt.
var SeriousSymptoms = []string{
	"chest pain", "difficulty breathing", "confusion", "high fever",
	"severe bleeding", "fainting", "stroke", "heart attack", "can't breathe",
	"unconscious", "severe headache", "numbness", "paralysis",
}

// WeatherKeywords marks a landing message as weather-related, which allows
// the prompt to carry the caller's coordinates as optional context.
var WeatherKeywords = []string{
	"weather", "temperature", "heat", "cold", "humidity", "climate",
	"outside", "hot", "warm", "cool", "sunny", "rainy", "windy",
}

// ContainsAny reports whether text contains any keyword, case-insensitively.
func ContainsAny(text string, keywords []string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
