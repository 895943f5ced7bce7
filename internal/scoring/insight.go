package scoring

import (
	"fmt"

	"psymetric/internal/domain"
)

// band buckets a percentile for text selection: <35 low, 35-65 moderate,
// >=65 high.
type band int

const (
	bandLow band = iota
	bandModerate
	bandHigh
)

func bandFor(percentile int) band {
	switch {
	case percentile < 35:
		return bandLow
	case percentile < 65:
		return bandModerate
	default:
		return bandHigh
	}
}

// traitPriority is the fixed dimension order used for candidate collection,
// truncation and summary tie-breaks.
var traitPriority = []string{
	domain.DimOpenness,
	domain.DimConscientiousness,
	domain.DimExtraversion,
	domain.DimAgreeableness,
	domain.DimEmotionalStability,
}

const (
	strengthThreshold  = 65
	challengeThreshold = 35
	maxListEntries     = 5
)

var traitDescriptions = map[string]map[band]string{
	domain.DimOpenness: {
		bandLow:      "Prefers proven approaches and concrete, practical problems over abstract speculation.",
		bandModerate: "Balances curiosity about new ideas with a grounded, practical outlook.",
		bandHigh:     "Actively seeks out novel ideas, unconventional perspectives and creative work.",
	},
	domain.DimConscientiousness: {
		bandLow:      "Works in bursts and keeps plans loose, trading structure for flexibility.",
		bandModerate: "Keeps reasonable order and follows through on commitments without rigidity.",
		bandHigh:     "Plans ahead, tracks details and reliably delivers on long-running commitments.",
	},
	domain.DimExtraversion: {
		bandLow:      "Recharges alone and prefers depth in a few relationships over broad social circles.",
		bandModerate: "Comfortable in groups and one-on-one alike, without needing either.",
		bandHigh:     "Draws energy from people, initiates contact easily and enjoys visible roles.",
	},
	domain.DimAgreeableness: {
		bandLow:      "Competes readily, questions others' motives and holds positions firmly.",
		bandModerate: "Cooperates when it makes sense but pushes back when interests conflict.",
		bandHigh:     "Defaults to trust and accommodation, and invests heavily in group harmony.",
	},
	domain.DimEmotionalStability: {
		bandLow:      "Reacts strongly to setbacks and carries stress longer than most.",
		bandModerate: "Feels pressure in difficult stretches but recovers at a typical pace.",
		bandHigh:     "Stays even-keeled under pressure and resets quickly after setbacks.",
	},
}

var strengthTexts = map[string]string{
	domain.DimOpenness:           "Generates original ideas and adapts quickly to unfamiliar problems",
	domain.DimConscientiousness:  "Delivers reliably through planning, order and persistence",
	domain.DimExtraversion:       "Energizes groups and builds networks with ease",
	domain.DimAgreeableness:      "Builds trust and defuses conflict within teams",
	domain.DimEmotionalStability: "Keeps composure and clear judgment under stress",
}

var challengeTexts = map[string]string{
	domain.DimOpenness:           "May dismiss novel approaches before fully exploring them",
	domain.DimConscientiousness:  "May lose momentum on long tasks without external structure",
	domain.DimExtraversion:       "May stay invisible in settings that reward self-presentation",
	domain.DimAgreeableness:      "May create friction by prioritizing winning over alignment",
	domain.DimEmotionalStability: "May let stress linger and color unrelated decisions",
}

var implicationTexts = map[string]map[band]string{
	domain.DimOpenness: {
		bandLow:      "Fits best in roles with stable methods and well-defined success criteria.",
		bandModerate: "Handles both routine execution and occasional ambiguity.",
		bandHigh:     "Thrives where experimentation and ambiguity are the norm.",
	},
	domain.DimConscientiousness: {
		bandLow:      "Benefits from short feedback loops and externally imposed deadlines.",
		bandModerate: "Works well with light-touch process and clear priorities.",
		bandHigh:     "Suited to ownership of long-horizon, detail-heavy work.",
	},
	domain.DimExtraversion: {
		bandLow:      "Most productive with protected focus time and asynchronous collaboration.",
		bandModerate: "Flexible across solo work and collaborative settings.",
		bandHigh:     "Well placed in client-facing, facilitation or leadership roles.",
	},
	domain.DimAgreeableness: {
		bandLow:      "Effective where hard negotiation and independent judgment are required.",
		bandModerate: "Can both advocate a position and broker a compromise.",
		bandHigh:     "Strong fit for mentoring, support and consensus-driven teams.",
	},
	domain.DimEmotionalStability: {
		bandLow:      "Does best with predictable workloads and explicit expectations.",
		bandModerate: "Handles normal operational pressure without special support.",
		bandHigh:     "A steadying presence for high-stakes or incident-driven work.",
	},
}

// summaryPairTemplates is keyed by the top-2 dimensions in priority order.
// Keeping one template per pair avoids hand-duplicated prose per call site.
var summaryPairTemplates = map[[2]string]string{
	{domain.DimOpenness, domain.DimConscientiousness}:           "combines intellectual curiosity with disciplined follow-through",
	{domain.DimOpenness, domain.DimExtraversion}:                "pairs a taste for new ideas with outgoing, energetic engagement",
	{domain.DimOpenness, domain.DimAgreeableness}:               "brings creative thinking together with a cooperative, trusting manner",
	{domain.DimOpenness, domain.DimEmotionalStability}:          "explores unfamiliar territory while staying calm and composed",
	{domain.DimConscientiousness, domain.DimExtraversion}:       "matches reliable execution with visible, energetic leadership",
	{domain.DimConscientiousness, domain.DimAgreeableness}:      "anchors teams with dependable work and a considerate style",
	{domain.DimConscientiousness, domain.DimEmotionalStability}: "delivers steadily and keeps composure when plans are tested",
	{domain.DimExtraversion, domain.DimAgreeableness}:           "connects easily with people and keeps those connections warm",
	{domain.DimExtraversion, domain.DimEmotionalStability}:      "engages groups confidently without being rattled by pressure",
	{domain.DimAgreeableness, domain.DimEmotionalStability}:     "offers others a patient, unflappable and supportive presence",
}

// GenerateInsights maps per-dimension percentiles to descriptions, strength
// and challenge lists, implications and a composite summary. Deterministic:
// every table lookup and ordering rule is fixed.
func GenerateInsights(percentiles map[string]int) domain.TraitScoreResult {
	result := domain.TraitScoreResult{
		Percentiles:  percentiles,
		Descriptions: make(map[string]string, len(traitPriority)),
	}

	for _, dim := range traitPriority {
		p, ok := percentiles[dim]
		if !ok {
			continue
		}
		b := bandFor(p)
		result.Descriptions[dim] = traitDescriptions[dim][b]
		result.Implications = append(result.Implications, implicationTexts[dim][b])

		if p >= strengthThreshold {
			result.Strengths = append(result.Strengths, strengthTexts[dim])
		}
		if p <= challengeThreshold {
			result.Challenges = append(result.Challenges, challengeTexts[dim])
		}
	}

	result.Strengths = truncate(result.Strengths, maxListEntries)
	result.Challenges = truncate(result.Challenges, maxListEntries)
	result.Implications = truncate(result.Implications, maxListEntries)
	result.Summary = buildSummary(percentiles)
	return result
}

// truncate keeps the first n entries in the already-fixed collection order.
func truncate(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

// buildSummary composes the summary from the top-2 dimensions only. Ties are
// broken by the fixed priority order.
func buildSummary(percentiles map[string]int) string {
	var first, second string
	for _, dim := range traitPriority {
		p, ok := percentiles[dim]
		if !ok {
			continue
		}
		switch {
		case first == "" || p > percentiles[first]:
			second = first
			first = dim
		case second == "" || p > percentiles[second]:
			second = dim
		}
	}
	if first == "" || second == "" {
		return ""
	}

	key := pairKey(first, second)
	template, ok := summaryPairTemplates[key]
	if !ok {
		return ""
	}
	return fmt.Sprintf("This profile %s.", template)
}

// pairKey orders two dimensions by the fixed priority so every unordered
// pair hits exactly one template.
func pairKey(a, b string) [2]string {
	for _, dim := range traitPriority {
		if dim == a {
			return [2]string{a, b}
		}
		if dim == b {
			return [2]string{b, a}
		}
	}
	return [2]string{a, b}
}
