package dialect

import "compsim/internal/lang"

// MinScore is the smallest winning score Detect accepts.
const MinScore = 4

// Classification is the result of scoring evidence for a snippet.
type Classification struct {
	Language        lang.Language
	Score           int
	TotalScore      int
	Confidence      float64
	RunnerUp        lang.Language
	RunnerUpScore   int
	ObservedSignals int
}

// Classify scores evidence and chooses the dominant language. Ties go to the
// language listed first in lang.All.
func Classify(e *Evidence) Classification {
	if e == nil || len(e.hints) == 0 {
		return Classification{}
	}

	scores := make(map[lang.Language]int, len(lang.All))
	total := 0
	observed := 0
	for _, h := range e.hints {
		observed++
		if h.Score <= 0 || !h.Language.Valid() {
			continue
		}
		scores[h.Language] += h.Score
		total += h.Score
	}

	best, bestScore := lang.Invalid, 0
	runner, runnerScore := lang.Invalid, 0
	for _, l := range lang.All {
		score := scores[l]
		if score > bestScore {
			runner, runnerScore = best, bestScore
			best, bestScore = l, score
			continue
		}
		if score > runnerScore {
			runner, runnerScore = l, score
		}
	}

	conf := 0.0
	if total > 0 {
		conf = float64(bestScore) / float64(total)
	}
	return Classification{
		Language:        best,
		Score:           bestScore,
		TotalScore:      total,
		Confidence:      conf,
		RunnerUp:        runner,
		RunnerUpScore:   runnerScore,
		ObservedSignals: observed,
	}
}

// Detect classifies src. ok is false when the evidence is too weak or two
// languages score the same.
func Detect(src []byte) (lang.Language, Classification, bool) {
	c := Classify(Collect(src))
	if c.Score < MinScore || c.Score == c.RunnerUpScore {
		return lang.Invalid, c, false
	}
	return c.Language, c, true
}
