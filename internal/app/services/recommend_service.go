package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/courseplan/courseplan/internal/app/models"
)

// Match field configurations for the keyword recommender. Earlier
// catalog data rarely carries descriptions, so title+department is the
// default; title+description gives better rankings when descriptions
// exist.
const (
	MatchTitleDepartment  = "title,department"
	MatchTitleDescription = "title,description"
)

// semanticScore is the placeholder score attached to semantic
// recommendations. The external ranking is qualitative and not
// comparable to keyword match counts.
const semanticScore = 1

// semanticKeywordMinLen filters short/stopword-ish tokens out of the
// semantic pre-filter.
const semanticKeywordMinLen = 2

// ChatCompleter is the external language-model dependency of the
// semantic recommender.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// RecommendConfig tunes the recommenders.
type RecommendConfig struct {
	// MatchFields selects the course text the keyword scorer matches
	// against: MatchTitleDepartment or MatchTitleDescription.
	MatchFields string

	// MaxCandidates bounds the candidate list sent to the external
	// service, and with it the outbound payload size.
	MaxCandidates int

	// TopN is the maximum number of recommendations returned.
	TopN int
}

// RecommendService scores candidate courses against free-text student
// interests, locally or by delegating ranking to an external
// chat-completion service.
type RecommendService struct {
	cfg    RecommendConfig
	llm    ChatCompleter
	logger zerolog.Logger
}

// NewRecommendService creates a new recommend service instance. llm
// may be nil, in which case semantic recommendations degrade to empty
// results.
func NewRecommendService(cfg RecommendConfig, llm ChatCompleter, logger zerolog.Logger) *RecommendService {
	if cfg.MatchFields == "" {
		cfg.MatchFields = MatchTitleDepartment
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = 200
	}
	if cfg.TopN <= 0 {
		cfg.TopN = 5
	}
	return &RecommendService{
		cfg:    cfg,
		llm:    llm,
		logger: logger,
	}
}

// Recommend scores non-completed courses by how many distinct interest
// keywords occur in their match text, and returns the top N with
// positive scores. The sort is stable: ties keep input order.
func (s *RecommendService) Recommend(courses []models.CourseRecord, interests string, completed map[string]struct{}) []models.Recommendation {
	keywords := tokenize(interests)
	if len(keywords) == 0 {
		return nil
	}

	recommendations := make([]models.Recommendation, 0, len(courses))
	for i := range courses {
		course := courses[i]
		if _, done := completed[course.CourseID]; done {
			continue
		}

		text := strings.ToLower(s.matchText(course))
		score := 0
		for keyword := range keywords {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		if score == 0 {
			continue
		}

		recommendations = append(recommendations, models.Recommendation{
			CourseID: course.CourseID,
			Title:    course.Title,
			Reason:   fmt.Sprintf("Matches %d of your interest keywords", score),
			Score:    score,
			Course:   &course,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if len(recommendations) > s.cfg.TopN {
		recommendations = recommendations[:s.cfg.TopN]
	}
	return recommendations
}

func (s *RecommendService) matchText(course models.CourseRecord) string {
	if s.cfg.MatchFields == MatchTitleDescription {
		return course.Title + " " + course.Description
	}
	return course.Title + " " + course.Department
}

// semanticItem is one entry of the JSON array the external service is
// instructed to return.
type semanticItem struct {
	CourseID string `json:"course_id"`
	Reason   string `json:"reason"`
}

// codeFencePattern strips an optional markdown code fence around the
// reply payload.
var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// RecommendSemantic delegates ranking to the external chat-completion
// service. Candidates are pre-filtered locally to bound payload size;
// with zero candidates no external call is made. Every external
// failure (transport, status, credential, unparseable reply) degrades
// to an empty result — the error is logged, never returned.
func (s *RecommendService) RecommendSemantic(ctx context.Context, courses []models.CourseRecord, interests string, completed map[string]struct{}) []models.Recommendation {
	candidates := s.prefilter(courses, interests, completed)
	if len(candidates) == 0 {
		s.logger.Debug().Msg("Semantic recommendation skipped: no candidates after pre-filter")
		return nil
	}

	if s.llm == nil {
		s.logger.Warn().Msg("Semantic recommendation unavailable: no chat service configured")
		return nil
	}

	reply, err := s.llm.Complete(ctx, buildPrompt(interests, candidates))
	if err != nil {
		s.logger.Warn().Err(err).Msg("Semantic recommendation call failed, returning no recommendations")
		return nil
	}

	items, err := parseSemanticReply(reply)
	if err != nil {
		s.logger.Warn().Err(err).Str("reply", reply).Msg("Semantic reply not parseable, returning no recommendations")
		return nil
	}

	return reconcile(items, candidates)
}

// prefilter drops completed courses and keeps candidates whose title
// and description contain at least one interest keyword longer than
// two characters, truncated to the configured maximum.
func (s *RecommendService) prefilter(courses []models.CourseRecord, interests string, completed map[string]struct{}) []models.CourseRecord {
	keywords := make([]string, 0)
	for token := range tokenize(interests) {
		if len(token) > semanticKeywordMinLen {
			keywords = append(keywords, token)
		}
	}
	if len(keywords) == 0 {
		return nil
	}

	var candidates []models.CourseRecord
	for _, course := range courses {
		if _, done := completed[course.CourseID]; done {
			continue
		}
		text := strings.ToLower(course.Title + " " + course.Description)
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				candidates = append(candidates, course)
				break
			}
		}
		if len(candidates) == s.cfg.MaxCandidates {
			break
		}
	}
	return candidates
}

// buildPrompt enumerates the candidates and instructs the service to
// return a strict JSON array.
func buildPrompt(interests string, candidates []models.CourseRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an NYU course recommender bot. A student said they are interested in: %q.\n", interests)
	b.WriteString("Below is a list of available NYU courses. Recommend the top 5 most relevant ones and explain why for each:\n\nCourses:\n")
	for _, course := range candidates {
		fmt.Fprintf(&b, "%s: %s\n", course.CourseID, course.Title)
	}
	b.WriteString("\nReturn your response as a JSON array with this format:\n")
	b.WriteString("[\n  {\n    \"course_id\": \"...\",\n    \"reason\": \"...\"\n  },\n  ...\n]")
	return b.String()
}

// parseSemanticReply extracts the JSON payload from the reply,
// stripping a markdown code fence when present.
func parseSemanticReply(reply string) ([]semanticItem, error) {
	payload := reply
	if match := codeFencePattern.FindStringSubmatch(reply); match != nil {
		payload = match[1]
	}

	var items []semanticItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}
	return items, nil
}

// reconcile maps returned identifiers back to candidate records. The
// service sometimes echoes "ID: Title" in course_id, so only the part
// before the first colon is matched; items that match no candidate are
// dropped.
func reconcile(items []semanticItem, candidates []models.CourseRecord) []models.Recommendation {
	byID := make(map[string]*models.CourseRecord, len(candidates))
	for i := range candidates {
		if _, exists := byID[candidates[i].CourseID]; !exists {
			byID[candidates[i].CourseID] = &candidates[i]
		}
	}

	var recommendations []models.Recommendation
	for _, item := range items {
		id, _, _ := strings.Cut(item.CourseID, ":")
		id = strings.TrimSpace(id)

		course, ok := byID[id]
		if !ok {
			continue
		}
		recommendations = append(recommendations, models.Recommendation{
			CourseID: course.CourseID,
			Title:    course.Title,
			Reason:   item.Reason,
			Score:    semanticScore,
			Course:   course,
		})
	}
	return recommendations
}

// tokenize lowercases and splits interest text on whitespace,
// collapsing duplicates.
func tokenize(interests string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, token := range strings.Fields(strings.ToLower(interests)) {
		tokens[token] = struct{}{}
	}
	return tokens
}
