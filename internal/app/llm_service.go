package app

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	appctx "github.com/jsamuelsen11/knowledge-graph-service/internal/app/context"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/app/fanout"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

const (
	// candidatesPerLabel caps how many nodes of each label enter the
	// suggestion prompt as candidates.
	candidatesPerLabel = 20

	// candidateWorkers bounds the per-label candidate queries running
	// concurrently.
	candidateWorkers = 4
)

// suggestibleTypes are the relationship types the suggestion prompt offers;
// responses proposing anything else are dropped.
var suggestibleTypes = map[string]struct{}{
	graph.RelWorksFor:     {},
	graph.RelKnows:        {},
	graph.RelPartnersWith: {},
	graph.RelLocatedIn:    {},
	graph.RelAssignedTo:   {},
	graph.RelOwns:         {},
}

// Compile-time check that LLMGraphService implements ports.LLMService.
var _ ports.LLMService = (*LLMGraphService)(nil)

// LLMGraphService implements ports.LLMService: assisted node creation,
// relationship suggestion, and enrichment driven by chat completions.
//
// The service degrades rather than fails when pieces are missing: a nil chat
// client turns every operation into ErrUnavailable, and a nil cache simply
// skips extraction caching.
type LLMGraphService struct {
	chat     ports.ChatClient
	repo     ports.GraphRepository
	registry *graph.Registry
	cache    ports.ExtractionCache
	logger   *slog.Logger
}

// NewLLMGraphService creates an LLMGraphService. chat may be nil when no
// gateway is configured and cache may be nil when extraction caching is
// disabled. A nil logger is replaced with a no-op logger.
func NewLLMGraphService(
	chat ports.ChatClient,
	repo ports.GraphRepository,
	registry *graph.Registry,
	cache ports.ExtractionCache,
	logger *slog.Logger,
) *LLMGraphService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LLMGraphService{
		chat:     chat,
		repo:     repo,
		registry: registry,
		cache:    cache,
		logger:   logger,
	}
}

// Available reports whether an LLM gateway is configured.
func (s *LLMGraphService) Available() bool {
	return s.chat != nil
}

// CreatePersonFromDescription extracts a person from free text, stores it,
// and attaches extracted interests and skills as tags. The person upsert is
// staged first and the tag attachments follow as a parallel group, so a
// failed tag write rolls the created person back out of the graph.
func (s *LLMGraphService) CreatePersonFromDescription(ctx context.Context, description, createdBy string) (*ports.PersonExtraction, error) {
	if s.chat == nil {
		return nil, fmt.Errorf("%w: llm gateway not configured", domain.ErrUnavailable)
	}

	s.logger.InfoContext(ctx, "extracting person from description",
		slog.Int("description_chars", len(description)),
	)

	content, err := s.cachedCompletion(ctx, opExtractPerson, description,
		personSystemPrompt, personUserPrompt(description))
	if err != nil {
		return nil, err
	}

	var payload personPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, invalidJSONError(err)
	}

	person := &graph.Person{
		Name:     strings.TrimSpace(payload.Name),
		Email:    strings.TrimSpace(payload.Email),
		Age:      intFromJSON(payload.Age),
		IsActive: payload.IsActive == nil || *payload.IsActive,
	}
	if err := person.Validate(); err != nil {
		return nil, err
	}

	props := person.Properties()
	if createdBy != "" {
		props["created_by"] = createdBy
	}

	// Use the request's write queue when the AppContext middleware installed
	// one; callers outside the HTTP path get a standalone queue.
	rc := appctx.FromContext(ctx)
	if rc == nil {
		rc = appctx.New(ctx)
	}

	personAction := &upsertNodeAction{
		repo:    s.repo,
		label:   graph.LabelPerson,
		props:   props,
		display: person.Name,
	}
	if err := rc.AddAction(personAction); err != nil {
		return nil, err
	}

	tagActions := make([]*attachTagAction, 0)
	for _, name := range extractedTagNames(payload.AdditionalInfo) {
		tag := graph.Tag{Name: name}
		if err := tag.Validate(); err != nil {
			s.logger.WarnContext(ctx, "dropping unusable extracted tag",
				slog.String("operation", opExtractPerson),
				slog.String("tag", name),
				slog.Any("error", err),
			)
			continue
		}
		tagActions = append(tagActions, &attachTagAction{
			repo:      s.repo,
			person:    personAction,
			tag:       tag,
			createdBy: createdBy,
		})
	}
	if len(tagActions) > 0 {
		group := make([]domain.Action, len(tagActions))
		for i, action := range tagActions {
			group[i] = action
		}
		if err := rc.AddGroup(group...); err != nil {
			return nil, err
		}
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to store extracted person",
			slog.String("operation", "CreatePersonFromDescription"),
			slog.Any("error", err),
		)
		return nil, err
	}

	stored := graph.PersonFromNode(*personAction.stored)
	result := &ports.PersonExtraction{
		Person:     &stored,
		Tags:       make([]graph.Tag, 0, len(tagActions)),
		Additional: additionalInfo(payload.AdditionalInfo, "interests", "skills"),
	}
	for _, action := range tagActions {
		result.Tags = append(result.Tags, *action.stored)
	}

	s.logger.InfoContext(ctx, "created person from description",
		slog.String("uid", stored.UID),
		slog.String("name", stored.Name),
		slog.Int("tags", len(result.Tags)),
	)
	return result, nil
}

// CreateOrganizationFromDescription extracts and stores an organization from
// free text.
func (s *LLMGraphService) CreateOrganizationFromDescription(ctx context.Context, description, createdBy string) (*ports.OrganizationExtraction, error) {
	if s.chat == nil {
		return nil, fmt.Errorf("%w: llm gateway not configured", domain.ErrUnavailable)
	}

	s.logger.InfoContext(ctx, "extracting organization from description",
		slog.Int("description_chars", len(description)),
	)

	content, err := s.cachedCompletion(ctx, opExtractOrganization, description,
		organizationSystemPrompt, organizationUserPrompt(description))
	if err != nil {
		return nil, err
	}

	var payload organizationPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, invalidJSONError(err)
	}

	org := &graph.Organization{
		Name:          strings.TrimSpace(payload.Name),
		Description:   strings.TrimSpace(payload.Description),
		Industry:      strings.TrimSpace(payload.Industry),
		EmployeeCount: intFromJSON(payload.EmployeeCount),
		Website:       strings.TrimSpace(payload.Website),
	}
	if err := org.Validate(); err != nil {
		return nil, err
	}

	props := org.Properties()
	if createdBy != "" {
		props["created_by"] = createdBy
	}

	node, err := s.repo.UpsertNode(ctx, graph.LabelOrganization, "", props)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to store extracted organization",
			slog.String("operation", "CreateOrganizationFromDescription"),
			slog.Any("error", err),
		)
		return nil, err
	}

	stored := graph.OrganizationFromNode(*node)
	s.logger.InfoContext(ctx, "created organization from description",
		slog.String("uid", stored.UID),
		slog.String("name", stored.Name),
	)
	return &ports.OrganizationExtraction{
		Organization: &stored,
		Additional:   additionalInfo(payload.AdditionalInfo),
	}, nil
}

// SuggestRelationships proposes relationships between the node and candidate
// nodes gathered from every registered label. Suggestions with unknown
// types, confidence outside [0,1], or target UIDs that were never offered as
// candidates are dropped.
func (s *LLMGraphService) SuggestRelationships(ctx context.Context, uid string) ([]ports.RelationshipSuggestion, error) {
	if s.chat == nil {
		return nil, fmt.Errorf("%w: llm gateway not configured", domain.ErrUnavailable)
	}

	s.logger.InfoContext(ctx, "suggesting relationships", slog.String("uid", uid))

	source, err := s.repo.GetNode(ctx, "", uid)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch node",
			slog.String("operation", "SuggestRelationships"),
			slog.String("uid", uid),
			slog.Any("error", err),
		)
		return nil, err
	}

	candidates := s.gatherCandidates(ctx, source)
	user, err := suggestionUserPrompt(source, candidates)
	if err != nil {
		return nil, err
	}

	content, err := s.complete(ctx, opSuggestRelationships, suggestionSystemPrompt, user,
		suggestionTemperature, suggestionMaxTokens)
	if err != nil {
		return nil, err
	}

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, invalidJSONError(err)
	}

	offered := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		offered[c.UID] = struct{}{}
	}

	suggestions := make([]ports.RelationshipSuggestion, 0, len(payload.Relationships))
	for _, rel := range payload.Relationships {
		relType := strings.ToUpper(strings.TrimSpace(rel.Type))
		if _, ok := suggestibleTypes[relType]; !ok {
			continue
		}
		if rel.Confidence < 0 || rel.Confidence > 1 {
			continue
		}
		if _, ok := offered[rel.TargetUID]; !ok {
			continue
		}
		suggestions = append(suggestions, ports.RelationshipSuggestion{
			Type:       relType,
			TargetUID:  rel.TargetUID,
			Direction:  strings.ToLower(strings.TrimSpace(rel.Direction)),
			Confidence: rel.Confidence,
			Properties: rel.Properties,
			Reasoning:  rel.Reasoning,
		})
	}

	s.logger.InfoContext(ctx, "generated relationship suggestions",
		slog.String("uid", uid),
		slog.Int("count", len(suggestions)),
		slog.Int("dropped", len(payload.Relationships)-len(suggestions)),
	)
	return suggestions, nil
}

// EnrichNode returns suggested properties and tags for an existing node.
// Suggestions are advisory; nothing is persisted.
func (s *LLMGraphService) EnrichNode(ctx context.Context, uid string) (*ports.NodeEnrichment, error) {
	if s.chat == nil {
		return nil, fmt.Errorf("%w: llm gateway not configured", domain.ErrUnavailable)
	}

	s.logger.InfoContext(ctx, "enriching node", slog.String("uid", uid))

	source, err := s.repo.GetNode(ctx, "", uid)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch node",
			slog.String("operation", "EnrichNode"),
			slog.String("uid", uid),
			slog.Any("error", err),
		)
		return nil, err
	}

	user, err := enrichmentUserPrompt(source)
	if err != nil {
		return nil, err
	}

	content, err := s.complete(ctx, opEnrichNode, enrichmentSystemPrompt(source.Label), user,
		enrichmentTemperature, enrichmentMaxTokens)
	if err != nil {
		return nil, err
	}

	var payload enrichmentPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, invalidJSONError(err)
	}

	s.logger.InfoContext(ctx, "generated node enrichment",
		slog.String("uid", uid),
		slog.Int("properties", len(payload.SuggestedProperties)),
		slog.Int("tags", len(payload.SuggestedTags)),
	)
	return &ports.NodeEnrichment{
		SuggestedProperties: payload.SuggestedProperties,
		SuggestedTags:       payload.SuggestedTags,
		Confidence:          payload.ConfidenceScore,
		Reasoning:           payload.Reasoning,
	}, nil
}

// gatherCandidates collects suggestion candidates from every registered
// label with bounded concurrency. A label that fails to list is skipped;
// suggestions degrade to the candidates that could be fetched.
func (s *LLMGraphService) gatherCandidates(ctx context.Context, source *graph.Node) []graph.Node {
	labels := s.registry.Labels()
	results := fanout.Run(ctx, candidateWorkers, labels, func(ctx context.Context, label string) ([]graph.Node, error) {
		return s.repo.NodesByLabel(ctx, label, nil, candidatesPerLabel)
	})

	var candidates []graph.Node
	for i, res := range results {
		if res.Err != nil {
			s.logger.WarnContext(ctx, "skipping candidate label",
				slog.String("operation", "SuggestRelationships"),
				slog.String("label", labels[i]),
				slog.Any("error", res.Err),
			)
			continue
		}
		for _, node := range res.Value {
			if node.UID == source.UID {
				continue
			}
			candidates = append(candidates, node)
		}
	}
	return candidates
}

// complete sends one JSON-mode chat completion and strips any code fences
// from the response.
func (s *LLMGraphService) complete(ctx context.Context, operation, system, user string, temperature float64, maxTokens int64) (string, error) {
	result, err := s.chat.Complete(ctx, ports.ChatRequest{
		Operation:   operation,
		System:      system,
		User:        user,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		JSONMode:    true,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "completion failed",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
		return "", err
	}
	return stripFences(result.Content), nil
}

// cachedCompletion resolves an extraction response from the cache before
// paying for a completion. Cache failures degrade to the gateway call.
func (s *LLMGraphService) cachedCompletion(ctx context.Context, operation, input, system, user string) (string, error) {
	key := extractionCacheKey(operation, input)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "extraction cache read failed",
				slog.String("operation", operation),
				slog.Any("error", err),
			)
		case ok:
			s.logger.InfoContext(ctx, "extraction cache hit", slog.String("operation", operation))
			return cached, nil
		}
	}

	content, err := s.complete(ctx, operation, system, user, extractionTemperature, extractionMaxTokens)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, content); err != nil {
			s.logger.WarnContext(ctx, "extraction cache write failed",
				slog.String("operation", operation),
				slog.Any("error", err),
			)
		}
	}
	return content, nil
}

// extractionCacheKey hashes the operation and input so identical
// descriptions share an entry without putting free text in the key space.
func extractionCacheKey(operation, input string) string {
	sum := sha256.Sum256([]byte(operation + "\x00" + input))
	return fmt.Sprintf("llm:%s:%x", operation, sum[:16])
}

// personPayload mirrors the JSON shape the person extraction prompt asks
// for. Age stays untyped because models return numbers, numeric strings, or
// null for it.
type personPayload struct {
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Age            any            `json:"age"`
	IsActive       *bool          `json:"is_active"`
	AdditionalInfo map[string]any `json:"additional_info"`
}

// organizationPayload mirrors the organization extraction prompt.
type organizationPayload struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Industry       string         `json:"industry"`
	EmployeeCount  any            `json:"employee_count"`
	Website        string         `json:"website"`
	AdditionalInfo map[string]any `json:"additional_info"`
}

// suggestionPayload mirrors the relationship suggestion prompt.
type suggestionPayload struct {
	Relationships []struct {
		Type       string         `json:"type"`
		TargetUID  string         `json:"target_uid"`
		Direction  string         `json:"direction"`
		Confidence float64        `json:"confidence"`
		Properties map[string]any `json:"properties"`
		Reasoning  string         `json:"reasoning"`
	} `json:"relationships"`
}

// enrichmentPayload mirrors the enrichment prompt.
type enrichmentPayload struct {
	SuggestedProperties map[string]any `json:"suggested_properties"`
	SuggestedTags       []string       `json:"suggested_tags"`
	ConfidenceScore     float64        `json:"confidence_score"`
	Reasoning           string         `json:"reasoning"`
}

// invalidJSONError classifies a gateway response that did not parse.
func invalidJSONError(err error) error {
	return fmt.Errorf("%w: gateway returned invalid JSON: %v", domain.ErrValidation, err)
}

// stripFences removes a surrounding markdown code fence, with or without a
// json language tag, from a completion.
func stripFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimPrefix(trimmed, "json")
	if i := strings.LastIndex(trimmed, "```"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return strings.TrimSpace(trimmed)
}

// intFromJSON coerces an extracted numeric field that may arrive as a JSON
// number, a numeric string, or null.
func intFromJSON(v any) *int {
	switch n := v.(type) {
	case float64:
		i := int(n)
		return &i
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return &i
		}
	}
	return nil
}

// extractedTagNames merges the interests and skills lists into one
// case-insensitively deduplicated set of tag names, preserving first-seen
// order.
func extractedTagNames(info map[string]any) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, key := range []string{"interests", "skills"} {
		list, ok := info[key].([]any)
		if !ok {
			continue
		}
		for _, item := range list {
			name, ok := item.(string)
			if !ok {
				continue
			}
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			folded := strings.ToLower(name)
			if _, dup := seen[folded]; dup {
				continue
			}
			seen[folded] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// additionalInfo returns the extraction's additional_info entries minus nils
// and the listed keys. An empty result is nil, not an empty map.
func additionalInfo(info map[string]any, except ...string) map[string]any {
	var out map[string]any
	for k, v := range info {
		if v == nil {
			continue
		}
		skip := false
		for _, e := range except {
			if k == e {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		if out == nil {
			out = make(map[string]any)
		}
		out[k] = v
	}
	return out
}
