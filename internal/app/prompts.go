package app

import (
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
)

// Operation names reported to logs and token metrics.
const (
	opExtractPerson        = "extract_person"
	opExtractOrganization  = "extract_organization"
	opSuggestRelationships = "suggest_relationships"
	opEnrichNode           = "enrich_node"
)

// Sampling parameters per operation. Extraction runs cold for repeatable
// structure; suggestion and enrichment leave room for inference.
const (
	extractionTemperature = 0.1
	extractionMaxTokens   = 500
	suggestionTemperature = 0.3
	suggestionMaxTokens   = 800
	enrichmentTemperature = 0.4
	enrichmentMaxTokens   = 600
)

const personSystemPrompt = `You are an expert at extracting structured data about people from natural language descriptions.

Given a description of a person, extract the following information in JSON format:
{
    "name": "Full name of the person",
    "email": "Email address if mentioned, otherwise null",
    "age": "Age if mentioned, otherwise null",
    "is_active": true,
    "additional_info": {
        "occupation": "Job/occupation if mentioned",
        "location": "Location/city if mentioned",
        "interests": ["list", "of", "interests", "if", "mentioned"],
        "skills": ["list", "of", "skills", "if", "mentioned"]
    }
}

Only include fields that are explicitly mentioned or can be reasonably inferred.
Use null for missing information. Keep names properly capitalized.`

const organizationSystemPrompt = `You are an expert at extracting structured data about organizations/companies from natural language descriptions.

Given a description of an organization, extract the following information in JSON format:
{
    "name": "Official name of the organization",
    "description": "Brief description of what they do",
    "industry": "Industry/sector they operate in",
    "employee_count": "Number of employees if mentioned, otherwise null",
    "website": "Website URL if mentioned, otherwise null",
    "additional_info": {
        "founded": "Founding year if mentioned",
        "headquarters": "Location of headquarters if mentioned",
        "specialties": ["list", "of", "specialties", "if", "mentioned"],
        "products": ["list", "of", "products", "if", "mentioned"]
    }
}

Only include fields that are explicitly mentioned or can be reasonably inferred.
Use null for missing information. Keep names properly formatted.`

const suggestionSystemPrompt = `You are an expert at analyzing relationships between people and organizations.

Given information about a source entity and a list of candidate entities, suggest possible relationships between the source and the candidates.
Return your analysis in JSON format:
{
    "relationships": [
        {
            "type": "relationship_type",
            "target_uid": "uid of the candidate entity",
            "direction": "outgoing" or "incoming" or "bidirectional",
            "confidence": 0.8,
            "properties": {
                "key": "value"
            },
            "reasoning": "Why you think this relationship exists"
        }
    ]
}

Possible relationship types include:
- WORKS_FOR (person to organization)
- KNOWS (person to person)
- PARTNERS_WITH (organization to organization)
- LOCATED_IN (any to location)
- ASSIGNED_TO (person to project)
- OWNS (person/org to project/asset)

Confidence should be between 0.0 and 1.0.
Only suggest relationships you can reasonably infer from the data.`

const enrichmentSystemTemplate = `You are an expert at enriching %s data with relevant additional information.

Given existing data about a %s, suggest additional properties and tags that would be relevant.
Return your suggestions in JSON format:
{
    "suggested_properties": {
        "property_name": "suggested_value"
    },
    "suggested_tags": ["tag1", "tag2", "tag3"],
    "confidence_score": 0.8,
    "reasoning": "Explanation of your suggestions"
}

Base your suggestions on common patterns and logical inferences from the existing data.
Only suggest information that would typically be associated with this type of entity.`

func personUserPrompt(description string) string {
	return "Extract person information from this description:\n\n" + description
}

func organizationUserPrompt(description string) string {
	return "Extract organization information from this description:\n\n" + description
}

// sourceContext is the full source node embedded in the suggestion prompt.
type sourceContext struct {
	UID        string         `json:"uid"`
	Label      string         `json:"label"`
	Properties map[string]any `json:"properties"`
}

// candidateContext is the trimmed candidate form: enough for the model to
// reason about a connection without spending tokens on full property maps.
type candidateContext struct {
	UID   string `json:"uid"`
	Label string `json:"label"`
	Name  string `json:"name"`
}

func suggestionUserPrompt(source *graph.Node, candidates []graph.Node) (string, error) {
	src, err := json.MarshalIndent(sourceContext{
		UID:        source.UID,
		Label:      source.Label,
		Properties: source.Properties,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding source node: %w", err)
	}

	ctxs := make([]candidateContext, 0, len(candidates))
	for _, c := range candidates {
		ctxs = append(ctxs, candidateContext{UID: c.UID, Label: c.Label, Name: c.Name()})
	}
	cands, err := json.MarshalIndent(ctxs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding candidate nodes: %w", err)
	}

	return fmt.Sprintf(`Analyze the relationships between this entity and the candidates:

Source entity: %s

Candidate entities: %s

What relationships might exist between them?`, src, cands), nil
}

func enrichmentSystemPrompt(label string) string {
	return fmt.Sprintf(enrichmentSystemTemplate, label, label)
}

func enrichmentUserPrompt(source *graph.Node) (string, error) {
	data, err := json.MarshalIndent(sourceContext{
		UID:        source.UID,
		Label:      source.Label,
		Properties: source.Properties,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding node: %w", err)
	}

	return fmt.Sprintf(`Enrich this %s data with relevant additional information:

%s

What additional properties and tags would be relevant for this %s?`, source.Label, data, source.Label), nil
}
