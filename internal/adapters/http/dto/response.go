// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// PersonResponse represents a person node in HTTP responses.
type PersonResponse struct {
	UID       string `json:"uid"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Age       *int   `json:"age,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToPersonResponse converts a domain Person entity to an HTTP response DTO.
func ToPersonResponse(p *graph.Person) PersonResponse {
	return PersonResponse{
		UID:       p.UID,
		Name:      p.Name,
		Email:     p.Email,
		Age:       p.Age,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

// OrganizationResponse represents an organization node in HTTP responses.
type OrganizationResponse struct {
	UID           string `json:"uid"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Industry      string `json:"industry,omitempty"`
	EmployeeCount *int   `json:"employee_count,omitempty"`
	Website       string `json:"website,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// ToOrganizationResponse converts a domain Organization entity to an HTTP
// response DTO.
func ToOrganizationResponse(o *graph.Organization) OrganizationResponse {
	return OrganizationResponse{
		UID:           o.UID,
		Name:          o.Name,
		Description:   o.Description,
		Industry:      o.Industry,
		EmployeeCount: o.EmployeeCount,
		Website:       o.Website,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     o.UpdatedAt.Format(time.RFC3339),
	}
}

// LocationResponse represents a location node in HTTP responses.
type LocationResponse struct {
	UID       string   `json:"uid"`
	Name      string   `json:"name"`
	Country   string   `json:"country,omitempty"`
	City      string   `json:"city,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// ToLocationResponse converts a domain Location entity to an HTTP response DTO.
func ToLocationResponse(l *graph.Location) LocationResponse {
	return LocationResponse{
		UID:       l.UID,
		Name:      l.Name,
		Country:   l.Country,
		City:      l.City,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
		UpdatedAt: l.UpdatedAt.Format(time.RFC3339),
	}
}

// ProjectResponse represents a project node in HTTP responses.
type ProjectResponse struct {
	UID         string   `json:"uid"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
	Budget      *float64 `json:"budget,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// ToProjectResponse converts a domain Project entity to an HTTP response DTO.
func ToProjectResponse(p *graph.Project) ProjectResponse {
	resp := ProjectResponse{
		UID:         p.UID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status.String(),
		Budget:      p.Budget,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
	if p.StartDate != nil {
		resp.StartDate = p.StartDate.Format(time.RFC3339)
	}
	if p.EndDate != nil {
		resp.EndDate = p.EndDate.Format(time.RFC3339)
	}
	return resp
}

// TagResponse represents a tag node in HTTP responses.
type TagResponse struct {
	UID         string `json:"uid"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToTagResponse converts a domain Tag entity to an HTTP response DTO.
func ToTagResponse(t *graph.Tag) TagResponse {
	return TagResponse{
		UID:         t.UID,
		Name:        t.Name,
		Description: t.Description,
		Color:       t.Color,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

// RelationshipResponse represents a typed relationship in HTTP responses.
type RelationshipResponse struct {
	Type       string         `json:"type"`
	FromUID    string         `json:"from_uid"`
	ToUID      string         `json:"to_uid"`
	Properties map[string]any `json:"properties,omitempty"`
}

// ToRelationshipResponse converts a domain Relationship to an HTTP response DTO.
func ToRelationshipResponse(rel *graph.Relationship) RelationshipResponse {
	return RelationshipResponse{
		Type:       rel.Type,
		FromUID:    rel.FromUID,
		ToUID:      rel.ToUID,
		Properties: rel.Properties,
	}
}

// NodeResponse represents an untyped graph node in HTTP responses.
type NodeResponse struct {
	UID        string         `json:"uid"`
	Label      string         `json:"label"`
	Properties map[string]any `json:"properties"`
}

// ToNodeResponse converts a domain Node to an HTTP response DTO.
func ToNodeResponse(n *graph.Node) NodeResponse {
	return NodeResponse{
		UID:        n.UID,
		Label:      n.Label,
		Properties: n.Properties,
	}
}

// NodeListResponse represents a list of nodes in HTTP responses.
type NodeListResponse struct {
	Nodes []NodeResponse `json:"nodes"`
	Count int            `json:"count"`
}

// ToNodeListResponse converts a slice of domain Nodes to an HTTP list
// response DTO.
func ToNodeListResponse(nodes []graph.Node) NodeListResponse {
	items := make([]NodeResponse, len(nodes))
	for i := range nodes {
		items[i] = ToNodeResponse(&nodes[i])
	}
	return NodeListResponse{
		Nodes: items,
		Count: len(items),
	}
}

// TextMatchResponse represents one text search hit with its relevance score.
type TextMatchResponse struct {
	Node      NodeResponse `json:"node"`
	Relevance int64        `json:"relevance"`
}

// TextSearchResponse represents text search results ordered by relevance.
type TextSearchResponse struct {
	Matches []TextMatchResponse `json:"matches"`
	Count   int                 `json:"count"`
}

// ToTextSearchResponse converts domain text matches to an HTTP response DTO.
func ToTextSearchResponse(matches []graph.TextMatch) TextSearchResponse {
	items := make([]TextMatchResponse, len(matches))
	for i := range matches {
		items[i] = TextMatchResponse{
			Node:      ToNodeResponse(&matches[i].Node),
			Relevance: matches[i].Relevance,
		}
	}
	return TextSearchResponse{
		Matches: items,
		Count:   len(items),
	}
}

// PathResponse represents a traversal path between two nodes.
type PathResponse struct {
	Nodes         []NodeResponse         `json:"nodes"`
	Relationships []RelationshipResponse `json:"relationships"`
	Length        int                    `json:"length"`
}

// ToPathResponse converts a domain Path to an HTTP response DTO.
func ToPathResponse(p *graph.Path) PathResponse {
	nodes := make([]NodeResponse, len(p.Nodes))
	for i := range p.Nodes {
		nodes[i] = ToNodeResponse(&p.Nodes[i])
	}
	rels := make([]RelationshipResponse, len(p.Relationships))
	for i := range p.Relationships {
		rels[i] = ToRelationshipResponse(&p.Relationships[i])
	}
	return PathResponse{
		Nodes:         nodes,
		Relationships: rels,
		Length:        p.Length,
	}
}

// NeighborsResponse represents traversal neighbors grouped by distance from
// the origin node.
type NeighborsResponse struct {
	Neighbors map[int][]NodeResponse `json:"neighbors"`
	Total     int                    `json:"total"`
}

// ToNeighborsResponse converts domain neighbors to an HTTP response DTO,
// grouping nodes by their distance from the origin.
func ToNeighborsResponse(neighbors []graph.Neighbor) NeighborsResponse {
	grouped := make(map[int][]NodeResponse)
	for i := range neighbors {
		grouped[neighbors[i].Distance] = append(grouped[neighbors[i].Distance], ToNodeResponse(&neighbors[i].Node))
	}
	return NeighborsResponse{
		Neighbors: grouped,
		Total:     len(neighbors),
	}
}

// NodeStatisticsResponse represents a node's relationship statistics.
type NodeStatisticsResponse struct {
	UID           string   `json:"uid"`
	Labels        []string `json:"labels"`
	IncomingCount int64    `json:"incoming_count"`
	IncomingTypes []string `json:"incoming_types"`
	OutgoingCount int64    `json:"outgoing_count"`
	OutgoingTypes []string `json:"outgoing_types"`
}

// ToNodeStatisticsResponse converts domain node statistics to an HTTP
// response DTO.
func ToNodeStatisticsResponse(s *graph.NodeStatistics) NodeStatisticsResponse {
	return NodeStatisticsResponse{
		UID:           s.UID,
		Labels:        s.Labels,
		IncomingCount: s.IncomingCount,
		IncomingTypes: s.IncomingTypes,
		OutgoingCount: s.OutgoingCount,
		OutgoingTypes: s.OutgoingTypes,
	}
}

// AggregateRowResponse represents one per-node aggregation result.
type AggregateRowResponse struct {
	UID   string  `json:"uid"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// AggregateResponse represents a relationship aggregation result set.
type AggregateResponse struct {
	Label            string                 `json:"label"`
	RelationshipType string                 `json:"relationship_type"`
	Op               string                 `json:"op"`
	Rows             []AggregateRowResponse `json:"rows"`
	Count            int                    `json:"count"`
}

// ToAggregateResponse converts domain aggregate rows to an HTTP response DTO,
// echoing the aggregation inputs.
func ToAggregateResponse(label, relType string, op graph.AggregateOp, rows []graph.AggregateRow) AggregateResponse {
	items := make([]AggregateRowResponse, len(rows))
	for i, row := range rows {
		items[i] = AggregateRowResponse{
			UID:   row.UID,
			Name:  row.Name,
			Value: row.Value,
		}
	}
	return AggregateResponse{
		Label:            label,
		RelationshipType: relType,
		Op:               op.String(),
		Rows:             items,
		Count:            len(items),
	}
}

// QueryResultResponse represents a raw Cypher query result. Keys carry the
// column order of the first record.
type QueryResultResponse struct {
	Keys    []string         `json:"keys"`
	Records []map[string]any `json:"records"`
	Count   int              `json:"count"`
}

// ToQueryResultResponse converts domain records to an HTTP response DTO.
func ToQueryResultResponse(records []graph.Record) QueryResultResponse {
	resp := QueryResultResponse{
		Keys:    []string{},
		Records: make([]map[string]any, len(records)),
		Count:   len(records),
	}
	if len(records) > 0 {
		resp.Keys = records[0].Keys
	}
	for i := range records {
		resp.Records[i] = records[i].Values
	}
	return resp
}

// LabelCountResponse represents one per-label node tally.
type LabelCountResponse struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// OverviewResponse represents the graph overview: node counts per registered
// label plus the overall total.
type OverviewResponse struct {
	Labels []LabelCountResponse `json:"labels"`
	Total  int64                `json:"total"`
}

// ToOverviewResponse converts a ports.GraphOverview to an HTTP response DTO.
func ToOverviewResponse(o *ports.GraphOverview) OverviewResponse {
	labels := make([]LabelCountResponse, len(o.Labels))
	for i, lc := range o.Labels {
		labels[i] = LabelCountResponse{
			Label: lc.Label,
			Count: lc.Count,
		}
	}
	return OverviewResponse{
		Labels: labels,
		Total:  o.Total,
	}
}

// PropertySpecResponse represents one declared property of a node model.
type PropertySpecResponse struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Required  bool     `json:"required"`
	Unique    bool     `json:"unique,omitempty"`
	MaxLength int      `json:"max_length,omitempty"`
	Choices   []string `json:"choices,omitempty"`
	Default   any      `json:"default,omitempty"`
}

// RelationshipSpecResponse represents one declared relationship of a node model.
type RelationshipSpecResponse struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Direction string `json:"direction"`
	Target    string `json:"target"`
	Model     string `json:"model,omitempty"`
}

// ModelResponse represents a registered node model schema.
type ModelResponse struct {
	Label         string                     `json:"label"`
	Properties    []PropertySpecResponse     `json:"properties"`
	Relationships []RelationshipSpecResponse `json:"relationships"`
}

// ModelListResponse represents all registered node model schemas.
type ModelListResponse struct {
	Models []ModelResponse `json:"models"`
	Count  int             `json:"count"`
}

// ToModelResponse converts a domain Schema to an HTTP response DTO.
func ToModelResponse(s *graph.Schema) ModelResponse {
	props := make([]PropertySpecResponse, len(s.Properties))
	for i, p := range s.Properties {
		props[i] = PropertySpecResponse{
			Name:      p.Name,
			Type:      string(p.Kind),
			Required:  p.Required,
			Unique:    p.Unique,
			MaxLength: p.MaxLength,
			Choices:   p.Choices,
			Default:   p.Default,
		}
	}
	rels := make([]RelationshipSpecResponse, len(s.Relationships))
	for i, r := range s.Relationships {
		rels[i] = RelationshipSpecResponse{
			Name:      r.Name,
			Type:      r.Type,
			Direction: r.Direction.String(),
			Target:    r.Target,
			Model:     r.Model,
		}
	}
	return ModelResponse{
		Label:         s.Label,
		Properties:    props,
		Relationships: rels,
	}
}

// ToModelListResponse converts domain Schemas to an HTTP list response DTO.
func ToModelListResponse(schemas []graph.Schema) ModelListResponse {
	models := make([]ModelResponse, len(schemas))
	for i := range schemas {
		models[i] = ToModelResponse(&schemas[i])
	}
	return ModelListResponse{
		Models: models,
		Count:  len(models),
	}
}

// PersonExtractionResponse represents the outcome of LLM-assisted person
// creation.
type PersonExtractionResponse struct {
	Person     PersonResponse `json:"person"`
	Tags       []TagResponse  `json:"tags"`
	Additional map[string]any `json:"additional,omitempty"`
}

// ToPersonExtractionResponse converts a ports.PersonExtraction to an HTTP
// response DTO.
func ToPersonExtractionResponse(e *ports.PersonExtraction) PersonExtractionResponse {
	tags := make([]TagResponse, len(e.Tags))
	for i := range e.Tags {
		tags[i] = ToTagResponse(&e.Tags[i])
	}
	return PersonExtractionResponse{
		Person:     ToPersonResponse(e.Person),
		Tags:       tags,
		Additional: e.Additional,
	}
}

// OrganizationExtractionResponse represents the outcome of LLM-assisted
// organization creation.
type OrganizationExtractionResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Additional   map[string]any       `json:"additional,omitempty"`
}

// ToOrganizationExtractionResponse converts a ports.OrganizationExtraction
// to an HTTP response DTO.
func ToOrganizationExtractionResponse(e *ports.OrganizationExtraction) OrganizationExtractionResponse {
	return OrganizationExtractionResponse{
		Organization: ToOrganizationResponse(e.Organization),
		Additional:   e.Additional,
	}
}

// SuggestionResponse represents one LLM-proposed relationship.
type SuggestionResponse struct {
	Type       string         `json:"type"`
	TargetUID  string         `json:"target_uid"`
	Direction  string         `json:"direction"`
	Confidence float64        `json:"confidence"`
	Properties map[string]any `json:"properties,omitempty"`
	Reasoning  string         `json:"reasoning,omitempty"`
}

// SuggestionListResponse represents LLM relationship suggestions for a node.
type SuggestionListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
	Count       int                  `json:"count"`
}

// ToSuggestionListResponse converts ports.RelationshipSuggestions to an HTTP
// list response DTO.
func ToSuggestionListResponse(suggestions []ports.RelationshipSuggestion) SuggestionListResponse {
	items := make([]SuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		items[i] = SuggestionResponse{
			Type:       s.Type,
			TargetUID:  s.TargetUID,
			Direction:  s.Direction,
			Confidence: s.Confidence,
			Properties: s.Properties,
			Reasoning:  s.Reasoning,
		}
	}
	return SuggestionListResponse{
		Suggestions: items,
		Count:       len(items),
	}
}

// EnrichmentResponse represents LLM-suggested additions for an existing node.
type EnrichmentResponse struct {
	SuggestedProperties map[string]any `json:"suggested_properties"`
	SuggestedTags       []string       `json:"suggested_tags"`
	Confidence          float64        `json:"confidence"`
	Reasoning           string         `json:"reasoning,omitempty"`
}

// ToEnrichmentResponse converts a ports.NodeEnrichment to an HTTP response DTO.
func ToEnrichmentResponse(e *ports.NodeEnrichment) EnrichmentResponse {
	return EnrichmentResponse{
		SuggestedProperties: e.SuggestedProperties,
		SuggestedTags:       e.SuggestedTags,
		Confidence:          e.Confidence,
		Reasoning:           e.Reasoning,
	}
}
