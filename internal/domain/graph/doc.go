// Package graph contains the graph domain model: typed node entities
// (Person, Organization, Location, Project, Tag), relationship property
// models, traversal result values, and the schema registry that query
// layers consult before building Cypher.
//
// Typed entities convert to and from the generic Node form at the
// repository boundary via their Properties methods and the FromNode
// constructors. Validation follows the shared convention: Validate builds
// a field->message map into *domain.ValidationError.
package graph
