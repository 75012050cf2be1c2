// Package ports holds the interfaces that decouple the service's layers.
// Inbound ports (PersonService, SearchService, LLMService, ...) are
// implemented in internal/app and consumed by the HTTP handlers; outbound
// ports (GraphRepository, ChatClient, ExtractionCache) are implemented by
// the Neo4j, LLM gateway, and Redis adapters and consumed by the services.
// Mocks for every port are generated into the top-level mocks package.
package ports
