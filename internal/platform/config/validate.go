package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Neo4j.validate(),
		c.LLM.validate(),
		c.Redis.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (n *Neo4jConfig) validate() error {
	var errs []error

	if _, err := ParseBoltURL(n.URI); err != nil {
		errs = append(errs, fmt.Errorf("neo4j.uri: %w", err))
	}
	if n.Database == "" {
		errs = append(errs, errors.New("neo4j.database must not be empty"))
	}
	if n.MaxConnectionPoolSize < 1 {
		errs = append(errs, fmt.Errorf("neo4j.max_connection_pool_size must be >= 1, got %d",
			n.MaxConnectionPoolSize))
	}
	if n.ConnectionTimeout <= 0 {
		errs = append(errs, errors.New("neo4j.connection_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LLMConfig) validate() error {
	if !l.Enabled() {
		return nil
	}

	var errs []error

	if l.Model == "" {
		errs = append(errs, errors.New("llm.model must not be empty"))
	}
	if l.Timeout <= 0 {
		errs = append(errs, errors.New("llm.timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (r *RedisConfig) validate() error {
	if !r.Enabled {
		return nil
	}

	var errs []error

	if r.Addr == "" {
		errs = append(errs, errors.New("redis.addr must not be empty when redis is enabled"))
	}
	if r.TTL <= 0 {
		errs = append(errs, errors.New("redis.ttl must be positive"))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RPS <= 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.rps must be positive, got %f", cl.RateLimit.RPS))
	}
	if cl.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst must be >= 1, got %d", cl.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
