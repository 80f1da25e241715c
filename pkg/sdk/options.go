package foodeats

import "time"

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	password string

	apiKey     string
	baseURL    string
	model      string
	llmTimeout time.Duration

	resultCap    int
	candidateCap int

	criteriaCacheTTL time.Duration

	readinessTimeout time.Duration
}

// WithRedis connects to a Redis instance with the search module loaded.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithGroq uses the Groq chat-completion API with the default model.
func WithGroq(apiKey string) Option {
	return optionFunc(func(c *clientConfig) {
		c.apiKey = apiKey
	})
}

// WithLLM points the client at any OpenAI-compatible completion endpoint.
func WithLLM(apiKey, baseURL, model string) Option {
	return optionFunc(func(c *clientConfig) {
		c.apiKey = apiKey
		c.baseURL = baseURL
		c.model = model
	})
}

// WithLLMTimeout bounds each completion request.
func WithLLMTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) { c.llmTimeout = d })
}

// WithCaps overrides the result and candidate caps of the search pipeline.
func WithCaps(resultCap, candidateCap int) Option {
	return optionFunc(func(c *clientConfig) {
		c.resultCap = resultCap
		c.candidateCap = candidateCap
	})
}

// WithCriteriaCache caches extracted criteria in the store for ttl.
func WithCriteriaCache(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) { c.criteriaCacheTTL = ttl })
}

// WithReadinessTimeout bounds the initial connection wait.
func WithReadinessTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) { c.readinessTimeout = d })
}
