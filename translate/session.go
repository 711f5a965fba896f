package translate

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// systemPromptFmt is the instruction sent with every request; %s is the
// English display name of the target language.
const systemPromptFmt = `You translate English UI strings, used in Quarkus Dev UI pages, to %s.
Maintain placeholder variables like {0} and keep punctuation intact.
Return only the translated text.`

// defaultMaxRetries bounds per-request retries on 429 and 5xx.
const defaultMaxRetries = 3

// Session owns the HTTP connection pool used for one language batch.
// Callers create one per batch and Close it on every exit path.
type Session struct {
	provider   Provider
	client     *http.Client
	maxRetries int
}

// NewSession opens a translation session against a provider.
func NewSession(prov Provider) *Session {
	return &Session{
		provider:   prov,
		client:     makeHTTPClient(prov.Timeout),
		maxRetries: defaultMaxRetries,
	}
}

// Translate translates one English text into the language named by its
// English display label ("French", "Canadian French", ...).
func (s *Session) Translate(ctx context.Context, languageLabel, text string) (string, error) {
	system := fmt.Sprintf(systemPromptFmt, languageLabel)
	out, err := callProvider(ctx, s.client, s.provider, system, text, s.maxRetries)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Close releases the connections held by the session.
func (s *Session) Close() {
	s.client.CloseIdleConnections()
}
