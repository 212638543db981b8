package domain

import "strings"

// WebhookRequest — тело запроса fulfillment-вебхука от NLU-сервиса.
// Описаны только используемые поля; остальные игнорируются.
type WebhookRequest struct {
	ResponseID  string      `json:"responseId,omitempty"`
	Session     string      `json:"session,omitempty"`
	QueryResult QueryResult `json:"queryResult"`
}

type QueryResult struct {
	QueryText      string          `json:"queryText,omitempty"`
	Intent         IntentInfo      `json:"intent"`
	Parameters     map[string]any  `json:"parameters"`
	OutputContexts []OutputContext `json:"outputContexts"`
}

type IntentInfo struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName"`
}

type OutputContext struct {
	Name          string         `json:"name"`
	LifespanCount int            `json:"lifespanCount,omitempty"`
	Parameters    map[string]any `json:"parameters,omitempty"`
}

// WebhookResponse — ответ вебхука.
type WebhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}

// SessionID — id сессии из пути первого выходного контекста;
// если контекстов нет — из поля session.
func (r *WebhookRequest) SessionID() string {
	if len(r.QueryResult.OutputContexts) > 0 {
		return SessionIDFromPath(r.QueryResult.OutputContexts[0].Name)
	}
	return SessionIDFromPath(r.Session)
}

// SessionIDFromPath — сегмент между "/sessions/" и "/contexts/" в пути контекста
// ("projects/p/agent/sessions/<id>/contexts/ongoing-order"). Если путь не
// содержит "/contexts/" — сегмент после последнего "/".
func SessionIDFromPath(path string) string {
	const sessions, contexts = "/sessions/", "/contexts/"
	if i := strings.Index(path, sessions); i >= 0 {
		rest := path[i+len(sessions):]
		if j := strings.Index(rest, contexts); j >= 0 {
			return rest[:j]
		}
	}
	return LastPathSegment(path)
}

// LastPathSegment — часть строки после последнего "/".
func LastPathSegment(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
