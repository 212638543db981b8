package validate

import (
	"encoding/json"
	"fmt"
)

const ctxName = "projects/bot/agent/sessions/sess-1/contexts/ongoing-order"

// webhookJSON — минимальный запрос вебхука (многострочный JSON).
func webhookJSON(displayName, contextName string) string {
	return fmt.Sprintf(`{
  "responseId": "resp-1",
  "queryResult": {
    "queryText": "2 pizzas and one mango lassi",
    "intent": {"displayName": %q},
    "parameters": {"food-item": ["pizza", "mango lassi"], "number": [2, 1]},
    "outputContexts": [{"name": %q, "lifespanCount": 5}]
  },
  "originalDetectIntentRequest": {"source": "DIALOGFLOW_CONSOLE"}
}`, displayName, contextName)
}

// oneLineJSON — компактный JSON для JSONL.
func oneLineJSON(s string) string {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		panic(err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
