package pubsub

import (
	"encoding/json"
	"strconv"

	"wordtrainer/internal/domain/service"

	"github.com/pkg/errors"
)

// practiceEventType is the event_type attribute of every practice message.
const practiceEventType = "practice_recorded"

// encodePracticeEvent returns the JSON payload and the message attributes for event.
func encodePracticeEvent(event *service.PracticeEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode practice event")
	}

	return data, practiceAttributes(event), nil
}

// practiceAttributes carries the routing keys a subscription filter can match on.
func practiceAttributes(event *service.PracticeEvent) map[string]string {
	attributes := map[string]string{
		"event_type": practiceEventType,
		"account_id": event.AccountID,
		"word_id":    strconv.FormatInt(event.WordID, 10),
		"correct":    strconv.FormatBool(event.Correct),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
