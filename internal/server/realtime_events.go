package server

import (
	"context"
	"encoding/json"
	"log"
)

// Event type constants prevent typos in event names.
const (
	EventPostCreated    = "post_created"
	EventCommentCreated = "comment_created"
	EventLikeCreated    = "like_created"
)

// publishBroadcastEvent pushes a feed event to every subscriber. Publishing
// is best-effort: a Redis failure is logged and the HTTP response proceeds.
func (s *Server) publishBroadcastEvent(eventType string, payload map[string]interface{}) {
	if s.notifier == nil {
		return
	}
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.notifier.PublishBroadcast(context.Background(), string(eventJSON)); err != nil {
		log.Printf("failed to publish %s broadcast event: %v", eventType, err)
	}
}

// publishUserEvent pushes a feed event to one user's channel.
func (s *Server) publishUserEvent(userID uint, eventType string, payload map[string]interface{}) {
	if s.notifier == nil {
		return
	}
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.notifier.PublishUser(context.Background(), userID, string(eventJSON)); err != nil {
		log.Printf("failed to publish %s event to user %d: %v", eventType, userID, err)
	}
}
