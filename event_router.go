package netreactor

import (
	"github.com/rs/zerolog/log"
)

type EventRouter interface {
	Process(key string, event *Event) error
}

var eventRouter EventRouter

// routeEvent publishes a reactor event through the configured router.
// Routing is best-effort: with no router configured events are dropped.
func routeEvent(key string, event *Event) {
	if eventRouter == nil {
		return
	}
	err := eventRouter.Process(key, event)
	if err != nil {
		log.Warn().Msgf("can't route reactor event: %+v", err)
	}
}
