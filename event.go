package netreactor

import "time"

const (
	ReactorStartedEvent = 100
	ReactorStoppedEvent = 101
	PollFaultEvent      = 500
)

type Event struct {
	Id        string                 `json:"id"`
	Timestamp int64                  `json:"timestamp"`
	Type      int                    `json:"type"`
	MetaData  map[string]interface{} `json:"metaData"`
	Tags      []string               `json:"tags"`
	Err       error                  `json:"error"`
	Msg       string                 `json:"msg"`
}

func genReactorEvent(name string, eventType int, err error, msg string) *Event {
	return &Event{
		Id:        name,
		Timestamp: time.Now().UnixMilli(),
		Type:      eventType,
		Err:       err,
		Msg:       msg,
	}
}
