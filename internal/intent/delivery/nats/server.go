package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"todo-ai-chatbot/internal/model"
)

const (
	logPrefixHandle = "internal.intent.delivery.nats.handle"
	errMsgInvalid   = "invalid request format"
)

// Start subscribes to the request subject.
func (s *Server) Start() error {
	sub, err := s.conn.Subscribe(s.subject, s.handle)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", s.subject, err)
	}
	s.sub = sub
	s.l.Infof(context.Background(), "intent service subscribed to %s", s.subject)
	return nil
}

// Close drains the subscription and closes the connection.
func (s *Server) Close() error {
	if s.sub != nil {
		if err := s.sub.Drain(); err != nil {
			s.l.Warnf(context.Background(), "drain %s: %v", s.subject, err)
		}
	}
	if s.conn != nil {
		s.conn.Close()
	}
	return nil
}

func (s *Server) handle(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	data, err := json.Marshal(s.process(ctx, msg.Data))
	if err != nil {
		s.l.Errorf(ctx, "%s: marshal reply: %v", logPrefixHandle, err)
		return
	}
	if err := msg.Respond(data); err != nil {
		s.l.Errorf(ctx, "%s: respond: %v", logPrefixHandle, err)
	}
}

// process turns a raw request payload into a reply. Failures are reported in
// the reply's error field.
func (s *Server) process(ctx context.Context, data []byte) classifyReply {
	var req classifyRequest
	if err := json.Unmarshal(data, &req); err != nil {
		s.l.Warnf(ctx, "%s: %v", logPrefixHandle, err)
		return classifyReply{Error: errMsgInvalid}
	}

	a, err := s.uc.Analyze(ctx, model.Scope{UserID: req.UserID}, req.Text)
	if err != nil {
		return classifyReply{Error: err.Error()}
	}
	return classifyReply{Classified: &a.Refined, Routing: &a.Routing}
}
