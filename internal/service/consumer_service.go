package service

import (
	"context"
	"encoding/json"
	"log"

	"hadith-voice-be/internal/dto"
	"hadith-voice-be/internal/transcript"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains completed-turn events off the in-process bus
// and folds them into the room transcript, so websocket watchers see
// the same log the agent spoke.
type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	transcripts ITranscriptService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	transcripts ITranscriptService,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		transcripts: transcripts,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.TurnCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal turn event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.transcripts.ApplySegment(payload.Room, transcript.SpeakerUser, payload.Utterance, true)
	cs.transcripts.BroadcastAgentState(payload.Room, "speaking")
	cs.transcripts.ApplySegment(payload.Room, transcript.SpeakerAssistant, payload.Reply, true)
	cs.transcripts.BroadcastAgentState(payload.Room, "listening")

	msg.Ack()
}
