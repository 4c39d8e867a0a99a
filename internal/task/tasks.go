package task

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypeSweepRetention = "retention:sweep"

type SweepRetentionPayload struct {
	RequestedAt time.Time `json:"requested_at"`
}

// NewSweepRetentionTask creates an Asynq task for sweeping expired objects.
func NewSweepRetentionTask() (*asynq.Task, error) {
	p := SweepRetentionPayload{RequestedAt: time.Now().UTC()}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal sweep-retention payload: %w", err)
	}
	return asynq.NewTask(TypeSweepRetention, data), nil
}

// ParseSweepRetentionPayload parses the task payload to SweepRetentionPayload.
func ParseSweepRetentionPayload(t *asynq.Task) (SweepRetentionPayload, error) {
	var p SweepRetentionPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return SweepRetentionPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
