package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wrapsite_backend/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Feed is het realtime-kanaal waarover de AI-beeldgeneratie zijn resultaat
// terugmeldt. Per inzending bestaat één kanaal; een wachter abonneert zich
// als de inzending in verwerking gaat en ruimt het abonnement expliciet op
// zodra het resultaat er is of de context verloopt. Abonnementen mogen de
// wachtende handler nooit overleven.
type Feed struct {
	rdb *redis.Client
}

var GlobalFeed *Feed

func InitFeed(cfg config.RedisConfig) {
	GlobalFeed = NewFeed(redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}))
}

func NewFeed(rdb *redis.Client) *Feed {
	return &Feed{rdb: rdb}
}

func channelFor(submissionID string) string {
	return "submission:" + submissionID
}

// SubmissionUpdate is het bericht dat op het kanaal verschijnt wanneer de
// inzendingsrij is bijgewerkt.
type SubmissionUpdate struct {
	SubmissionID      string `json:"submission_id"`
	Status            string `json:"status"`
	GeneratedImageURL string `json:"generated_image_url"`
}

// PublishUpdate meldt een bijgewerkte inzending aan eventuele wachters.
func (f *Feed) PublishUpdate(ctx context.Context, update SubmissionUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("error marshaling submission update: %v", err)
	}
	return f.rdb.Publish(ctx, channelFor(update.SubmissionID), payload).Err()
}

// Waiter is een bevestigd abonnement op het kanaal van één inzending.
// Updates die na Listen maar vóór Wait gepubliceerd worden gaan niet
// verloren. De aanroeper moet Close aanroepen.
type Waiter struct {
	sub *redis.PubSub
}

// Listen abonneert zich op het kanaal van een inzending en wacht op de
// bevestiging. Abonneer eerst en lees daarna pas de huidige stand; anders
// valt een update tussen de leesactie en het abonnement in een gat.
func (f *Feed) Listen(ctx context.Context, submissionID string) (*Waiter, error) {
	sub := f.rdb.Subscribe(ctx, channelFor(submissionID))
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("could not subscribe to submission channel: %v", err)
	}
	return &Waiter{sub: sub}, nil
}

func (w *Waiter) Close() {
	w.sub.Close()
}

// Wait blokkeert tot er een update binnenkomt of de context verloopt.
func (w *Waiter) Wait(ctx context.Context) (*SubmissionUpdate, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case msg, ok := <-w.sub.Channel():
		if !ok {
			return nil, fmt.Errorf("submission channel closed")
		}
		var update SubmissionUpdate
		if err := json.Unmarshal([]byte(msg.Payload), &update); err != nil {
			return nil, fmt.Errorf("error unmarshaling submission update: %v", err)
		}
		return &update, nil
	}
}

// WaitForUpdate abonneert zich op het kanaal van één inzending en wacht tot
// er een update binnenkomt of de context verloopt. Het abonnement wordt bij
// terugkeer altijd opgeruimd.
func (f *Feed) WaitForUpdate(ctx context.Context, submissionID string) (*SubmissionUpdate, error) {
	w, err := f.Listen(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	defer w.Close()
	return w.Wait(ctx)
}
