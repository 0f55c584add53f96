package service

import (
	"context"
	"encoding/json"
	"fmt"
	"movie_catalog/configs"
	errorHandler "movie_catalog/pkg/error"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	UserDeletedEvent  = "user.deleted"
	MovieAddedEvent   = "movie.added"
	MovieDeletedEvent = "movie.deleted"
)

const catalogEventsQueue = "catalog.events"

// CatalogEvent is published when the catalog changes, so downstream
// consumers can log or trigger analytics without querying the database.
type CatalogEvent struct {
	Event      string `json:"event"`
	UserId     string `json:"userId,omitempty"`
	MovieId    string `json:"movieId,omitempty"`
	Title      string `json:"title,omitempty"`
	OccurredAt string `json:"occurredAt"`
}

// publishCatalogEvent is fire-and-forget: failures are captured and never
// surfaced to the request that produced the event. Publishing is disabled
// when no broker url is configured.
func publishCatalogEvent(event CatalogEvent) {
	rabbitUrl := configs.GetConfigs().RabbitMqUrl
	if rabbitUrl == "" {
		return
	}

	if event.OccurredAt == "" {
		event.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := amqp.Dial(rabbitUrl)
	if err != nil {
		errorHandler.SaveError(fmt.Sprintf("Rabbitmq Error on dial: %v", err), err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		errorHandler.SaveError(fmt.Sprintf("Rabbitmq Error on opening channel: %v", err), err)
		return
	}
	defer ch.Close()

	// idempotent, durable so events survive broker restarts
	if _, err := ch.QueueDeclare(catalogEventsQueue, true, false, false, false, nil); err != nil {
		errorHandler.SaveError(fmt.Sprintf("Rabbitmq Error on queue declare: %v", err), err)
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		errorHandler.SaveError(fmt.Sprintf("Rabbitmq Error on marshaling event: %v", err), err)
		return
	}

	err = ch.PublishWithContext(ctx, "", catalogEventsQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		errorHandler.SaveError(fmt.Sprintf("Rabbitmq Error on publish: %v", err), err)
	}
}
