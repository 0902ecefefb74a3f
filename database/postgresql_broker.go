// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/postureguard/monitoring"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/lib/pq"
)

type PostgreSQLMessage struct {
	ID        string               `json:"id"`
	Channel   shared.PubSubChannel `json:"topic"`
	Payload   map[string]any       `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
	SenderID  string               `json:"sender_id,omitempty"`
}

func (m PostgreSQLMessage) GetChannel() shared.PubSubChannel {
	return m.Channel
}

func (m PostgreSQLMessage) GetPayload() map[string]any {
	return m.Payload
}

type ListeningConnection struct {
	Conn        *pgxpool.Conn
	Subscribers []chan map[string]any
}

// PostgreSQLBroker implements the broker interface using PostgreSQL LISTEN/NOTIFY
type PostgreSQLBroker struct {
	db           *pgxpool.Pool
	subscribers  map[shared.PubSubChannel]ListeningConnection
	subscribeMux sync.RWMutex
	wg           sync.WaitGroup
	// cancels the listening connections
	ctx    context.Context
	cancel context.CancelFunc

	ID string // Unique identifier for the broker instance
}

func NewPostgreSQLBroker(db *pgxpool.Pool) (*PostgreSQLBroker, error) {
	ctx, cancel := context.WithCancel(context.Background())
	return &PostgreSQLBroker{
		db:          db,
		subscribers: make(map[shared.PubSubChannel]ListeningConnection),
		ctx:         ctx,
		cancel:      cancel,
		ID:          uuid.New().String(),
	}, nil
}

func (b *PostgreSQLBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	topic := message.GetChannel()

	pgMessage := PostgreSQLMessage{
		ID:        uuid.New().String(),
		Channel:   topic,
		Payload:   message.GetPayload(),
		Timestamp: time.Now(),
		SenderID:  b.ID,
	}

	messageJSON, err := json.Marshal(pgMessage)
	if err != nil {
		return fmt.Errorf("failed to marshal PostgreSQL message: %w", err)
	}

	// pg_notify takes the channel and the payload as bind parameters
	if _, err = b.db.Exec(ctx, "SELECT pg_notify($1, $2)", string(topic), string(messageJSON)); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	slog.Debug("message published", "topic", topic, "messageID", pgMessage.ID)
	return nil
}

func (b *PostgreSQLBroker) Subscribe(topic shared.PubSubChannel) (<-chan map[string]any, error) {
	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()

	ch := make(chan map[string]any, 100)

	listening, exists := b.subscribers[topic]
	if !exists {
		ctxWithTimeout, cancel := context.WithTimeout(b.ctx, 30*time.Second)
		defer cancel()
		conn, err := b.db.Acquire(ctxWithTimeout)
		if err != nil {
			close(ch)
			return nil, fmt.Errorf("failed to acquire connection for listening: %w", err)
		}
		if _, err = conn.Exec(ctxWithTimeout, "LISTEN "+pq.QuoteIdentifier(string(topic))); err != nil {
			conn.Release()
			close(ch)
			return nil, fmt.Errorf("failed to listen on topic %s: %w", topic, err)
		}
		b.wg.Go(func() {
			b.processMessages(topic, conn)
		})
		listening = ListeningConnection{Conn: conn}
	}

	listening.Subscribers = append(listening.Subscribers, ch)
	b.subscribers[topic] = listening
	return ch, nil
}

func (b *PostgreSQLBroker) processMessages(topic shared.PubSubChannel, conn *pgxpool.Conn) {
	defer conn.Release()
	for {
		notification, err := conn.Conn().WaitForNotification(b.ctx)
		if err != nil {
			if b.ctx.Err() != nil {
				// closed
				return
			}
			monitoring.Alert("could not listen for notifications from PostgreSQL broker", err)
			return
		}
		if notification == nil || notification.Channel != string(topic) {
			continue
		}

		var message PostgreSQLMessage
		if err := json.Unmarshal([]byte(notification.Payload), &message); err != nil {
			slog.Error("Failed to unmarshal message", "error", err, "payload", notification.Payload)
			continue
		}

		if message.SenderID == b.ID {
			slog.Debug("ignoring message sent by self", "messageID", message.ID, "topic", message.Channel)
			continue
		}

		b.subscribeMux.RLock()
		subscribers := b.subscribers[topic].Subscribers
		b.subscribeMux.RUnlock()

		for _, subscriber := range subscribers {
			select {
			case subscriber <- message.Payload:
			default:
				slog.Warn("subscriber channel full, dropping message", "topic", topic, "messageID", message.ID)
			}
		}
		slog.Debug("message distributed", "topic", topic, "messageID", message.ID, "subscribers", len(subscribers))
	}
}

// Close stops listening and closes every subscriber channel.
func (b *PostgreSQLBroker) Close() {
	b.cancel()
	b.wg.Wait()

	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()
	for topic, listening := range b.subscribers {
		for _, ch := range listening.Subscribers {
			close(ch)
		}
		delete(b.subscribers, topic)
	}
}

// IsHealthy checks if all listening connections are still alive
func (b *PostgreSQLBroker) IsHealthy(ctx context.Context) bool {
	b.subscribeMux.RLock()
	defer b.subscribeMux.RUnlock()

	for topic := range b.subscribers {
		ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := b.db.Ping(ctxWithTimeout)
		cancel()
		if err != nil {
			slog.Error("broker connection is not healthy", "topic", topic, "error", err)
			return false
		}
	}
	return true
}
