package coordinator

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/oggyb/matchbot/internal/db"
)

// SendStatus is the outcome of SendMessage.
type SendStatus int

const (
	// Sent means delivered and charged.
	Sent SendStatus = iota
	// InsufficientFunds means nothing was recorded, sent or charged.
	InsufficientFunds
	// DeliveryFailed means the message was recorded but not delivered and
	// not charged.
	DeliveryFailed
	// SentNotCharged means delivery succeeded but the debit lost a race
	// with a concurrent spend.
	SentNotCharged
)

func (s SendStatus) String() string {
	switch s {
	case Sent:
		return "sent"
	case InsufficientFunds:
		return "insufficient_funds"
	case DeliveryFailed:
		return "delivery_failed"
	case SentNotCharged:
		return "sent_not_charged"
	default:
		return fmt.Sprintf("send_status(%d)", int(s))
	}
}

// MessageRequest is an outgoing user message.
type MessageRequest struct {
	From     int64
	To       int64
	Kind     string
	Text     string
	MediaRef string
}

// SendResult reports the outcome and the balance after it.
type SendResult struct {
	Status    SendStatus
	MessageID uint64
	Charged   int64
	Balance   int64
	Cost      int64
}

// SendMessage delivers a paid message.
//
// Effect order:
//  1. balance >= cost, else InsufficientFunds with no further action.
//  2. record the message.
//  3. deliver through the transport.
//  4. debit only after a successful delivery.
func (c *Coordinator) SendMessage(ctx context.Context, req MessageRequest) (SendResult, error) {
	cost := c.settings.MessageCost
	if req.From == req.To {
		return SendResult{}, ErrSelfAction
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Kind == "" {
		req.Kind = db.MessageKindText
	}
	if req.Text == "" && req.MediaRef == "" {
		return SendResult{}, ErrEmptyMessage
	}
	if _, err := c.requireProfile(ctx, req.To); err != nil {
		return SendResult{}, err
	}
	blocked, err := c.relations.Blocked(ctx, req.From, req.To)
	if err != nil {
		return SendResult{}, fmt.Errorf("block check: %w", err)
	}
	if blocked {
		return SendResult{}, ErrBlocked
	}

	balance, covered, err := c.ledger.Covers(ctx, req.From, cost)
	if err != nil {
		return SendResult{}, err
	}
	if !covered {
		return SendResult{Status: InsufficientFunds, Balance: balance, Cost: cost}, nil
	}

	msg, err := c.messages.Append(ctx, db.Message{
		SenderID:    req.From,
		RecipientID: req.To,
		Content:     req.Text,
		Kind:        req.Kind,
		MediaRef:    req.MediaRef,
	})
	if err != nil {
		return SendResult{}, fmt.Errorf("record message: %w", err)
	}
	res := SendResult{MessageID: msg.ID, Balance: balance, Cost: cost}

	err = c.transport.Deliver(ctx, Outbound{
		To:          req.To,
		From:        req.From,
		Kind:        KindMessage,
		MessageKind: req.Kind,
		Text:        req.Text,
		MediaRef:    req.MediaRef,
	})
	if err != nil {
		c.log.Warn("message delivery failed", "from", req.From, "to", req.To, "message", msg.ID, "err", err)
		res.Status = DeliveryFailed
		return res, nil
	}

	charged, err := c.ledger.Debit(ctx, req.From, cost)
	if err != nil {
		c.log.Error("debit after delivery failed", "from", req.From, "message", msg.ID, "err", err)
	}
	if charged {
		res.Status = Sent
		res.Charged = cost
	} else {
		c.log.Warn("message delivered without charge", "from", req.From, "message", msg.ID)
		res.Status = SentNotCharged
	}
	if err := c.messages.MarkDelivered(ctx, msg.ID, res.Charged); err != nil {
		c.log.Warn("mark delivered failed", "message", msg.ID, "err", err)
	}
	if b, err := c.ledger.Balance(ctx, req.From); err == nil {
		res.Balance = b
	}
	return res, nil
}

// Conversation returns the latest delivered messages between userID and
// otherID, oldest first. Undelivered messages were never seen by the
// recipient and are left out.
func (c *Coordinator) Conversation(ctx context.Context, userID, otherID int64) ([]db.Message, error) {
	if userID == otherID {
		return nil, ErrSelfAction
	}
	if _, err := c.requireProfile(ctx, otherID); err != nil {
		return nil, err
	}
	blocked, err := c.relations.Blocked(ctx, userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("block check: %w", err)
	}
	if blocked {
		return nil, ErrBlocked
	}

	msgs, err := c.messages.Conversation(ctx, userID, otherID, c.settings.ConversationLimit)
	if err != nil {
		return nil, fmt.Errorf("conversation %d/%d: %w", userID, otherID, err)
	}
	return slices.DeleteFunc(msgs, func(m db.Message) bool { return !m.Delivered }), nil
}
