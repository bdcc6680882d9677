package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSClient is the part of *sqs.Client the sender needs.
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Sender posts JSON messages to queues addressed by name. Queue urls are resolved once and cached.
type Sender struct {
	client SQSClient

	mu   sync.RWMutex
	urls map[string]string
}

func NewSender(client SQSClient) *Sender {
	return &Sender{client: client, urls: make(map[string]string)}
}

// SendMessage posts body encoded as JSON to queueName.
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("sqs: encode message for %s: %w", queueName, err)
	}

	queueURL, err := s.QueueURL(ctx, queueName)
	if err != nil {
		return err
	}

	if _, err = s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(string(payload)),
	}); err != nil {
		return fmt.Errorf("sqs: send to %s: %w", queueName, err)
	}
	return nil
}

// QueueURL returns the cached url of queueName, resolving it on first use.
func (s *Sender) QueueURL(ctx context.Context, queueName string) (string, error) {
	s.mu.RLock()
	queueURL, ok := s.urls[queueName]
	s.mu.RUnlock()
	if ok {
		return queueURL, nil
	}
	return s.LookupQueueURL(ctx, queueName)
}

// LookupQueueURL always asks SQS for the url of queueName and refreshes the cache.
func (s *Sender) LookupQueueURL(ctx context.Context, queueName string) (string, error) {
	out, err := s.client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(queueName)})
	if err != nil {
		return "", fmt.Errorf("sqs: resolve queue %s: %w", queueName, err)
	}
	if out.QueueUrl == nil {
		return "", fmt.Errorf("sqs: queue %s has no url", queueName)
	}

	s.mu.Lock()
	s.urls[queueName] = *out.QueueUrl
	s.mu.Unlock()
	return *out.QueueUrl, nil
}
