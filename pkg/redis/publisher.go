package redis

import "context"

// Publisher publishes on channels named <namespace>::<channel>.
type Publisher struct {
	client    *Client
	namespace string
}

func NewPublisher(client *Client, namespace string) *Publisher {
	return &Publisher{client: client, namespace: namespace}
}

// ChannelName constructs the full channel name using ChannelNamespace::channelName format
func (p *Publisher) ChannelName(channel string) string {
	if p.namespace != "" {
		return p.namespace + "::" + channel
	}
	return channel
}

// Publish publishes a message to the namespaced channel
func (p *Publisher) Publish(ctx context.Context, channel string, message interface{}) error {
	return p.client.Publish(ctx, p.ChannelName(channel), message)
}

func (p *Publisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

func (p *Publisher) Close() error {
	return p.client.Close()
}
