package deepseek

import "context"

// IDeepSeek is the DeepSeek chat-completion client surface.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}
