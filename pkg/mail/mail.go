// Package mail 封装 SMTP 邮件投递，内置熔断保护.
// 邮件属于尽力而为的旁路动作，发送失败只记日志，不影响主流程.
package mail

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	gomail "github.com/wneessen/go-mail"

	"github.com/igorzgk/excel-delivery-sub000/pkg/configs"
	nlog "github.com/igorzgk/excel-delivery-sub000/pkg/log"
)

// Mailer SMTP 客户端包装，所有发送经过熔断器.
type Mailer struct {
	client *gomail.Client
	from   string
	cb     *gobreaker.CircuitBreaker
}

var (
	mailerOnce sync.Once
	mailerInst *Mailer
	mailerErr  error
)

// GetMailer 按全局配置初始化并返回单例 Mailer.
func GetMailer() (*Mailer, error) {
	mailerOnce.Do(func() {
		cfg := configs.GetConfig().SMTP
		mailerInst, mailerErr = New(&cfg)
	})

	return mailerInst, mailerErr
}

// New 依据配置创建 Mailer.
func New(cfg *configs.SMTPConfig) (*Mailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
	}

	if cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Password),
		)
	}

	if cfg.UseTLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	m := &Mailer{client: client, from: cfg.From}

	if cfg.Breaker.Enabled {
		bc := cfg.Breaker
		settings := gobreaker.Settings{
			Name:        "smtp",
			MaxRequests: bc.MaxRequestsInHalf,
			Interval:    time.Duration(bc.IntervalSeconds) * time.Second,
			Timeout:     time.Duration(bc.TimeoutSeconds) * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				total := counts.Requests
				if total < bc.MinRequests {
					return false
				}
				// 失败比例
				failureRate := float64(counts.TotalFailures) / float64(total)
				return failureRate >= bc.FailureRate
			},
		}
		m.cb = gobreaker.NewCircuitBreaker(settings)
	}

	return m, nil
}

// Send 发送一封纯文本邮件.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	send := func() (any, error) {
		return nil, m.client.DialAndSendWithContext(ctx, msg)
	}

	var err error
	if m.cb != nil {
		_, err = m.cb.Execute(send)
	} else {
		_, err = send()
	}

	if err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}

// SendAsync 异步发送，失败只记日志. 用于请求路径上的旁路邮件.
func (m *Mailer) SendAsync(to, subject, body string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := m.Send(ctx, to, subject, body); err != nil {
			nlog.Logger().Error().Err(err).Str("to", to).Msg("mail delivery failed")
		}
	}()
}
