package mailer

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"ershou_market_v1/internal/model"
)

// ==================== 发送接口 ====================

// Sender 邮件发送接口，便于测试时替换
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// ==================== SMTP 实现 ====================

// SMTPSender 基于 SMTP 的发送实现
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender 创建 SMTP 发送器
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}

// ==================== 邮件内容 ====================

// RenderProductDigest 渲染新品速递邮件正文
func RenderProductDigest(baseURL string, products []model.Product) string {
	var b strings.Builder
	b.WriteString("<h2>最近上新</h2>")
	b.WriteString("<table cellpadding=\"8\">")
	for _, p := range products {
		price := p.Price
		if price == "" {
			price = "面议"
		}
		if p.DiscountPrice != "" {
			price = p.DiscountPrice
		}
		b.WriteString("<tr>")
		if p.Image != "" {
			fmt.Fprintf(&b, "<td><img src=%q width=\"120\" alt=%q></td>",
				baseURL+p.Image, html.EscapeString(p.Title))
		}
		fmt.Fprintf(&b, "<td><a href=%q>%s</a><br>%s</td>",
			fmt.Sprintf("%s/products/%s", baseURL, p.Slug),
			html.EscapeString(p.Title),
			html.EscapeString(price))
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}
