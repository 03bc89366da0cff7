package task

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"ershou_market_v1/internal/repository"
	"ershou_market_v1/pkg/mailer"
)

// ==================== NewsletterTask 新品邮件任务 ====================

// NewsletterTask 定时向活跃订阅者发送新品速递
// 调度策略：每两天早上 9 点（可配 cron 表达式，带秒位）
// 发送为尽力而为：单个收件人失败只计数，不中断本轮
type NewsletterTask struct {
	productRepo    repository.ProductRepository
	newsletterRepo repository.NewsletterRepository
	sender         mailer.Sender
	cron           *cron.Cron
	log            *zap.Logger

	cronSpec string
	baseURL  string

	// 收件人之间的发送间隔（限速，非重试）
	sendDelay time.Duration
	// 收录"最近上新"的时间窗口
	lookback time.Duration
}

// SendReport 单轮发送结果
type SendReport struct {
	Sent    int    `json:"sent"`
	Failed  int    `json:"failed"`
	Skipped string `json:"skipped,omitempty"` // 跳过原因，空表示已执行发送
}

// NewNewsletterTask 创建邮件任务
func NewNewsletterTask(
	productRepo repository.ProductRepository,
	newsletterRepo repository.NewsletterRepository,
	sender mailer.Sender,
	cronSpec string,
	baseURL string,
	log *zap.Logger,
) *NewsletterTask {
	return &NewsletterTask{
		productRepo:    productRepo,
		newsletterRepo: newsletterRepo,
		sender:         sender,
		cron:           cron.New(cron.WithSeconds()),
		log:            log,
		cronSpec:       cronSpec,
		baseURL:        baseURL,
		sendDelay:      500 * time.Millisecond,
		lookback:       48 * time.Hour,
	}
}

// SetSendDelay 设置收件人之间的发送间隔（测试用）
func (t *NewsletterTask) SetSendDelay(d time.Duration) {
	t.sendDelay = d
}

// ==================== 生命周期 ====================

// Start 启动定时任务
func (t *NewsletterTask) Start() error {
	_, err := t.cron.AddFunc(t.cronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		t.RunNow(ctx)
	})
	if err != nil {
		return err
	}
	t.cron.Start()
	t.log.Info("[NewsletterTask] 邮件任务已启动", zap.String("spec", t.cronSpec))
	return nil
}

// Stop 停止定时任务
func (t *NewsletterTask) Stop() {
	t.cron.Stop()
	t.log.Info("[NewsletterTask] 邮件任务已停止")
}

// ==================== 执行 ====================

// RunNow 立即执行一轮发送
// 三个前置条件逐一检查，任一不满足直接跳过本轮：
// 1. 时间窗口内有新上架商品
// 2. 存在活跃订阅者
// 3. 逐个发送，失败只记录
func (t *NewsletterTask) RunNow(ctx context.Context) SendReport {
	products, err := t.productRepo.ListCreatedSince(ctx, time.Now().Add(-t.lookback))
	if err != nil {
		t.log.Error("[NewsletterTask] 查询新品失败", zap.Error(err))
		return SendReport{Skipped: "查询新品失败"}
	}
	if len(products) == 0 {
		t.log.Info("[NewsletterTask] 时间窗口内无新品，跳过本轮")
		return SendReport{Skipped: "无新品"}
	}

	subscribers, err := t.newsletterRepo.ListActive(ctx)
	if err != nil {
		t.log.Error("[NewsletterTask] 查询订阅者失败", zap.Error(err))
		return SendReport{Skipped: "查询订阅者失败"}
	}
	if len(subscribers) == 0 {
		t.log.Info("[NewsletterTask] 无活跃订阅者，跳过本轮")
		return SendReport{Skipped: "无活跃订阅者"}
	}

	body := mailer.RenderProductDigest(t.baseURL, products)

	var report SendReport
	for i, sub := range subscribers {
		if err := t.sender.Send(sub.Email, "本店最近上新", body); err != nil {
			report.Failed++
			t.log.Warn("[NewsletterTask] 发送失败",
				zap.String("email", sub.Email), zap.Error(err))
		} else {
			report.Sent++
		}

		// 收件人之间限速，最后一个不用等
		if i < len(subscribers)-1 {
			select {
			case <-ctx.Done():
				t.log.Warn("[NewsletterTask] 上下文取消，提前结束本轮")
				return report
			case <-time.After(t.sendDelay):
			}
		}
	}

	t.log.Info("[NewsletterTask] 本轮发送完成",
		zap.Int("sent", report.Sent),
		zap.Int("failed", report.Failed),
		zap.Int("products", len(products)))
	return report
}
